package manifest

import (
	"github.com/cruciblehq/relpack/internal/config"
	"github.com/cruciblehq/relpack/internal/fault"
)

var ErrManifest = fault.New("manifest error", config.ErrConfig)
