package archive

import (
	"github.com/containerd/errdefs"
	"github.com/cruciblehq/relpack/internal/fault"
)

var ErrPackaging = fault.New("packaging failed", errdefs.ErrFailedPrecondition)
