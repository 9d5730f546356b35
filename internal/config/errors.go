package config

import (
	"github.com/containerd/errdefs"
	"github.com/cruciblehq/relpack/internal/fault"
)

var ErrConfig = fault.New("configuration error", errdefs.ErrInvalidArgument)
