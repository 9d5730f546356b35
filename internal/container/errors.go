package container

import (
	"github.com/containerd/errdefs"
	"github.com/cruciblehq/relpack/internal/fault"
)

var (
	ErrBuild = fault.New("build failed", errdefs.ErrUnknown)
	ErrImage = fault.New("image build failed", ErrBuild)
	ErrRun   = fault.New("container run failed", ErrBuild)
)
