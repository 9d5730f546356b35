package publish

import (
	"github.com/containerd/errdefs"
	"github.com/cruciblehq/relpack/internal/fault"
)

var ErrPublish = fault.New("publish failed", errdefs.ErrUnavailable)
