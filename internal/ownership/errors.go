package ownership

import (
	"github.com/containerd/errdefs"
	"github.com/cruciblehq/relpack/internal/fault"
)

var (
	ErrNotFound   = fault.New("artifact not found", errdefs.ErrNotFound)
	ErrPermission = fault.New("ownership change denied", errdefs.ErrPermissionDenied)
)
