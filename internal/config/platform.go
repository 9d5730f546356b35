package config

import (
	"strings"

	"github.com/containerd/platforms"
	"github.com/cruciblehq/relpack/internal/fault"
)

// Returns the configured platform in canonical form (e.g. "linux/amd64" for "linux/x86_64"),
// or "" when no platform is pinned.
//
// Only a single platform is accepted; multi-platform builds are out of scope.
func (r Runtime) TargetPlatform() (string, error) {
	p := strings.TrimSpace(r.Platform)
	if p == "" {
		return "", nil
	}
	if strings.Contains(p, ",") {
		return "", fault.Wrapf(ErrConfig, "runtime.platform %q: only one platform may be built", p)
	}

	spec, err := platforms.Parse(p)
	if err != nil {
		return "", fault.Wrapf(ErrConfig, "runtime.platform: %w", err)
	}

	return platforms.Format(platforms.Normalize(spec)), nil
}
