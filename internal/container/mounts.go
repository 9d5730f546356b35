package container

import (
	"strings"

	"github.com/cruciblehq/relpack/internal/config"
	specs "github.com/opencontainers/runtime-spec/specs-go"
)

// Mount types understood by [volumeFlag].
const (
	mountVolume = "volume"
	mountBind   = "bind"
)

// Returns the mounts for the build container, in the order they are passed
// to the runtime: named cache volumes, the optional cache bind, then the
// output bind.
func Mounts(cfg *config.Config) []specs.Mount {
	mounts := make([]specs.Mount, 0, len(cfg.Volumes)+2)

	for _, v := range cfg.Volumes {
		mounts = append(mounts, specs.Mount{
			Type:        mountVolume,
			Source:      v.Name,
			Destination: v.Target,
		})
	}

	if cfg.Cache != nil {
		mounts = append(mounts, specs.Mount{
			Type:        mountBind,
			Source:      cfg.Cache.Source,
			Destination: cfg.Cache.Target,
			Options:     cfg.Cache.Options,
		})
	}

	mounts = append(mounts, specs.Mount{
		Type:        mountBind,
		Source:      cfg.OutputDir,
		Destination: cfg.Output.Target,
		Options:     cfg.Output.Options,
	})

	return mounts
}

// Formats a mount as the value of a runtime "-v" flag.
//
// Both named volumes and bind mounts use "source:destination[:options]"; the
// runtime tells them apart by whether source is an absolute path.
func volumeFlag(m specs.Mount) string {
	spec := m.Source + ":" + m.Destination
	if len(m.Options) > 0 {
		spec += ":" + strings.Join(m.Options, ",")
	}
	return spec
}
