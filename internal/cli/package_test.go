package cli

import (
	"errors"
	"testing"

	"github.com/cruciblehq/relpack/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageApply(t *testing.T) {
	tests := []struct {
		name  string
		cmd   PackageCmd
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "defaults untouched",
			cmd:  PackageCmd{},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, config.Default(cfg.Root), cfg)
			},
		},
		{
			name: "unversioned",
			cmd:  PackageCmd{Unversioned: true},
			check: func(t *testing.T, cfg *config.Config) {
				assert.False(t, cfg.Archive.Versioned)
			},
		},
		{
			name: "native format with checksum",
			cmd:  PackageCmd{Format: config.FormatNative, Checksum: true},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, config.FormatNative, cfg.Archive.Format)
				assert.True(t, cfg.Archive.Checksum)
			},
		},
		{
			name: "no sudo",
			cmd:  PackageCmd{NoSudo: true},
			check: func(t *testing.T, cfg *config.Config) {
				assert.False(t, cfg.Runtime.Sudo)
				assert.False(t, cfg.Ownership.Sudo)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default("/repo")
			require.NoError(t, tt.cmd.apply(cfg))
			tt.check(t, cfg)
		})
	}
}

func TestPackageApplyPublishNeedsBucket(t *testing.T) {
	cfg := config.Default("/repo")
	err := (&PackageCmd{Publish: true}).apply(cfg)
	assert.True(t, errors.Is(err, config.ErrConfig))

	cfg.Publish.Bucket = "releases"
	assert.NoError(t, (&PackageCmd{Publish: true}).apply(cfg))
}
