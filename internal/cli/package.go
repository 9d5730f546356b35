package cli

import (
	"context"

	"github.com/cruciblehq/relpack/internal/command"
	"github.com/cruciblehq/relpack/internal/config"
	"github.com/cruciblehq/relpack/internal/fault"
	"github.com/cruciblehq/relpack/internal/publish"
	"github.com/cruciblehq/relpack/internal/release"
)

// Represents the 'relpack package' command.
type PackageCmd struct {
	Unversioned bool   `help:"Name the archive without the version."`
	Format      string `help:"Archive backend: tar runs the tar tool, native writes a reproducible archive in-process." enum:",tar,native" default:""`
	Checksum    bool   `help:"Write a sha256 checksum file next to the archive."`
	Publish     bool   `help:"Upload the archive to the configured S3 bucket."`
	NoSudo      bool   `name:"no-sudo" help:"Run the container runtime and chown without sudo."`
}

// Executes the package command.
//
// Loads the configuration for the repository root, applies the command's
// overrides and runs the release pipeline.
func (c *PackageCmd) Run(ctx context.Context) error {
	cfg, err := config.Load(RootCmd.Root, RootCmd.Config)
	if err != nil {
		return err
	}

	if err := c.apply(cfg); err != nil {
		return err
	}

	var opts []release.Option
	if c.Publish {
		pub, err := publish.NewS3(ctx, cfg.Publish)
		if err != nil {
			return err
		}
		opts = append(opts, release.WithPublisher(pub))
	}

	_, err = release.New(cfg, command.New(), opts...).Run(ctx)
	return err
}

// Applies the command's flags on top of the loaded configuration.
func (c *PackageCmd) apply(cfg *config.Config) error {
	if c.Unversioned {
		cfg.Archive.Versioned = false
	}
	if c.Format != "" {
		cfg.Archive.Format = c.Format
	}
	if c.Checksum {
		cfg.Archive.Checksum = true
	}
	if c.NoSudo {
		cfg.Runtime.Sudo = false
		cfg.Ownership.Sudo = false
	}
	if c.Publish && !cfg.Publish.Enabled() {
		return fault.Wrapf(config.ErrConfig, "--publish requires publish.bucket to be configured")
	}
	return nil
}
