package config

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/cruciblehq/relpack/internal/fault"
)

// Checks that the configuration describes a runnable release.
//
// Container mount points must be absolute and distinct, the binary and the
// companions must name files inside the output directory, and the archive
// format must be known.
func (c *Config) Validate() error {
	required := []struct {
		field, value string
	}{
		{"image", c.Image},
		{"dockerfile", c.Dockerfile},
		{"manifest", c.Manifest},
		{"output_dir", c.OutputDir},
		{"binary", c.Binary},
		{"runtime.command", c.Runtime.Command},
		{"output.target", c.Output.Target},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fault.Wrapf(ErrConfig, "%s is required", r.field)
		}
	}

	if c.Binary != filepath.Base(c.Binary) {
		return fault.Wrapf(ErrConfig, "binary %q must be a file name, not a path", c.Binary)
	}
	if strings.HasPrefix(c.Binary, "-") {
		return fault.Wrapf(ErrConfig, "binary %q must not start with a dash", c.Binary)
	}

	for _, m := range c.Companions {
		if err := validateMember(m); err != nil {
			return err
		}
		if m == c.Binary {
			return fault.Wrapf(ErrConfig, "companion %q duplicates the binary", m)
		}
	}

	if err := c.validateMounts(); err != nil {
		return err
	}

	for k := range c.Env {
		if k == "" || strings.ContainsAny(k, "= ") {
			return fault.Wrapf(ErrConfig, "env key %q is invalid", k)
		}
	}

	if _, err := c.Runtime.TargetPlatform(); err != nil {
		return err
	}

	switch c.Archive.Format {
	case FormatTar, FormatNative:
	default:
		return fault.Wrapf(ErrConfig, "archive.format %q must be %q or %q", c.Archive.Format, FormatTar, FormatNative)
	}

	return nil
}

// Checks mount points: one output bind, optional cache bind, named volumes.
func (c *Config) validateMounts() error {
	seen := make(map[string]string)
	claim := func(target, owner string) error {
		if !path.IsAbs(target) {
			return fault.Wrapf(ErrConfig, "%s target %q must be an absolute container path", owner, target)
		}
		target = path.Clean(target)
		if prev, ok := seen[target]; ok {
			return fault.Wrapf(ErrConfig, "%s and %s both mount %s", prev, owner, target)
		}
		seen[target] = owner
		return nil
	}

	if err := claim(c.Output.Target, "output"); err != nil {
		return err
	}

	if c.Cache != nil {
		if c.Cache.Source == "" {
			return fault.Wrapf(ErrConfig, "cache.source is required when cache is set")
		}
		if err := claim(c.Cache.Target, "cache"); err != nil {
			return err
		}
	}

	for i, v := range c.Volumes {
		if v.Name == "" {
			return fault.Wrapf(ErrConfig, "volumes[%d].name is required", i)
		}
		if strings.ContainsAny(v.Name, "/:") {
			return fault.Wrapf(ErrConfig, "volume name %q must not contain '/' or ':'", v.Name)
		}
		if err := claim(v.Target, "volume "+v.Name); err != nil {
			return err
		}
	}

	return nil
}

// Archive members must stay inside the output directory.
func validateMember(m string) error {
	if m == "" || filepath.IsAbs(m) {
		return fault.Wrapf(ErrConfig, "companion %q must be a relative path", m)
	}
	if strings.HasPrefix(m, "-") {
		return fault.Wrapf(ErrConfig, "companion %q must not start with a dash", m)
	}
	clean := filepath.Clean(m)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fault.Wrapf(ErrConfig, "companion %q escapes the output directory", m)
	}
	return nil
}
