package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cruciblehq/relpack/internal/fault"
	"github.com/cruciblehq/relpack/internal/paths"
	"gopkg.in/yaml.v3"
)

// Builds the configuration for the repository at root.
//
// The defaults are overlaid with the first config file found: file when
// non-empty (it must exist), else relpack.yaml at the repository root, else
// the user-level config file. Keys absent from the file keep their defaults.
// Paths are resolved against root and the result is validated.
func Load(root, file string) (*Config, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fault.Wrap(ErrConfig, err)
	}

	cfg := Default(abs)

	path, err := locate(abs, file)
	if err != nil {
		return nil, err
	}
	if path != "" {
		slog.Debug("loading config", "path", path)
		if err := overlay(cfg, path); err != nil {
			return nil, err
		}
	}

	cfg.resolve()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Picks the config file to overlay. Returns "" when none applies.
func locate(root, file string) (string, error) {
	if file != "" {
		file = paths.Resolve(root, file)
		if !paths.Exists(file) {
			return "", fault.Wrapf(ErrConfig, "config file %s does not exist", file)
		}
		return file, nil
	}

	for _, candidate := range []string{paths.RepoConfig(root), paths.UserConfig()} {
		if paths.Exists(candidate) {
			return candidate, nil
		}
	}

	return "", nil
}

// Decodes the YAML file at path on top of cfg.
//
// Unknown keys are rejected so that typos do not silently fall back to a
// default. An empty file is not an error.
func overlay(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fault.Wrap(ErrConfig, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fault.Wrapf(ErrConfig, "%s: %w", path, err)
	}

	return nil
}

// Makes every host path absolute relative to the repository root.
func (c *Config) resolve() {
	c.Dockerfile = paths.Resolve(c.Root, c.Dockerfile)
	c.Manifest = paths.Resolve(c.Root, c.Manifest)
	c.OutputDir = paths.Resolve(c.Root, c.OutputDir)
	if c.Cache != nil {
		c.Cache.Source = paths.Resolve(c.Root, c.Cache.Source)
	}
}
