package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/cruciblehq/relpack/internal/fault"
)

// Package metadata declared by the manifest.
type Package struct {
	Name    string // Value of package.name; may be empty.
	Version string // Value of package.version, verbatim.
}

// Shape of the manifest fields relpack reads. Values are decoded loosely so
// that a non-string version is reported as such rather than as a TOML error.
type document struct {
	Package *struct {
		Name    any `toml:"name"`
		Version any `toml:"version"`
	} `toml:"package"`
}

// Returns the package version declared by the manifest at path.
//
// Fails with [ErrManifest] when the file is missing or unreadable, is not
// valid TOML, has no package.version string, or the version is not a
// semantic version.
func ResolveVersion(path string) (string, error) {
	pkg, err := Read(path)
	if err != nil {
		return "", err
	}
	return pkg.Version, nil
}

// Reads the package table of the manifest at path.
func Read(path string) (*Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fault.Wrap(ErrManifest, err)
	}

	var doc document
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, fault.Wrapf(ErrManifest, "%s: %w", path, err)
	}

	if doc.Package == nil {
		return nil, fault.Wrapf(ErrManifest, "%s: no [package] table", path)
	}

	version, err := versionString(doc.Package.Version)
	if err != nil {
		return nil, fault.Wrapf(ErrManifest, "%s: %w", path, err)
	}

	name, _ := doc.Package.Name.(string)

	return &Package{Name: name, Version: version}, nil
}

// Validates the raw package.version value.
func versionString(raw any) (string, error) {
	switch v := raw.(type) {
	case nil:
		return "", fmt.Errorf("package.version is missing")
	case string:
		if strings.TrimSpace(v) == "" {
			return "", fmt.Errorf("package.version is empty")
		}
		if _, err := semver.StrictNewVersion(v); err != nil {
			return "", fmt.Errorf("package.version %q: %w", v, err)
		}
		return v, nil
	default:
		// e.g. `version.workspace = true`, which needs the workspace manifest.
		return "", fmt.Errorf("package.version must be a string, got %T", raw)
	}
}
