package config

import (
	"path/filepath"
)

// Archive formats.
const (
	FormatTar    = "tar"    // Shell out to the tar CLI.
	FormatNative = "native" // Write the archive in-process with normalized headers.
)

// Release configuration for one invocation.
type Config struct {
	Root       string            `yaml:"-"`          // Repository root; build context and base for relative paths.
	Image      string            `yaml:"image"`      // Tag for the build-environment image.
	Dockerfile string            `yaml:"dockerfile"` // Build-environment definition file.
	Manifest   string            `yaml:"manifest"`   // Project manifest holding package.version.
	OutputDir  string            `yaml:"output_dir"` // Host directory shared with the container and holding the archive.
	Binary     string            `yaml:"binary"`     // File name of the binary the container deposits in OutputDir.
	Companions []string          `yaml:"companions"` // Files archived next to the binary, relative to OutputDir.
	Runtime    Runtime           `yaml:"runtime"`    // Container runtime CLI settings.
	Volumes    []Volume          `yaml:"volumes"`    // Named persistent cache volumes.
	Cache      *Bind             `yaml:"cache"`      // Optional bind-mounted cache directory.
	Output     Output            `yaml:"output"`     // Where OutputDir appears inside the container.
	Env        map[string]string `yaml:"env"`        // Environment overrides for cache locations inside the container.
	Ownership  Ownership         `yaml:"ownership"`  // Ownership reconciliation settings.
	Archive    Archive           `yaml:"archive"`    // Archive naming and format.
	Publish    Publish           `yaml:"publish"`    // Optional upload of the finished archive.
}

// Container runtime CLI settings.
type Runtime struct {
	Command  string `yaml:"command"`  // Runtime executable, e.g. "docker" or "podman".
	Sudo     bool   `yaml:"sudo"`     // Prefix runtime invocations with sudo.
	Platform string `yaml:"platform"` // Optional single target platform, e.g. "linux/amd64".
	Remove   bool   `yaml:"remove"`   // Pass --rm so the exited build container is discarded.
}

// A named volume managed by the container runtime.
type Volume struct {
	Name   string `yaml:"name"`   // Volume name; created by the runtime on first use.
	Target string `yaml:"target"` // Absolute mount point inside the container.
}

// A host directory mounted into the container.
type Bind struct {
	Source  string   `yaml:"source"`  // Host directory, relative to the repository root or absolute.
	Target  string   `yaml:"target"`  // Absolute mount point inside the container.
	Options []string `yaml:"options"` // Mount options such as "z" or "ro".
}

// Mount point of the output directory inside the container.
type Output struct {
	Target  string   `yaml:"target"`  // Absolute mount point inside the container.
	Options []string `yaml:"options"` // Mount options such as "z".
}

// Ownership reconciliation settings.
type Ownership struct {
	Sudo bool `yaml:"sudo"` // Run chown through sudo instead of calling chown(2) directly.
}

// Archive naming and format.
type Archive struct {
	Versioned bool   `yaml:"versioned"` // Embed the manifest version in the archive name.
	Format    string `yaml:"format"`    // [FormatTar] or [FormatNative].
	Checksum  bool   `yaml:"checksum"`  // Write a sha256sum-style sidecar next to the archive.
}

// Upload target for the finished archive.
type Publish struct {
	Bucket    string `yaml:"bucket"`     // S3 bucket. Empty disables publishing.
	Prefix    string `yaml:"prefix"`     // Key prefix inside the bucket.
	Region    string `yaml:"region"`     // AWS region. Empty uses the SDK default chain.
	Endpoint  string `yaml:"endpoint"`   // Custom S3-compatible endpoint.
	PathStyle bool   `yaml:"path_style"` // Use path-style addressing (most S3-compatible stores).
}

// Returns the host path of the binary the container is expected to produce.
func (c *Config) BinaryPath() string {
	return filepath.Join(c.OutputDir, c.Binary)
}

// Returns the archive members in order: the binary, then each companion.
func (c *Config) Members() []string {
	return append([]string{c.Binary}, c.Companions...)
}

// Returns true if publishing has a destination.
func (p Publish) Enabled() bool {
	return p.Bucket != ""
}
