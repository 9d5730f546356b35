package archive

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cruciblehq/relpack/internal/fault"
	"github.com/cruciblehq/relpack/internal/paths"
)

// Extension of every archive this package writes.
const Extension = ".tar.gz"

// Describes an archive to produce.
type Spec struct {
	Output  string   // Path of the archive file. Replaced if it exists.
	BaseDir string   // Directory the members are resolved against.
	Members []string // Paths relative to BaseDir, stored in this order.
}

// Writes a compressed tar archive.
type Archiver interface {

	// Writes the archive described by spec, replacing any existing file at
	// spec.Output. Fails with [ErrPackaging].
	Archive(ctx context.Context, spec Spec) error
}

// Returns the archive file name for a binary.
//
// Versioned names embed the release version ("svc-1.2.3.tar.gz"); unversioned
// names are fixed ("svc.tar.gz") for consumers that always want the latest.
func Name(binary, version string, versioned bool) string {
	if versioned && version != "" {
		return binary + "-" + version + Extension
	}
	return binary + Extension
}

// Checks the spec and clears the way for a fresh archive.
//
// Every member must exist below BaseDir. Any existing file at Output, and any
// checksum sidecar next to it, is then deleted, and Output's parent directory is created if needed. Nothing is
// deleted when a member is missing.
func prepare(spec Spec) error {
	if spec.Output == "" {
		return fault.Wrapf(ErrPackaging, "no output path")
	}
	if len(spec.Members) == 0 {
		return fault.Wrapf(ErrPackaging, "no members")
	}

	for _, m := range spec.Members {
		if _, err := os.Lstat(filepath.Join(spec.BaseDir, m)); err != nil {
			return fault.Wrapf(ErrPackaging, "member %q: %w", m, err)
		}
	}

	for _, stale := range []string{spec.Output, spec.Output + ChecksumExtension} {
		if err := os.Remove(stale); err == nil {
			slog.Debug("removed stale file", "path", stale)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fault.Wrap(ErrPackaging, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(spec.Output), paths.DefaultDirMode); err != nil {
		return fault.Wrap(ErrPackaging, err)
	}

	return nil
}
