package archive

import (
	"archive/tar"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cruciblehq/relpack/internal/fault"
	"github.com/cruciblehq/relpack/internal/paths"
	"github.com/klauspost/compress/gzip"
)

// Timestamp stamped on every entry so that archives do not depend on when
// the inputs were written.
var epoch = time.Unix(0, 0).UTC()

// Writes archives in-process with reproducible headers.
//
// Entries carry their permission bits and content only: modification times
// are fixed, and owner IDs and names are zeroed. Directory members are added
// recursively in lexical order.
type Native struct {
	Level int // gzip compression level. Zero uses gzip.BestCompression.
}

// Writes the archive described by spec.
//
// A partially written archive is removed if writing fails.
func (a *Native) Archive(ctx context.Context, spec Spec) error {
	if err := prepare(spec); err != nil {
		return err
	}

	if err := a.write(ctx, spec); err != nil {
		os.Remove(spec.Output)
		return fault.Wrap(ErrPackaging, err)
	}
	return nil
}

func (a *Native) write(ctx context.Context, spec Spec) error {
	f, err := os.OpenFile(spec.Output, os.O_WRONLY|os.O_CREATE|os.O_EXCL, paths.DefaultFileMode)
	if err != nil {
		return err
	}
	defer f.Close()

	level := a.Level
	if level == 0 {
		level = gzip.BestCompression
	}

	zw, err := gzip.NewWriterLevel(f, level)
	if err != nil {
		return err
	}
	tw := tar.NewWriter(zw)

	for _, m := range spec.Members {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := writeMember(tw, spec.BaseDir, filepath.Clean(m)); err != nil {
			return fmt.Errorf("member %q: %w", m, err)
		}
	}

	if err := tw.Close(); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}
	return f.Close()
}

// Writes a member, recursing into directories.
func writeMember(tw *tar.Writer, base, member string) error {
	root := filepath.Join(base, member)

	info, err := os.Lstat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return writeEntry(tw, root, filepath.ToSlash(member), info)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		return writeEntry(tw, path, filepath.ToSlash(rel), info)
	})
}

// Writes a single file, directory or symlink entry with normalized metadata.
func writeEntry(tw *tar.Writer, hostPath, name string, info fs.FileInfo) error {
	header := &tar.Header{
		Name:    name,
		Mode:    int64(info.Mode().Perm()),
		ModTime: epoch,
	}

	switch {
	case info.Mode().IsRegular():
		header.Typeflag = tar.TypeReg
		header.Size = info.Size()
	case info.IsDir():
		header.Typeflag = tar.TypeDir
		header.Name += "/"
	case info.Mode()&fs.ModeSymlink != 0:
		target, err := os.Readlink(hostPath)
		if err != nil {
			return err
		}
		header.Typeflag = tar.TypeSymlink
		header.Linkname = target
	default:
		return fmt.Errorf("%s: unsupported file type %s", name, info.Mode().Type())
	}

	if err := tw.WriteHeader(header); err != nil {
		return err
	}

	if header.Typeflag != tar.TypeReg {
		return nil
	}

	f, err := os.Open(hostPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(tw, f)
	return err
}
