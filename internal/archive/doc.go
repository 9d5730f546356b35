// Package archive produces the release tarball.
//
// An archive holds the binary and its companion files, taken from the output
// directory and stored under their paths relative to it. Producing an archive
// is idempotent: any file already at the target path, and its checksum
// sidecar, is deleted before the new one is written, so a re-run replaces a
// stale archive instead of adding to it.
//
// Two [Archiver] implementations are provided. [TarCLI] shells out to
// "tar czf", matching what an operator would type. [Native] writes the
// archive in-process with normalized headers (fixed timestamps, no owner
// information), so identical inputs give byte-for-byte identical archives.
//
// Example usage:
//
//	spec := archive.Spec{
//	    Output:  filepath.Join(dir, archive.Name("svc", "1.2.3", true)),
//	    BaseDir: dir,
//	    Members: []string{"svc", "svc.service"},
//	}
//	if err := archive.NewTarCLI(command.New()).Archive(ctx, spec); err != nil {
//	    return err
//	}
package archive
