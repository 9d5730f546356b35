package archive

import (
	_ "crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cruciblehq/relpack/internal/fault"
	"github.com/cruciblehq/relpack/internal/paths"
	"github.com/opencontainers/go-digest"
)

// Extension of the checksum sidecar written next to an archive.
const ChecksumExtension = ".sha256"

// Returns the sha256 digest of the file at path.
func Digest(path string) (digest.Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fault.Wrap(ErrPackaging, err)
	}
	defer f.Close()

	d, err := digest.Canonical.FromReader(f)
	if err != nil {
		return "", fault.Wrap(ErrPackaging, err)
	}
	return d, nil
}

// Writes "<hex>  <name>" for the archive at path to path + ".sha256" and
// returns the sidecar's path.
//
// The line is in the format "sha256sum -c" reads, with the archive's base
// name so the pair can be moved together. An existing sidecar is replaced.
func WriteChecksum(path string, d digest.Digest) (string, error) {
	if err := d.Validate(); err != nil {
		return "", fault.Wrap(ErrPackaging, err)
	}
	if d.Algorithm() != digest.SHA256 {
		return "", fault.Wrapf(ErrPackaging, "checksum sidecar needs a sha256 digest, got %s", d.Algorithm())
	}

	sidecar := path + ChecksumExtension
	line := fmt.Sprintf("%s  %s\n", d.Encoded(), filepath.Base(path))

	if err := os.WriteFile(sidecar, []byte(line), paths.DefaultFileMode); err != nil {
		return "", fault.Wrap(ErrPackaging, err)
	}
	return sidecar, nil
}
