package archive

import (
	"archive/tar"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/containerd/errdefs"
	"github.com/cruciblehq/relpack/internal/command"
	"github.com/cruciblehq/relpack/internal/command/commandtest"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	binary = "journald-to-cloudwatch"
	unit   = "journald-to-cloudwatch.service"
)

// Populates a release directory with a binary and its unit file.
func releaseDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, binary), []byte("\x7fELF binary"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, unit), []byte("[Unit]\n"), 0644))
	return dir
}

func releaseSpec(dir, name string) Spec {
	return Spec{
		Output:  filepath.Join(dir, name),
		BaseDir: dir,
		Members: []string{binary, unit},
	}
}

// Returns entry names and regular file contents of a tar.gz archive.
func readArchive(t *testing.T, path string) ([]string, map[string]string) {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	tr := tar.NewReader(zr)

	var names []string
	contents := map[string]string{}
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		names = append(names, hdr.Name)
		if hdr.Typeflag == tar.TypeReg {
			data, err := io.ReadAll(tr)
			require.NoError(t, err)
			contents[hdr.Name] = string(data)
		}
	}
	return names, contents
}

func requireTar(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("tar"); err != nil {
		t.Skip("tar not available")
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		version   string
		versioned bool
		want      string
	}{
		{"1.2.3", true, "journald-to-cloudwatch-1.2.3.tar.gz"},
		{"1.2.3", false, "journald-to-cloudwatch.tar.gz"},
		{"0.1.0-rc.1", true, "journald-to-cloudwatch-0.1.0-rc.1.tar.gz"},
		{"", true, "journald-to-cloudwatch.tar.gz"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Name(binary, tt.version, tt.versioned))
		})
	}
}

// Runs the shared contract against both backends.
func backends(t *testing.T) map[string]Archiver {
	t.Helper()
	all := map[string]Archiver{"native": &Native{}}
	if _, err := exec.LookPath("tar"); err == nil {
		all["tarcli"] = NewTarCLI(&command.Exec{Stdout: io.Discard, Stderr: io.Discard})
	}
	return all
}

func TestArchiveContainsExactlyMembers(t *testing.T) {
	for name, a := range backends(t) {
		t.Run(name, func(t *testing.T) {
			dir := releaseDir(t)
			spec := releaseSpec(dir, Name(binary, "1.2.3", true))

			require.NoError(t, a.Archive(context.Background(), spec))

			names, contents := readArchive(t, spec.Output)
			assert.ElementsMatch(t, []string{binary, unit}, names)
			assert.Equal(t, "\x7fELF binary", contents[binary])
			assert.Equal(t, "[Unit]\n", contents[unit])
		})
	}
}

func TestArchiveIsIdempotent(t *testing.T) {
	for name, a := range backends(t) {
		t.Run(name, func(t *testing.T) {
			dir := releaseDir(t)
			spec := releaseSpec(dir, Name(binary, "1.2.3", true))

			require.NoError(t, a.Archive(context.Background(), spec))
			first, _ := readArchive(t, spec.Output)

			require.NoError(t, a.Archive(context.Background(), spec))
			second, _ := readArchive(t, spec.Output)

			assert.Equal(t, first, second)

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Len(t, entries, 3, "binary, unit and a single archive")
		})
	}
}

func TestArchiveReplacesStaleArchive(t *testing.T) {
	for name, a := range backends(t) {
		t.Run(name, func(t *testing.T) {
			dir := releaseDir(t)
			spec := releaseSpec(dir, Name(binary, "1.2.3", true))
			require.NoError(t, os.WriteFile(spec.Output, []byte("stale, not even gzip"), 0644))

			require.NoError(t, a.Archive(context.Background(), spec))

			names, _ := readArchive(t, spec.Output)
			assert.ElementsMatch(t, []string{binary, unit}, names)
		})
	}
}

func TestArchiveRemovesStaleChecksum(t *testing.T) {
	for name, a := range backends(t) {
		t.Run(name, func(t *testing.T) {
			dir := releaseDir(t)
			spec := releaseSpec(dir, Name(binary, "1.2.3", true))
			sidecar := spec.Output + ChecksumExtension
			require.NoError(t, os.WriteFile(sidecar, []byte("0000  old.tar.gz\n"), 0644))

			require.NoError(t, a.Archive(context.Background(), spec))

			_, err := os.Stat(sidecar)
			assert.True(t, errors.Is(err, fs.ErrNotExist), "sidecar of the previous archive removed")
		})
	}
}

func TestArchiveMissingMember(t *testing.T) {
	for name, a := range backends(t) {
		t.Run(name, func(t *testing.T) {
			dir := releaseDir(t)
			require.NoError(t, os.Remove(filepath.Join(dir, unit)))

			spec := releaseSpec(dir, Name(binary, "1.2.3", true))
			require.NoError(t, os.WriteFile(spec.Output, []byte("previous"), 0644))

			err := a.Archive(context.Background(), spec)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrPackaging))
			assert.True(t, errdefs.IsFailedPrecondition(err))
			assert.True(t, errors.Is(err, fs.ErrNotExist), "cause kept in the chain")

			data, err := os.ReadFile(spec.Output)
			require.NoError(t, err)
			assert.Equal(t, "previous", string(data), "existing archive left alone")
		})
	}
}

func TestArchiveEmptySpec(t *testing.T) {
	err := (&Native{}).Archive(context.Background(), Spec{Output: filepath.Join(t.TempDir(), "x.tar.gz")})
	assert.True(t, errors.Is(err, ErrPackaging))

	err = (&Native{}).Archive(context.Background(), Spec{Members: []string{binary}})
	assert.True(t, errors.Is(err, ErrPackaging))
}

func TestTarCLICommand(t *testing.T) {
	dir := releaseDir(t)
	spec := releaseSpec(dir, "out.tar.gz")
	rec := &commandtest.Recorder{}

	require.NoError(t, NewTarCLI(rec).Archive(context.Background(), spec))

	calls := rec.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "tar", calls[0].Name)
	assert.Equal(t, []string{"czf", spec.Output, "-C", dir, "--", binary, unit}, calls[0].Args)
}

func TestTarCLIFailure(t *testing.T) {
	dir := releaseDir(t)
	rec := &commandtest.Recorder{
		Handler: func(cmd command.Cmd) error { return commandtest.Exit(cmd, 2) },
	}

	err := NewTarCLI(rec).Archive(context.Background(), releaseSpec(dir, "out.tar.gz"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPackaging))
	assert.True(t, errors.Is(err, command.ErrExit))
	assert.Equal(t, 2, command.ExitCode(err))
}

func TestTarCLIWithRealTar(t *testing.T) {
	requireTar(t)

	dir := releaseDir(t)
	spec := releaseSpec(dir, Name(binary, "", false))

	require.NoError(t, NewTarCLI(&command.Exec{}).Archive(context.Background(), spec))
	names, _ := readArchive(t, spec.Output)
	assert.Equal(t, []string{binary, unit}, names)
}

func TestTarCLIDashMember(t *testing.T) {
	requireTar(t)

	dir := releaseDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "--version"), []byte("v"), 0644))

	spec := Spec{
		Output:  filepath.Join(dir, "out.tar.gz"),
		BaseDir: dir,
		Members: []string{binary, "--version"},
	}
	require.NoError(t, NewTarCLI(&command.Exec{}).Archive(context.Background(), spec))

	names, contents := readArchive(t, spec.Output)
	assert.Equal(t, []string{binary, "--version"}, names)
	assert.Equal(t, "v", contents["--version"])
}

func TestNativeIsReproducible(t *testing.T) {
	dir := releaseDir(t)
	spec := releaseSpec(dir, "a.tar.gz")
	a := &Native{}

	require.NoError(t, a.Archive(context.Background(), spec))
	first, err := os.ReadFile(spec.Output)
	require.NoError(t, err)

	// Touch the inputs; the archive must not change.
	require.NoError(t, os.Chtimes(filepath.Join(dir, binary), epoch.AddDate(30, 0, 0), epoch.AddDate(30, 0, 0)))

	require.NoError(t, a.Archive(context.Background(), spec))
	second, err := os.ReadFile(spec.Output)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNativeHeadersAreNormalized(t *testing.T) {
	dir := releaseDir(t)
	spec := releaseSpec(dir, "a.tar.gz")
	require.NoError(t, (&Native{}).Archive(context.Background(), spec))

	f, err := os.Open(spec.Output)
	require.NoError(t, err)
	defer f.Close()

	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	tr := tar.NewReader(zr)

	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		assert.Zero(t, hdr.Uid)
		assert.Zero(t, hdr.Gid)
		assert.Empty(t, hdr.Uname)
		assert.Empty(t, hdr.Gname)
		assert.True(t, hdr.ModTime.Equal(epoch))
	}
}

func TestNativeDirectoryMember(t *testing.T) {
	dir := releaseDir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "conf", "extra"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "conf", "extra", "a.toml"), []byte("a"), 0644))

	spec := Spec{
		Output:  filepath.Join(dir, "a.tar.gz"),
		BaseDir: dir,
		Members: []string{binary, "conf"},
	}
	require.NoError(t, (&Native{}).Archive(context.Background(), spec))

	names, contents := readArchive(t, spec.Output)
	assert.Equal(t, []string{binary, "conf/", "conf/extra/", "conf/extra/a.toml"}, names)
	assert.Equal(t, "a", contents["conf/extra/a.toml"])
}

func TestNativeCancelled(t *testing.T) {
	dir := releaseDir(t)
	spec := releaseSpec(dir, "a.tar.gz")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := (&Native{}).Archive(ctx, spec)
	assert.True(t, errors.Is(err, ErrPackaging))
	assert.True(t, errors.Is(err, context.Canceled))

	_, err = os.Stat(spec.Output)
	assert.True(t, os.IsNotExist(err), "partial archive removed")
}
