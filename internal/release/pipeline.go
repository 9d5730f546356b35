package release

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/cruciblehq/relpack/internal/archive"
	"github.com/cruciblehq/relpack/internal/command"
	"github.com/cruciblehq/relpack/internal/config"
	"github.com/cruciblehq/relpack/internal/container"
	"github.com/cruciblehq/relpack/internal/manifest"
	"github.com/cruciblehq/relpack/internal/ownership"
	"github.com/cruciblehq/relpack/internal/revision"
	"github.com/google/uuid"
	"github.com/opencontainers/go-digest"
)

// Stage names, used to prefix stage errors.
const (
	StageVersion   = "resolve version"
	StageImage     = "build image"
	StageContainer = "run container"
	StageOwnership = "reconcile ownership"
	StageArchive   = "archive"
	StagePublish   = "publish"
)

// Uploads a finished file and returns where it was stored.
type Publisher interface {
	Upload(ctx context.Context, file string) (string, error)
}

// Returned after a successful run.
type Result struct {
	ID        string        // Unique identifier of the run.
	Name      string        // Package name read from the manifest. May be empty.
	Version   string        // Version read from the manifest.
	Revision  string        // Source commit the image was labelled with. May be empty.
	Archive   string        // Path of the produced archive.
	Digest    digest.Digest // Digest of the archive.
	Checksum  string        // Path of the checksum sidecar, if written.
	Published []string      // URLs of uploaded files, if published.
}

// Sequences the release stages.
type Pipeline struct {
	cfg       *config.Config   // Release configuration.
	cmd       command.Runner   // Executes external tools.
	archiver  archive.Archiver // Writes the archive.
	owner     ownership.Owner  // Owner the binary is handed to.
	publisher Publisher        // Optional upload target.
}

// Configures a [Pipeline].
type Option func(*Pipeline)

// Replaces the archiver selected by the archive format.
func WithArchiver(a archive.Archiver) Option {
	return func(p *Pipeline) { p.archiver = a }
}

// Hands the binary to owner instead of the invoking user.
func WithOwner(owner ownership.Owner) Option {
	return func(p *Pipeline) { p.owner = owner }
}

// Publishes the archive, and its checksum if written, after packaging.
func WithPublisher(pub Publisher) Option {
	return func(p *Pipeline) { p.publisher = pub }
}

// Creates a [Pipeline] for cfg that runs external tools through cmd.
func New(cfg *config.Config, cmd command.Runner, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:   cfg,
		cmd:   cmd,
		owner: ownership.CurrentUser(),
	}

	switch cfg.Archive.Format {
	case config.FormatNative:
		p.archiver = &archive.Native{}
	default:
		p.archiver = archive.NewTarCLI(cmd)
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Runs every stage in order and stops at the first failure.
//
// Errors are prefixed with the name of the failing stage and keep the stage's
// own error kind, so callers can still test them with errors.Is.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	res := &Result{ID: uuid.NewString()}
	log := slog.With("run", res.ID)

	pkg, err := manifest.Read(p.cfg.Manifest)
	if err != nil {
		return nil, stageError(StageVersion, err)
	}
	res.Name = pkg.Name
	res.Version = pkg.Version
	log.Debug("resolved version", "name", pkg.Name, "version", pkg.Version, "manifest", p.cfg.Manifest)

	res.Revision = p.revision(log)

	builder := container.New(p.cfg, p.cmd)

	opts := container.BuildOptions{Title: res.Name, Version: res.Version, Revision: res.Revision}
	if err := builder.Build(ctx, opts); err != nil {
		return nil, stageError(StageImage, err)
	}

	if err := builder.Run(ctx); err != nil {
		return nil, stageError(StageContainer, err)
	}

	reconciler := ownership.New(p.cfg.Ownership.Sudo, p.cmd)
	if err := reconciler.Reconcile(ctx, p.cfg.BinaryPath(), p.owner); err != nil {
		return nil, stageError(StageOwnership, err)
	}

	if err := p.archive(ctx, res, log); err != nil {
		return nil, stageError(StageArchive, err)
	}

	if p.publisher != nil {
		if err := p.publish(ctx, res, log); err != nil {
			return nil, stageError(StagePublish, err)
		}
	}

	log.Debug("release packaged", "archive", res.Archive, "version", res.Version, "digest", res.Digest.String())

	return res, nil
}

// Returns the source revision, or "" if it cannot be determined.
func (p *Pipeline) revision(log *slog.Logger) string {
	rev, err := revision.Head(p.cfg.Root)
	if err != nil {
		log.Warn("cannot determine source revision", "root", p.cfg.Root, "error", err)
		return ""
	}
	return rev
}

// Returns the archive spec for version.
func (p *Pipeline) archiveSpec(version string) archive.Spec {
	name := archive.Name(p.cfg.Binary, version, p.cfg.Archive.Versioned)
	return archive.Spec{
		Output:  filepath.Join(p.cfg.OutputDir, name),
		BaseDir: p.cfg.OutputDir,
		Members: p.cfg.Members(),
	}
}

func (p *Pipeline) archive(ctx context.Context, res *Result, log *slog.Logger) error {
	spec := p.archiveSpec(res.Version)

	log.Debug("writing archive", "output", spec.Output, "members", spec.Members)

	if err := p.archiver.Archive(ctx, spec); err != nil {
		return err
	}
	res.Archive = spec.Output

	d, err := archive.Digest(spec.Output)
	if err != nil {
		return err
	}
	res.Digest = d

	if p.cfg.Archive.Checksum {
		sidecar, err := archive.WriteChecksum(spec.Output, d)
		if err != nil {
			return err
		}
		res.Checksum = sidecar
	}

	return nil
}

func (p *Pipeline) publish(ctx context.Context, res *Result, log *slog.Logger) error {
	files := []string{res.Archive}
	if res.Checksum != "" {
		files = append(files, res.Checksum)
	}

	for _, f := range files {
		url, err := p.publisher.Upload(ctx, f)
		if err != nil {
			return err
		}
		log.Debug("uploaded", "file", f, "url", url)
		res.Published = append(res.Published, url)
	}

	return nil
}

func stageError(stage string, err error) error {
	return fmt.Errorf("%s: %w", stage, err)
}
