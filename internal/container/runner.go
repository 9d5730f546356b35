package container

import (
	"context"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/cruciblehq/relpack/internal/command"
	"github.com/cruciblehq/relpack/internal/config"
	"github.com/cruciblehq/relpack/internal/fault"
	"github.com/cruciblehq/relpack/internal/paths"
)

// Metadata attached to the build image.
type BuildOptions struct {
	Title    string // Package name, recorded as the OCI title label. Defaults to the binary name.
	Version  string // Release version, recorded as the OCI version label.
	Revision string // Source commit, recorded as the OCI revision label. May be empty.
}

// Builds the environment image and runs the build container.
type Runner struct {
	cfg *config.Config // Release configuration.
	cmd command.Runner // Executes the runtime CLI.
}

// Creates a [Runner] for cfg that invokes the runtime through cmd.
func New(cfg *config.Config, cmd command.Runner) *Runner {
	return &Runner{cfg: cfg, cmd: cmd}
}

// Builds the environment image.
//
// The image is tagged with the configured name, built from the configured
// Dockerfile with the repository root as context. Any failure, including a
// non-zero exit of the runtime, is reported as [ErrImage].
func (r *Runner) Build(ctx context.Context, opts BuildOptions) error {
	cmd, err := r.BuildCmd(opts)
	if err != nil {
		return fault.Wrap(ErrImage, err)
	}

	slog.Debug("building image", "image", r.cfg.Image, "dockerfile", r.cfg.Dockerfile)

	if err := r.cmd.Run(ctx, cmd); err != nil {
		return fault.Wrap(ErrImage, err)
	}
	return nil
}

// Runs the build container to completion.
//
// The host output directory is created first so that the runtime does not
// create it with its own ownership. Any failure, including a non-zero exit of
// the container, is reported as [ErrRun].
func (r *Runner) Run(ctx context.Context) error {
	if err := os.MkdirAll(r.cfg.OutputDir, paths.DefaultDirMode); err != nil {
		return fault.Wrap(ErrRun, err)
	}

	slog.Debug("running build container", "image", r.cfg.Image, "output", r.cfg.OutputDir)

	if err := r.cmd.Run(ctx, r.RunCmd()); err != nil {
		return fault.Wrap(ErrRun, err)
	}
	return nil
}

// Returns the runtime invocation that builds the image.
func (r *Runner) BuildCmd(opts BuildOptions) (command.Cmd, error) {
	args := []string{"build", "-t", r.cfg.Image, "-f", r.cfg.Dockerfile}

	platform, err := r.cfg.Runtime.TargetPlatform()
	if err != nil {
		return command.Cmd{}, err
	}
	if platform != "" {
		args = append(args, "--platform", platform)
	}

	title := opts.Title
	if title == "" {
		title = r.cfg.Binary
	}

	for _, l := range Labels(title, opts.Version, opts.Revision) {
		args = append(args, "--label", l.String())
	}

	args = append(args, r.cfg.Root)

	return r.runtimeCmd(args), nil
}

// Returns the runtime invocation that runs the build container.
func (r *Runner) RunCmd() command.Cmd {
	args := []string{"run"}
	if r.cfg.Runtime.Remove {
		args = append(args, "--rm")
	}

	for _, m := range Mounts(r.cfg) {
		args = append(args, "-v", volumeFlag(m))
	}

	for _, k := range slices.Sorted(maps.Keys(r.cfg.Env)) {
		args = append(args, "-e", k+"="+r.cfg.Env[k])
	}

	args = append(args, r.cfg.Image)

	return r.runtimeCmd(args)
}

// Wraps args in the configured runtime executable, with sudo if requested.
func (r *Runner) runtimeCmd(args []string) command.Cmd {
	return command.Cmd{
		Name: r.cfg.Runtime.Command,
		Args: args,
		Dir:  r.cfg.Root,
	}.WithSudo(r.cfg.Runtime.Sudo)
}
