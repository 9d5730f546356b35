package archive

import (
	"context"

	"github.com/cruciblehq/relpack/internal/command"
	"github.com/cruciblehq/relpack/internal/fault"
)

// Writes archives with the tar command line tool.
type TarCLI struct {
	cmd command.Runner // Executes tar.
}

// Creates a [TarCLI] that runs tar through cmd.
func NewTarCLI(cmd command.Runner) *TarCLI {
	return &TarCLI{cmd: cmd}
}

// Runs "tar czf <output> -C <base> -- <members...>".
//
// A non-zero exit of tar is reported as [ErrPackaging].
func (a *TarCLI) Archive(ctx context.Context, spec Spec) error {
	if err := prepare(spec); err != nil {
		return err
	}

	args := append([]string{"czf", spec.Output, "-C", spec.BaseDir, "--"}, spec.Members...)

	if err := a.cmd.Run(ctx, command.Cmd{Name: "tar", Args: args}); err != nil {
		return fault.Wrap(ErrPackaging, err)
	}
	return nil
}
