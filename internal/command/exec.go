package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
)

// Runs commands as child processes of relpack.
type Exec struct {
	Echo   io.Writer // Receives each command line before it starts. Nil disables echoing.
	Stdout io.Writer // Receives the child's standard output. Nil discards it.
	Stderr io.Writer // Receives the child's standard error. Nil discards it.
}

// Creates an [Exec] that echoes to and passes child output through to the
// process's own stdout and stderr.
func New() *Exec {
	return &Exec{
		Echo:   os.Stdout,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Runs cmd and waits for it to exit.
//
// The command line is echoed first. The process is started exactly once and
// killed if ctx is cancelled. A non-zero exit is reported as an [*ExitError];
// a process that cannot be started at all is reported as [ErrCommand].
func (e *Exec) Run(ctx context.Context, cmd Cmd) error {
	if e.Echo != nil {
		fmt.Fprintln(e.Echo, cmd.String())
	}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdout = writerOrDiscard(e.Stdout)
	c.Stderr = writerOrDiscard(e.Stderr)
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}

	slog.Debug("exec", "argv", cmd.Argv(), "dir", cmd.Dir)

	err := c.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return &ExitError{Cmd: cmd, Code: exitErr.ExitCode()}
	}

	return fmt.Errorf("%w: %s: %w", ErrCommand, cmd, err)
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
