// Package commandtest provides a recording [command.Runner] for tests.
package commandtest

import (
	"context"
	"sync"

	"github.com/cruciblehq/relpack/internal/command"
)

// Records every command instead of executing it.
//
// When Handler is set it is invoked for each command and its error is
// returned to the caller, which lets tests simulate side effects (a container
// writing its artifact) or failures (a non-zero exit).
type Recorder struct {
	Handler func(cmd command.Cmd) error

	mu    sync.Mutex
	calls []command.Cmd
}

// Records cmd and delegates to Handler.
func (r *Recorder) Run(ctx context.Context, cmd command.Cmd) error {
	r.mu.Lock()
	r.calls = append(r.calls, cmd)
	r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if r.Handler != nil {
		return r.Handler(cmd)
	}
	return nil
}

// Returns a copy of the recorded commands in call order.
func (r *Recorder) Calls() []command.Cmd {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]command.Cmd(nil), r.calls...)
}

// Returns the program of each recorded command, looking through sudo.
func (r *Recorder) Programs() []string {
	calls := r.Calls()
	names := make([]string, len(calls))
	for i, c := range calls {
		names[i] = Program(c)
	}
	return names
}

// Returns the effective program of cmd, looking through a sudo prefix.
func Program(cmd command.Cmd) string {
	if cmd.Name == "sudo" && len(cmd.Args) > 0 {
		return cmd.Args[0]
	}
	return cmd.Name
}

// Returns the effective arguments of cmd, looking through a sudo prefix.
func Args(cmd command.Cmd) []string {
	if cmd.Name == "sudo" && len(cmd.Args) > 0 {
		return cmd.Args[1:]
	}
	return cmd.Args
}

// Returns an error of the same shape [command.Exec] produces for a process
// that exited with code.
func Exit(cmd command.Cmd, code int) error {
	return &command.ExitError{Cmd: cmd, Code: code}
}
