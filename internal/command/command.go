package command

import (
	"context"
	"strings"
)

// Executes external commands.
type Runner interface {

	// Runs cmd to completion. A nil error means the process exited zero.
	Run(ctx context.Context, cmd Cmd) error
}

// An external command invocation.
type Cmd struct {
	Name string   // Program to execute, resolved through PATH.
	Args []string // Arguments, not including the program name.
	Dir  string   // Working directory. Empty inherits the caller's.
	Env  []string // Extra "KEY=value" entries appended to the inherited environment.
}

// Returns a copy of the command prefixed with "sudo" when enabled is true.
//
// The original program becomes the first argument to sudo. Commands that are
// already wrapped are returned unchanged.
func (c Cmd) WithSudo(enabled bool) Cmd {
	if !enabled || c.Name == "sudo" {
		return c
	}
	args := make([]string, 0, len(c.Args)+1)
	args = append(args, c.Name)
	args = append(args, c.Args...)
	c.Name = "sudo"
	c.Args = args
	return c
}

// Returns the full argument vector, program name first.
func (c Cmd) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// Formats the command as a shell-pasteable line.
//
// Words containing characters outside the shell-safe set are single-quoted,
// so the echoed line can be copied back into a terminal for diagnosis.
func (c Cmd) String() string {
	argv := c.Argv()
	words := make([]string, len(argv))
	for i, w := range argv {
		words[i] = quote(w)
	}
	return strings.Join(words, " ")
}

// Quotes a word for POSIX shells when it contains anything unsafe.
func quote(w string) string {
	if w == "" {
		return "''"
	}
	if strings.IndexFunc(w, unsafeRune) < 0 {
		return w
	}
	return "'" + strings.ReplaceAll(w, "'", `'\''`) + "'"
}

func unsafeRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	}
	return !strings.ContainsRune("@%+=:,./-_", r)
}
