package command

import (
	"errors"
	"fmt"
)

var (
	ErrCommand = errors.New("command failed")
	ErrExit    = fmt.Errorf("%w: non-zero exit status", ErrCommand)
)

// Returned when a command ran to completion but exited non-zero.
type ExitError struct {
	Cmd  Cmd // Command that failed.
	Code int // Exit status reported by the process.
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s: exit status %d", e.Cmd, e.Code)
}

func (e *ExitError) Unwrap() error {
	return ErrExit
}

// Returns the exit status carried by err, or -1 if err does not come from a
// process that exited.
func ExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return -1
}
