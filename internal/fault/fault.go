package fault

import "fmt"

// A sentinel with its own message that also matches a broader class.
type kind struct {
	msg   string
	class error
}

func (k *kind) Error() string { return k.msg }
func (k *kind) Unwrap() error { return k.class }

// Creates a sentinel error reporting msg that matches class under errors.Is.
//
// class is usually one of the errdefs sentinels (errdefs.ErrNotFound, ...),
// but any error works, including another sentinel created by New.
func New(msg string, class error) error {
	return &kind{msg: msg, class: class}
}

// Attaches err to sentinel. The result matches both under errors.Is.
func Wrap(sentinel, err error) error {
	return fmt.Errorf("%w: %w", sentinel, err)
}

// Attaches a formatted message to sentinel. The format may itself use %w.
func Wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %w", sentinel, fmt.Errorf(format, args...))
}
