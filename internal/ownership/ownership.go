package ownership

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/cruciblehq/relpack/internal/command"
	"github.com/cruciblehq/relpack/internal/fault"
	"golang.org/x/sys/unix"
)

// A numeric user and group pair.
type Owner struct {
	UID int
	GID int
}

// Returns the real user and group of the relpack process.
func CurrentUser() Owner {
	return Owner{UID: unix.Getuid(), GID: unix.Getgid()}
}

// Formats the owner as "uid:gid", the form chown accepts.
func (o Owner) String() string {
	return strconv.Itoa(o.UID) + ":" + strconv.Itoa(o.GID)
}

// Changes the ownership of build artifacts.
type Reconciler struct {
	sudo bool           // Run chown through sudo instead of calling chown(2).
	cmd  command.Runner // Executes "sudo chown" when sudo is set.
}

// Creates a [Reconciler]. cmd is only used when sudo is true.
func New(sudo bool, cmd command.Runner) *Reconciler {
	return &Reconciler{sudo: sudo, cmd: cmd}
}

// Makes path owned by owner and checks that it is readable afterwards.
//
// Fails with [ErrNotFound] if path does not exist or is not a regular file,
// and with [ErrPermission] if the change is refused or the file stays
// unreadable. Nothing is changed when path already has the requested owner.
// Symbolic links are not followed.
func (r *Reconciler) Reconcile(ctx context.Context, path string, owner Owner) error {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return classify(path, err)
	}

	if st.Mode&unix.S_IFMT != unix.S_IFREG {
		return fault.Wrapf(ErrNotFound, "%s is not a regular file", path)
	}

	if int(st.Uid) == owner.UID && int(st.Gid) == owner.GID {
		slog.Debug("ownership already reconciled", "path", path, "owner", owner.String())
	} else if err := r.chown(ctx, path, owner); err != nil {
		return err
	}

	if err := unix.Access(path, unix.R_OK); err != nil {
		return fault.Wrapf(ErrPermission, "%s is not readable: %w", path, err)
	}

	return nil
}

func (r *Reconciler) chown(ctx context.Context, path string, owner Owner) error {
	slog.Debug("changing ownership", "path", path, "owner", owner.String(), "sudo", r.sudo)

	if r.sudo {
		cmd := command.Cmd{Name: "chown", Args: []string{owner.String(), path}}.WithSudo(true)
		if err := r.cmd.Run(ctx, cmd); err != nil {
			return fault.Wrap(ErrPermission, err)
		}
		return nil
	}

	if err := unix.Lchown(path, owner.UID, owner.GID); err != nil {
		return classify(path, err)
	}
	return nil
}

// Maps a syscall error on path to one of the package sentinels.
func classify(path string, err error) error {
	switch {
	case errors.Is(err, unix.ENOENT), errors.Is(err, unix.ENOTDIR):
		return fault.Wrapf(ErrNotFound, "%s: %w", path, err)
	default:
		return fault.Wrapf(ErrPermission, "%s: %w", path, err)
	}
}
