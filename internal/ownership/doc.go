// Package ownership hands the built binary back to the invoking user.
//
// The container writes the binary through the output bind mount as its own
// build user, which on the host is usually root or an unrelated UID. Before
// the binary is archived it is chowned to the operator, either directly or
// through "sudo chown" when the operator lacks the privilege to do so.
//
// A missing binary is reported as [ErrNotFound] rather than as a generic
// failure: it means the container exited successfully without producing the
// artifact it was expected to produce.
package ownership
