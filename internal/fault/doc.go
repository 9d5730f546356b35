// Package fault builds the sentinel errors relpack packages expose.
//
// Each package declares its failure kinds as sentinels created with [New],
// tying them to one of the containerd errdefs classes so generic callers can
// classify a failure without importing the package that produced it. Errors
// are attached to a sentinel with [Wrap] or [Wrapf], keeping both the
// sentinel and the cause reachable through errors.Is and errors.As.
package fault
