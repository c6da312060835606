// errors.go — sentinel errors for kernel-level direction validation.
//
// The three robust predicates themselves never return an error: their
// preconditions are the caller's duty, and violating one is undefined
// behavior, not a recoverable condition. The sentinels below back
// ValidateDirections, the one kernel entry point that validates rather
// than assumes — used by the config package at startup, before any
// flip runs.
package kernel

import "errors"

var (
	// ErrZeroVector indicates a direction vector is the zero vector.
	ErrZeroVector = errors.New("kernel: direction vector must not be zero")

	// ErrParallelVectors indicates u and v are parallel, so v cannot
	// break a tie that u leaves undecided.
	ErrParallelVectors = errors.New("kernel: u and v must not be parallel")

	// ErrOrthogonalVectors indicates u and v are orthogonal; neither
	// direction vector may be orthogonal to the other.
	ErrOrthogonalVectors = errors.New("kernel: u and v must not be orthogonal")
)
