// Package tableau: sentinel error set.
// All public operations MUST return these sentinels (optionally wrapped with
// fmt.Errorf("ctx: %w", ErrX)) and tests check them via errors.Is. No public
// operation panics on user-triggered conditions.

package tableau

import "errors"

var (
	// ErrBadShape is returned when a requested or supplied shape is invalid:
	// non-positive qubit count, odd row count, row length != 2N, or phase
	// vector length != 2N.
	ErrBadShape = errors.New("tableau: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside [0, 2N).
	// Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("tableau: index out of range")
)
