// Package sampling: sentinel error set. Tests match via errors.Is.

package sampling

import "errors"

var (
	// ErrBadQubits indicates a non-positive qubit count.
	ErrBadQubits = errors.New("sampling: qubit count must be positive")

	// ErrBadIndex indicates a negative canonical group index.
	ErrBadIndex = errors.New("sampling: canonical index must be non-negative")
)
