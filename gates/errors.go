// Package gates: sentinel error set. Tests match via errors.Is.

package gates

import "errors"

var (
	// ErrUnknownGate is returned when a gate name is outside the fixed
	// Clifford generator set. Unknown names must error, never no-op.
	ErrUnknownGate = errors.New("gates: unknown gate name")

	// ErrArity indicates that the supplied qubit list length does not match
	// the gate's arity (1 or 2).
	ErrArity = errors.New("gates: qubit list does not match gate arity")

	// ErrQubitRange indicates a qubit index outside [0, NQubits) or a
	// two-qubit gate addressed to the same qubit twice.
	ErrQubitRange = errors.New("gates: qubit index out of range")
)
