// Package clifford: sentinel error set. Tests match via errors.Is.

package clifford

import "errors"

var (
	// ErrNilElement indicates a nil *Element (receiver or argument) or a nil
	// tableau passed into a constructor.
	ErrNilElement = errors.New("clifford: nil element")

	// ErrShapeMismatch is returned when supplied data is inconsistent with
	// the declared qubit count: wrong row counts, label list lengths, or
	// label widths.
	ErrShapeMismatch = errors.New("clifford: shape mismatch")

	// ErrIncompatible indicates operands that cannot be composed: unequal
	// qubit counts without qargs, or a qargs list whose length, range, or
	// uniqueness is wrong.
	ErrIncompatible = errors.New("clifford: incompatible composition")

	// ErrNonClifford rejects an instruction outside the fixed Clifford
	// generator set. The engine never attempts partial or approximate
	// support for such gates.
	ErrNonClifford = errors.New("clifford: non-Clifford instruction")

	// ErrInvalidLabel indicates a Pauli row label not matching the accepted
	// format: an optional +/- sign followed by one of I, X, Y, Z per qubit.
	// Imaginary phase markers ("+i", "-i") are rejected: a tableau phase is
	// a single ±1 bit.
	ErrInvalidLabel = errors.New("clifford: invalid Pauli label")

	// ErrNotImplemented marks an intentionally unsupported operation on the
	// element surface (ToMatrix, ToOperator, Transpose, Tensor, Expand).
	ErrNotImplemented = errors.New("clifford: operation not implemented")
)
