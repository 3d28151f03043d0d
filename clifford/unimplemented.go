// Declared-but-unsupported operations. Computing an explicit 2^N×2^N
// unitary (and the operations that need one) is outside this engine's
// scope; each stub fails with ErrNotImplemented so callers can detect the
// limitation instead of receiving a silently wrong default.

package clifford

import "fmt"

// ToMatrix would convert the element to its explicit unitary matrix.
// Unsupported: always returns ErrNotImplemented.
func (e *Element) ToMatrix() ([][]complex128, error) {
	return nil, fmt.Errorf("ToMatrix: %w", ErrNotImplemented)
}

// ToOperator would convert the element to a dense operator.
// Unsupported: always returns ErrNotImplemented.
func (e *Element) ToOperator() ([][]complex128, error) {
	return nil, fmt.Errorf("ToOperator: %w", ErrNotImplemented)
}

// Transpose would return the transposed element.
// Unsupported: always returns ErrNotImplemented.
func (e *Element) Transpose() (*Element, error) {
	return nil, fmt.Errorf("Transpose: %w", ErrNotImplemented)
}

// Tensor would return the tensor product e ⊗ other.
// Unsupported: always returns ErrNotImplemented.
func (e *Element) Tensor(_ *Element) (*Element, error) {
	return nil, fmt.Errorf("Tensor: %w", ErrNotImplemented)
}

// Expand would return the tensor product other ⊗ e.
// Unsupported: always returns ErrNotImplemented.
func (e *Element) Expand(_ *Element) (*Element, error) {
	return nil, fmt.Errorf("Expand: %w", ErrNotImplemented)
}
