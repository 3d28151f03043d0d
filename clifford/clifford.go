// Element construction, ownership, gate application, and the pointwise
// group operations (conjugate, reset, equality).

package clifford

import (
	"errors"
	"fmt"

	"github.com/kvantor/cliffgo/gates"
	"github.com/kvantor/cliffgo/tableau"
)

// Element is one Clifford group element on a fixed number of qubits. It
// wraps exactly one 2N-row symplectic tableau and owns it exclusively:
// constructors deep-copy their input and Clone never shares storage.
type Element struct {
	tab *tableau.Tableau
}

// Identity returns the identity element on n qubits.
// Complexity: O(n²).
func Identity(n int) (*Element, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Identity(%d): %w", n, ErrShapeMismatch)
	}
	t, _ := tableau.NewIdentity(n)

	return &Element{tab: t}, nil
}

// FromTableau wraps a tableau as a Clifford element. The tableau is
// deep-copied, so the caller keeps ownership of its argument.
// A tableau always has 2×NQubits rows by construction; nil input is the
// only rejectable shape here.
// Complexity: O(n²).
func FromTableau(t *tableau.Tableau) (*Element, error) {
	if t == nil {
		return nil, fmt.Errorf("FromTableau: %w", ErrNilElement)
	}

	return &Element{tab: t.Clone()}, nil
}

// FromRows builds an element from raw tableau rows and phases, validating
// that the row count is twice a positive qubit count.
// Complexity: O(n²).
func FromRows(rows [][]bool, phase []bool) (*Element, error) {
	t, err := tableau.NewFromRows(rows, phase)
	if err != nil {
		return nil, fmt.Errorf("FromRows: %d rows: %w", len(rows), ErrShapeMismatch)
	}

	return &Element{tab: t}, nil
}

// NQubits returns the number of qubits the element acts on.
// Complexity: O(1).
func (e *Element) NQubits() int { return e.tab.NQubits() }

// Tableau exposes the underlying tableau for read-only inspection.
// Mutating the returned tableau bypasses the element's exclusive-ownership
// contract; use Apply, Compose, or Reset instead.
// Complexity: O(1).
func (e *Element) Tableau() *tableau.Tableau { return e.tab }

// Clone returns a deep copy; the two elements share no storage.
// Complexity: O(n²).
func (e *Element) Clone() *Element {
	return &Element{tab: e.tab.Clone()}
}

// Equal reports element-wise equality of tableau bits and phase.
// Complexity: O(n²).
func (e *Element) Equal(o *Element) bool {
	if o == nil {
		return false
	}

	return e.tab.Equal(o.tab)
}

// Reset restores the identity element in place, for building an element
// back up incrementally.
// Complexity: O(n²).
func (e *Element) Reset() { e.tab.Reset() }

// IsSymplectic reports whether the element's tableau preserves the
// symplectic form (i.e. describes a valid Clifford unitary).
// Complexity: O(n³).
func (e *Element) IsSymplectic() bool { return e.tab.IsSymplectic() }

// Apply folds one elementary generator onto the element in place, in
// circuit order (first gate applied first). Gates outside the generator set
// are rejected with ErrNonClifford; arity and range violations surface the
// gates sentinels unchanged. A failing call leaves the element unmodified.
// Complexity: O(n).
func (e *Element) Apply(name string, qubits []int) error {
	if err := gates.Apply(e.tab, name, qubits); err != nil {
		if errors.Is(err, gates.ErrUnknownGate) {
			return fmt.Errorf("clifford: instruction %q: %w", name, ErrNonClifford)
		}

		return err
	}

	return nil
}

// Conjugate returns the complex conjugate of the element: a copy whose row
// phases flip wherever the row contains an odd number of Y Paulis
// (popcount(X ∧ Z) mod 2), accounting for the imaginary unit in Y.
// Complexity: O(n²).
func (e *Element) Conjugate() *Element {
	out := e.Clone()
	n := e.tab.NQubits()
	var i, q, ys int
	for i = 0; i < 2*n; i++ {
		ys = 0
		for q = 0; q < n; q++ {
			x, _ := e.tab.Bit(i, q)
			z, _ := e.tab.Bit(i, n+q)
			if x && z {
				ys++
			}
		}
		if ys%2 == 1 {
			p, _ := out.tab.Phase(i)
			_ = out.tab.SetPhase(i, !p)
		}
	}

	return out
}

// String renders the element through its stabilizer/destabilizer labels.
func (e *Element) String() string {
	return fmt.Sprintf("Clifford: Stabilizer = %v, Destabilizer = %v",
		e.StabilizerLabels(), e.DestabilizerLabels())
}
