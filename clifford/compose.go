// Tableau-level group multiplication, with optional embedding of a smaller
// operand into a subsystem of the larger one.

package clifford

import (
	"fmt"

	"github.com/kvantor/cliffgo/tableau"
)

// ComposeOptions configures Compose.
//
// Fields:
//   - Qubits — subsystem positions to embed `other` on; nil means both
//     operands act on the same full set of qubits.
//   - Front  — if true, compose by right multiplication (`other` applied
//     first); default is left multiplication (receiver applied first).
type ComposeOptions struct {
	Qubits []int
	Front  bool
}

// ComposeOption mutates ComposeOptions.
type ComposeOption func(*ComposeOptions)

// DefaultComposeOptions returns the zero configuration: full-system
// composition, receiver applied first.
func DefaultComposeOptions() ComposeOptions { return ComposeOptions{} }

// WithQubits embeds the other operand on the given subsystem positions
// (one position per qubit of the smaller operand, in order).
func WithQubits(qubits ...int) ComposeOption {
	return func(o *ComposeOptions) { o.Qubits = qubits }
}

// WithFront selects right multiplication: the other operand is applied
// first, the receiver second.
func WithFront() ComposeOption {
	return func(o *ComposeOptions) { o.Front = true }
}

// Compose returns the group product of e and other as a new element; both
// inputs are left untouched.
//
// By default the result applies e first and other second (left
// multiplication other·e). WithFront() swaps the roles. WithQubits(qs)
// first embeds other (acting on len(qs) ≤ N qubits) into e's full space as
// the identity elsewhere, using the reversed-index convention: qubit q maps
// to row/column N-1-q, so qubit 0 occupies the last tensor position.
//
// Each output row is built by taking the corresponding row of the operand
// applied FIRST (the "back" operand) as a bit-mask over the rows of the
// operand applied SECOND (the "front" operand) and rowsum-ing the selected
// rows together. This is tableau multiplication, not a boolean matrix
// product: each row carries an i-exponent accumulated mod 4 across the
// whole selection (tableau.SumRowExp), since partial products can sit at
// ±i·Pauli.
//
// Errors: ErrNilElement on nil input; ErrIncompatible on size mismatch or
// bad qargs. Complexity: O(N³).
func (e *Element) Compose(other *Element, opts ...ComposeOption) (*Element, error) {
	// 1. Validate input element
	if other == nil {
		return nil, fmt.Errorf("Compose: %w", ErrNilElement)
	}

	// 2. Apply options
	cfg := DefaultComposeOptions()
	var fn ComposeOption
	for _, fn = range opts {
		fn(&cfg)
	}

	// 3. Dimension handling: embed on a subsystem, or require equal sizes
	full := other
	if cfg.Qubits != nil {
		embedded, err := e.embed(other, cfg.Qubits)
		if err != nil {
			return nil, err
		}
		full = embedded
	} else if other.NQubits() != e.NQubits() {
		return nil, fmt.Errorf("Compose: %d vs %d qubits: %w", e.NQubits(), other.NQubits(), ErrIncompatible)
	}

	// 4. Pick operand roles: "back" is applied first, "front" second
	front, back := full, e
	if cfg.Front {
		front, back = e, full
	}

	return composeSameSize(front, back), nil
}

// embed expands other (on len(qubits) qubits) into e's full space as the
// identity outside the addressed subsystem, copying block entries with the
// reversed-index convention (qubit q ↔ row/column N-1-q).
func (e *Element) embed(other *Element, qubits []int) (*Element, error) {
	nq, no := e.NQubits(), other.NQubits()

	// Validate qargs: one position per qubit of other, in range, distinct
	if len(qubits) != no || no > nq {
		return nil, fmt.Errorf("Compose: %d qarg(s) for a %d-qubit operand: %w", len(qubits), no, ErrIncompatible)
	}
	seen := make(map[int]bool, len(qubits))
	var q int
	for _, q = range qubits {
		if q < 0 || q >= nq || seen[q] {
			return nil, fmt.Errorf("Compose: qarg %d: %w", q, ErrIncompatible)
		}
		seen[q] = true
	}

	full, _ := Identity(nq)
	ft, ot := full.tab, other.tab

	// Clear the identity diagonal inside the addressed block, then copy the
	// operand's X/Z sub-blocks and phases row by row.
	var inda, indb int
	var qa, qb int
	for inda, qa = range qubits {
		ra, sa := nq-1-qa, no-1-inda // destabilizer row in full / other
		for indb, qb = range qubits {
			cb, sb := nq-1-qb, no-1-indb
			v, _ := ot.Bit(sa, sb)
			_ = ft.SetBit(ra, cb, v)
			v, _ = ot.Bit(sa, no+sb)
			_ = ft.SetBit(ra, nq+cb, v)
			v, _ = ot.Bit(no+sa, sb)
			_ = ft.SetBit(nq+ra, cb, v)
			v, _ = ot.Bit(no+sa, no+sb)
			_ = ft.SetBit(nq+ra, nq+cb, v)
		}
		p, _ := ot.Phase(sa)
		_ = ft.SetPhase(ra, p)
		p, _ = ot.Phase(no + sa)
		_ = ft.SetPhase(nq+ra, p)
	}

	return full, nil
}

// composeSameSize multiplies two equal-size elements: output row i is the
// ordered product of the front rows selected by back row i's bits, with a
// single i-exponent carried mod 4 across the whole accumulation. Row
// construction order (j ascending) matters for the sign accumulation and
// is fixed.
//
// The exponent starts from the back row itself: its phase bit weighs 2
// (a −1 sign is i²), and every Y in the row contributes one i, because
// splitting the row into X/Z generator selectors rewrites each Y as i·X·Z.
// Selected front rows add their phase (weight 2) and the pairwise
// sign-rule exponents. A valid product always lands on 0 or 2 mod 4.
func composeSameSize(front, back *Element) *Element {
	n := front.NQubits()
	size := 2 * n

	// Snapshot front rows once: SumRowExp mutates its destination only.
	fbits := make([][]bool, size)
	fphase := make([]bool, size)
	var j int
	for j = 0; j < size; j++ {
		fbits[j], fphase[j], _ = front.tab.Row(j)
	}

	rows := make([][]bool, size)
	phase := make([]bool, size)
	var i, q int
	for i = 0; i < size; i++ {
		bbits, bphase, _ := back.tab.Row(i)
		acc := make([]bool, size)

		e := 0
		if bphase {
			e += 2
		}
		for q = 0; q < n; q++ {
			if bbits[q] && bbits[n+q] {
				e++
			}
		}
		for j = 0; j < size; j++ {
			if bbits[j] {
				exp, _ := tableau.SumRowExp(acc, fbits[j])
				e += exp
				if fphase[j] {
					e += 2
				}
			}
		}
		rows[i] = acc
		phase[i] = ((e%4)+4)%4 == 2
	}

	t, _ := tableau.NewFromRows(rows, phase)

	return &Element{tab: t}
}
