// Signed Pauli row labels and the dict codec.
//
// A row label is a sign followed by one Pauli letter per qubit, qubit 0
// leftmost: "+XI" is X on qubit 0 of a 2-qubit element. The sign encodes
// the row's phase bit; the wire grammar reserves an imaginary marker
// ([+-]i?), but a tableau phase is a single ±1 bit, so "i" is rejected.

package clifford

import (
	"fmt"
	"strings"
)

// Dict is the serializable representation of an element: the destabilizer
// and stabilizer row labels, each list of length N. It round-trips through
// ToDict/FromDict losslessly.
type Dict struct {
	Destabilizer []string `yaml:"destabilizer" json:"destabilizer"`
	Stabilizer   []string `yaml:"stabilizer" json:"stabilizer"`
}

// rowLabel renders row i as a signed Pauli string.
func (e *Element) rowLabel(i int) string {
	n := e.tab.NQubits()
	var sb strings.Builder
	p, _ := e.tab.Phase(i)
	if p {
		sb.WriteByte('-')
	} else {
		sb.WriteByte('+')
	}
	var q int
	for q = 0; q < n; q++ {
		x, _ := e.tab.Bit(i, q)
		z, _ := e.tab.Bit(i, n+q)
		switch {
		case x && z:
			sb.WriteByte('Y')
		case x:
			sb.WriteByte('X')
		case z:
			sb.WriteByte('Z')
		default:
			sb.WriteByte('I')
		}
	}

	return sb.String()
}

// DestabilizerLabels returns the N labels of rows 0..N-1.
// Complexity: O(N²).
func (e *Element) DestabilizerLabels() []string {
	n := e.tab.NQubits()
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = e.rowLabel(i)
	}

	return out
}

// StabilizerLabels returns the N labels of rows N..2N-1.
// Complexity: O(N²).
func (e *Element) StabilizerLabels() []string {
	n := e.tab.NQubits()
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = e.rowLabel(n + i)
	}

	return out
}

// ToDict returns the dictionary representation of the element.
// Complexity: O(N²).
func (e *Element) ToDict() Dict {
	return Dict{
		Destabilizer: e.DestabilizerLabels(),
		Stabilizer:   e.StabilizerLabels(),
	}
}

// parseLabel decodes one signed Pauli label into 2n row bits and a phase
// bit. n is the expected qubit count.
// Stage 1 (Validate): optional +/- sign, no imaginary marker, exactly n
// Pauli letters from IXYZ.
// Stage 2 (Execute): fill the X/Z block bits qubit by qubit.
func parseLabel(label string, n int) ([]bool, bool, error) {
	rest := label
	phase := false
	switch {
	case strings.HasPrefix(rest, "+"):
		rest = rest[1:]
	case strings.HasPrefix(rest, "-"):
		phase = true
		rest = rest[1:]
	}
	// Imaginary coefficients are not representable in a single phase bit.
	if strings.HasPrefix(rest, "i") {
		return nil, false, fmt.Errorf("parseLabel(%q): imaginary phase: %w", label, ErrInvalidLabel)
	}
	if len(rest) != n {
		return nil, false, fmt.Errorf("parseLabel(%q): %d Pauli(s), want %d: %w", label, len(rest), n, ErrShapeMismatch)
	}

	bits := make([]bool, 2*n)
	var q int
	for q = 0; q < n; q++ {
		switch rest[q] {
		case 'I':
		case 'X':
			bits[q] = true
		case 'Y':
			bits[q] = true
			bits[n+q] = true
		case 'Z':
			bits[n+q] = true
		default:
			return nil, false, fmt.Errorf("parseLabel(%q): character %q: %w", label, rest[q], ErrInvalidLabel)
		}
	}

	return bits, phase, nil
}

// FromDict rebuilds an element from its dictionary representation: the
// destabilizer labels become rows 0..N-1, the stabilizer labels rows
// N..2N-1. The two lists must have equal positive length N and every label
// must carry exactly N Paulis.
// Complexity: O(N²).
func FromDict(d Dict) (*Element, error) {
	n := len(d.Destabilizer)
	// Validate list lengths
	if n == 0 || len(d.Stabilizer) != n {
		return nil, fmt.Errorf("FromDict: %d destabilizer vs %d stabilizer label(s): %w",
			n, len(d.Stabilizer), ErrShapeMismatch)
	}

	rows := make([][]bool, 2*n)
	phase := make([]bool, 2*n)
	var i int
	var err error
	for i = 0; i < n; i++ {
		if rows[i], phase[i], err = parseLabel(d.Destabilizer[i], n); err != nil {
			return nil, err
		}
		if rows[n+i], phase[n+i], err = parseLabel(d.Stabilizer[i], n); err != nil {
			return nil, err
		}
	}

	return FromRows(rows, phase)
}
