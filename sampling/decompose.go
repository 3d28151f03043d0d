// Closed-form canonical decomposition for the 1- and 2-qubit Clifford
// groups: an index modulo the group order maps to a fixed minimal
// elementary-gate sequence. Each sub-range of the index corresponds to a
// fixed coset of the group — this is arithmetic, not search.

package sampling

import (
	"fmt"

	"github.com/kvantor/cliffgo/clifford"
	"github.com/kvantor/cliffgo/gates"
)

// appendPauli appends the Pauli factor selected by idx ∈ [0,4): nothing,
// z, x, or y on the given qubit.
func appendPauli(seq []gates.Gate, qubit, idx int) []gates.Gate {
	switch idx {
	case 1:
		return append(seq, gates.Gate{Name: "z", Qubits: []int{qubit}})
	case 2:
		return append(seq, gates.Gate{Name: "x", Qubits: []int{qubit}})
	case 3:
		return append(seq, gates.Gate{Name: "y", Qubits: []int{qubit}})
	}

	return seq
}

// appendHadamard appends h when idx is 1.
func appendHadamard(seq []gates.Gate, qubit, idx int) []gates.Gate {
	if idx == 1 {
		return append(seq, gates.Gate{Name: "h", Qubits: []int{qubit}})
	}

	return seq
}

// appendRotation appends the order-3 rotation factor selected by
// idx ∈ [0,3): nothing, v, or w.
func appendRotation(seq []gates.Gate, qubit, idx int) []gates.Gate {
	switch idx {
	case 1:
		return append(seq, gates.Gate{Name: "v", Qubits: []int{qubit}})
	case 2:
		return append(seq, gates.Gate{Name: "w", Qubits: []int{qubit}})
	}

	return seq
}

func appendCNOT(seq []gates.Gate, control, target int) []gates.Gate {
	return append(seq, gates.Gate{Name: "cx", Qubits: []int{control, target}})
}

// Decompose1Q maps an index modulo 24 to the canonical 1-qubit Clifford
// gate sequence: the hadamard(2) · rotation(3) · pauli(4) factorization,
// emitted in that order.
// Complexity: O(1).
func Decompose1Q(idx int) ([]gates.Gate, error) {
	if idx < 0 {
		return nil, fmt.Errorf("Decompose1Q(%d): %w", idx, ErrBadIndex)
	}
	canon := idx % Order1Q
	pauli := canon % 4
	rotation := (canon / 4) % 3
	hadamard := (canon / 12) % 2

	seq := make([]gates.Gate, 0, 3)
	seq = appendHadamard(seq, 0, hadamard)
	seq = appendRotation(seq, 0, rotation)
	seq = appendPauli(seq, 0, pauli)

	return seq, nil
}

// Decompose2Q maps an index modulo 11520 to the canonical 2-qubit Clifford
// gate sequence. The symplectic part (index/16) falls into four
// structurally distinct coset classes — local (< 36), CNOT-like (< 360),
// iSWAP-like (< 684), SWAP-like (rest) — each with a fixed
// hadamard/rotation/cnot template; the low 4 bits select the two Pauli
// factors appended last.
// Complexity: O(1).
func Decompose2Q(idx int) ([]gates.Gate, error) {
	if idx < 0 {
		return nil, fmt.Errorf("Decompose2Q(%d): %w", idx, ErrBadIndex)
	}
	canon := idx % Order2Q
	pauli := canon % 16
	symp := canon / 16

	seq := make([]gates.Gate, 0, 11)
	switch {
	case symp < 36: // local class: two independent 1-qubit Cliffords
		r0, r1 := symp%3, (symp/3)%3
		h0, h1 := (symp/9)%2, (symp/18)%2
		seq = appendHadamard(seq, 0, h0)
		seq = appendHadamard(seq, 1, h1)
		seq = appendRotation(seq, 0, r0)
		seq = appendRotation(seq, 1, r1)

	case symp < 360: // CNOT-like class
		s := symp - 36
		r0, r1 := s%3, (s/3)%3
		r2, r3 := (s/9)%3, (s/27)%3
		h0, h1 := (s/81)%2, (s/162)%2
		seq = appendHadamard(seq, 0, h0)
		seq = appendHadamard(seq, 1, h1)
		seq = appendRotation(seq, 0, r0)
		seq = appendRotation(seq, 1, r1)
		seq = appendCNOT(seq, 0, 1)
		seq = appendRotation(seq, 0, r2)
		seq = appendRotation(seq, 1, r3)

	case symp < 684: // iSWAP-like class
		s := symp - 360
		r0, r1 := s%3, (s/3)%3
		r2, r3 := (s/9)%3, (s/27)%3
		h0, h1 := (s/81)%2, (s/162)%2
		seq = appendHadamard(seq, 0, h0)
		seq = appendHadamard(seq, 1, h1)
		seq = appendRotation(seq, 0, r0)
		seq = appendRotation(seq, 1, r1)
		seq = appendCNOT(seq, 0, 1)
		seq = appendCNOT(seq, 1, 0)
		seq = appendRotation(seq, 0, r2)
		seq = appendRotation(seq, 1, r3)

	default: // SWAP class
		s := symp - 684
		r0, r1 := s%3, (s/3)%3
		h0, h1 := (s/9)%2, (s/18)%2
		seq = appendHadamard(seq, 0, h0)
		seq = appendHadamard(seq, 1, h1)
		seq = appendRotation(seq, 0, r0)
		seq = appendRotation(seq, 1, r1)
		seq = appendCNOT(seq, 0, 1)
		seq = appendCNOT(seq, 1, 0)
		seq = appendCNOT(seq, 0, 1)
	}

	seq = appendPauli(seq, 0, pauli%4)
	seq = appendPauli(seq, 1, pauli/4)

	return seq, nil
}

// Element1Q folds Decompose1Q(idx) into a 1-qubit Clifford element.
// Complexity: O(1).
func Element1Q(idx int) (*clifford.Element, error) {
	seq, err := Decompose1Q(idx)
	if err != nil {
		return nil, err
	}

	return clifford.FromGates(1, seq)
}

// Element2Q folds Decompose2Q(idx) into a 2-qubit Clifford element.
// Complexity: O(1).
func Element2Q(idx int) (*clifford.Element, error) {
	seq, err := Decompose2Q(idx)
	if err != nil {
		return nil, err
	}

	return clifford.FromGates(2, seq)
}
