// Aaronson–Gottesman "rowsum": GF(2) row addition with sign tracking.
// The sign rule reproduces Pauli multiplication phases without a lookup
// table of the four single-qubit Pauli symbols. The bookkeeping is an
// i-exponent mod 4, not a parity: cyclic products (Z·X, X·Y, Y·Z)
// contribute +1, anticyclic ones (X·Z, Y·X, Z·Y) contribute −1, and a
// phase flip means the summed exponent lands on 2.

package tableau

import "fmt"

// signG is the per-qubit i-exponent of the ordered single-qubit Pauli
// product (x1,z1)·(x2,z2), with (x1,z1) the left factor: +1 for cyclic
// pairs, −1 for anticyclic pairs, 0 when either factor is the identity or
// the factors are equal.
func signG(x1, z1, x2, z2 bool) int {
	switch {
	case !x1 && z1 && x2 && !z2, // Z·X = +iY
		x1 && !z1 && x2 && z2, // X·Y = +iZ
		x1 && z1 && !x2 && z2: // Y·Z = +iX
		return 1
	case x1 && !z1 && !x2 && z2, // X·Z = −iY
		x1 && z1 && x2 && !z2, // Y·X = −iZ
		!x1 && z1 && x2 && z2: // Z·Y = −iX
		return -1
	}

	return 0
}

// SumRowExp adds srcBits into dstBits over GF(2) and returns the summed
// sign-rule exponent Σ_k g(dst_k, src_k), computed from the pre-XOR bits.
// dstBits is mutated in place; the caller must own it exclusively. Both
// rows must share the same even length.
//
// The exponent is returned raw so that callers chaining several additions
// can fold it into a phase bit only once, mod 4: a partial product can sit
// at ±i·Pauli, which a single bit per step cannot carry.
// Complexity: O(N).
func SumRowExp(dstBits, srcBits []bool) (int, error) {
	size := len(dstBits)
	// Validate: equal, even, positive lengths
	if size == 0 || size%2 != 0 || len(srcBits) != size {
		return 0, fmt.Errorf("SumRowExp: rows of length %d and %d: %w", size, len(srcBits), ErrBadShape)
	}
	n := size / 2

	// 1. Accumulate the exponent over qubits using the pre-XOR bits.
	exp := 0
	var k int
	for k = 0; k < n; k++ {
		exp += signG(dstBits[k], dstBits[n+k], srcBits[k], srcBits[n+k])
	}

	// 2. XOR the source bits into the destination.
	for k = 0; k < size; k++ {
		dstBits[k] = dstBits[k] != srcBits[k]
	}

	return exp, nil
}

// SumRow adds srcBits into dstBits over GF(2) and returns the updated
// phase bit: dstPhase ⊕ srcPhase, flipped once more when the sign-rule
// exponent of the single product lands on 2 mod 4. For chains of
// additions use SumRowExp and fold the exponents at the end.
// Complexity: O(N).
func SumRow(dstBits []bool, dstPhase bool, srcBits []bool, srcPhase bool) (bool, error) {
	exp, err := SumRowExp(dstBits, srcBits)
	if err != nil {
		return dstPhase, err
	}

	out := dstPhase != srcPhase
	if ((exp%4)+4)%4 == 2 {
		out = !out
	}

	return out, nil
}

// RowSum performs the stabilizer rowsum update in place: row h ← row h +
// row i over GF(2), with the phase of row h updated by the sign rule.
// Row i is left untouched; summing a row into itself zeroes its bits.
// Stage 1 (Validate): both indices in [0, 2N).
// Stage 2 (Execute): delegate to SumRow on the owned storage.
// Complexity: O(N).
func (t *Tableau) RowSum(h, i int) error {
	if err := t.checkRow("RowSum", h); err != nil {
		return err
	}
	if err := t.checkRow("RowSum", i); err != nil {
		return err
	}

	// Self-sum would alias dst and src; operate on a copy of the source.
	src := t.rows[i]
	if h == i {
		src = make([]bool, len(t.rows[i]))
		copy(src, t.rows[i])
	}

	out, err := SumRow(t.rows[h], t.phase[h], src, t.phase[i])
	if err != nil {
		return err
	}
	t.phase[h] = out

	return nil
}
