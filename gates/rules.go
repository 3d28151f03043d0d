// Column-wise tableau transforms for the twelve generators.
//
// Conventions: for a tableau on N qubits, qubit q owns X column q and Z
// column N+q. Each rule rewrites those columns (and the phase bit) across
// all 2N rows, conjugating every row's Pauli by the gate. Signs are pinned
// by worked per-gate test vectors.

package gates

import "github.com/kvantor/cliffgo/tableau"

// bit and setBit wrap the bounds-checked accessors; indices are
// pre-validated by Apply, so the error path is unreachable here.
func bit(t *tableau.Tableau, i, j int) bool {
	v, _ := t.Bit(i, j)

	return v
}

func setBit(t *tableau.Tableau, i, j int, v bool) { _ = t.SetBit(i, j, v) }

func phase(t *tableau.Tableau, i int) bool {
	v, _ := t.Phase(i)

	return v
}

func flipPhase(t *tableau.Tableau, i int) { _ = t.SetPhase(i, !phase(t, i)) }

// applyI: the identity leaves every row untouched.
func applyI(_ *tableau.Tableau, _ []int) {}

// applyX: X q — phase ^= z_q. Anticommutes with Z-type rows.
func applyX(t *tableau.Tableau, qubits []int) {
	n, q := t.NQubits(), qubits[0]
	for i := 0; i < 2*n; i++ {
		if bit(t, i, n+q) {
			flipPhase(t, i)
		}
	}
}

// applyY: Y q — phase ^= x_q ⊕ z_q. Anticommutes with X- and Z-type rows.
func applyY(t *tableau.Tableau, qubits []int) {
	n, q := t.NQubits(), qubits[0]
	for i := 0; i < 2*n; i++ {
		if bit(t, i, q) != bit(t, i, n+q) {
			flipPhase(t, i)
		}
	}
}

// applyZ: Z q — phase ^= x_q. Anticommutes with X-type rows.
func applyZ(t *tableau.Tableau, qubits []int) {
	n, q := t.NQubits(), qubits[0]
	for i := 0; i < 2*n; i++ {
		if bit(t, i, q) {
			flipPhase(t, i)
		}
	}
}

// applyH: H q — phase ^= x_q ∧ z_q (Y picks up a sign), then swap x_q ↔ z_q.
func applyH(t *tableau.Tableau, qubits []int) {
	n, q := t.NQubits(), qubits[0]
	var x, z bool
	for i := 0; i < 2*n; i++ {
		x, z = bit(t, i, q), bit(t, i, n+q)
		if x && z {
			flipPhase(t, i)
		}
		setBit(t, i, q, z)
		setBit(t, i, n+q, x)
	}
}

// applyS: S q — phase ^= x_q ∧ z_q, then z_q ^= x_q (X → Y → -X cycle).
func applyS(t *tableau.Tableau, qubits []int) {
	n, q := t.NQubits(), qubits[0]
	var x, z bool
	for i := 0; i < 2*n; i++ {
		x, z = bit(t, i, q), bit(t, i, n+q)
		if x && z {
			flipPhase(t, i)
		}
		setBit(t, i, n+q, z != x)
	}
}

// applySdg: S† q — phase ^= x_q ∧ ¬z_q, then z_q ^= x_q (X → -Y → -X).
func applySdg(t *tableau.Tableau, qubits []int) {
	n, q := t.NQubits(), qubits[0]
	var x, z bool
	for i := 0; i < 2*n; i++ {
		x, z = bit(t, i, q), bit(t, i, n+q)
		if x && !z {
			flipPhase(t, i)
		}
		setBit(t, i, n+q, z != x)
	}
}

// applyV: V q = H·S† (S† first) — (x_q, z_q) ← (x_q ⊕ z_q, x_q), phase
// unchanged. Order 3: X → Y → Z → X.
func applyV(t *tableau.Tableau, qubits []int) {
	n, q := t.NQubits(), qubits[0]
	var x, z bool
	for i := 0; i < 2*n; i++ {
		x, z = bit(t, i, q), bit(t, i, n+q)
		setBit(t, i, q, x != z)
		setBit(t, i, n+q, x)
	}
}

// applyW: W q = V·V — (x_q, z_q) ← (z_q, x_q ⊕ z_q), phase unchanged.
// Inverse of V: X → Z → Y → X.
func applyW(t *tableau.Tableau, qubits []int) {
	n, q := t.NQubits(), qubits[0]
	var x, z bool
	for i := 0; i < 2*n; i++ {
		x, z = bit(t, i, q), bit(t, i, n+q)
		setBit(t, i, q, z)
		setBit(t, i, n+q, x != z)
	}
}

// applyCX: CX c,t — phase ^= x_c ∧ z_t ∧ (x_t ⊕ z_c ⊕ 1), then x_t ^= x_c
// and z_c ^= z_t. Propagates X across control→target, Z target→control.
func applyCX(t *tableau.Tableau, qubits []int) {
	n, c, tg := t.NQubits(), qubits[0], qubits[1]
	var xc, zc, xt, zt bool
	for i := 0; i < 2*n; i++ {
		xc, zc = bit(t, i, c), bit(t, i, n+c)
		xt, zt = bit(t, i, tg), bit(t, i, n+tg)
		if xc && zt && (xt == zc) {
			flipPhase(t, i)
		}
		setBit(t, i, tg, xt != xc)
		setBit(t, i, n+c, zc != zt)
	}
}

// applyCZ: CZ c,t — phase ^= x_c ∧ x_t ∧ (z_c ⊕ z_t), then z_t ^= x_c and
// z_c ^= x_t. Symmetric in its two qubits.
func applyCZ(t *tableau.Tableau, qubits []int) {
	n, c, tg := t.NQubits(), qubits[0], qubits[1]
	var xc, zc, xt, zt bool
	for i := 0; i < 2*n; i++ {
		xc, zc = bit(t, i, c), bit(t, i, n+c)
		xt, zt = bit(t, i, tg), bit(t, i, n+tg)
		if xc && xt && (zc != zt) {
			flipPhase(t, i)
		}
		setBit(t, i, n+tg, zt != xc)
		setBit(t, i, n+c, zc != xt)
	}
}

// applySwap: SWAP a,b — exchange X and Z columns of the two qubits.
func applySwap(t *tableau.Tableau, qubits []int) {
	n, a, b := t.NQubits(), qubits[0], qubits[1]
	var xa, za, xb, zb bool
	for i := 0; i < 2*n; i++ {
		xa, za = bit(t, i, a), bit(t, i, n+a)
		xb, zb = bit(t, i, b), bit(t, i, n+b)
		setBit(t, i, a, xb)
		setBit(t, i, n+a, zb)
		setBit(t, i, b, xa)
		setBit(t, i, n+b, za)
	}
}
