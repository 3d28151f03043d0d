// Koenig–Smolin bijection between [0, |Sp(2n,2)|) and the symplectic group
// over GF(2), built from transvections (arXiv:1406.2170, Algorithm
// SYMPLECTICImproved). Vectors here use the paper's interleaved convention
// (x1, z1, x2, z2, ...); random.go permutes the result into the tableau's
// X|Z block convention.

package sampling

import "math/big"

// innerInterleaved is the symplectic inner product Σ_k v[2k]·w[2k+1] +
// w[2k]·v[2k+1] mod 2 on interleaved vectors.
func innerInterleaved(v, w []bool) bool {
	out := false
	var k int
	for k = 0; k+1 < len(v); k += 2 {
		if v[k] && w[k+1] {
			out = !out
		}
		if w[k] && v[k+1] {
			out = !out
		}
	}

	return out
}

// transvect applies the transvection Z_k: v ↦ v + ⟨k,v⟩·k, mutating and
// returning v. A zero k is the identity transvection.
func transvect(k, v []bool) []bool {
	if !innerInterleaved(k, v) {
		return v
	}
	var j int
	for j = range v {
		v[j] = v[j] != k[j]
	}

	return v
}

// bigBits extracts the low nbits of i, least-significant first.
func bigBits(i *big.Int, nbits int) []bool {
	out := make([]bool, nbits)
	var j int
	for j = 0; j < nbits; j++ {
		out[j] = i.Bit(j) == 1
	}

	return out
}

// pairNonzero reports whether the qubit pair (v[2i], v[2i+1]) is nonzero.
func pairNonzero(v []bool, i int) bool { return v[2*i] || v[2*i+1] }

// findTransvection returns h0, h1 such that y = Z_h0 Z_h1 x for nonzero
// x, y (Koenig–Smolin Lemma 2). Either output may be the zero (identity)
// transvection.
func findTransvection(x, y []bool) ([]bool, []bool) {
	nn := len(x)
	h0 := make([]bool, nn)
	h1 := make([]bool, nn)

	// 1. Equal vectors need no transvection.
	if equalBits(x, y) {
		return h0, h1
	}

	// 2. Anticommuting pair: one transvection along x+y suffices.
	if innerInterleaved(x, y) {
		for j := range h0 {
			h0[j] = x[j] != y[j]
		}

		return h0, h1
	}

	// 3. Commuting pair: route through an intermediate z.
	z := make([]bool, nn)
	var i, ii int

	// 3a. Some qubit pair where both x and y are nonzero.
	for i = 0; i < nn/2; i++ {
		ii = 2 * i
		if pairNonzero(x, i) && pairNonzero(y, i) {
			z[ii] = x[ii] != y[ii]
			z[ii+1] = x[ii+1] != y[ii+1]
			if !z[ii] && !z[ii+1] { // same pair value: pick a z anticommuting with it
				z[ii+1] = true
				if x[ii] != x[ii+1] {
					z[ii] = true
				}
			}
			for j := range h0 {
				h0[j] = x[j] != z[j]
				h1[j] = y[j] != z[j]
			}

			return h0, h1
		}
	}

	// 3b. Disjoint supports: pick a pair where x is nonzero and y is zero...
	for i = 0; i < nn/2; i++ {
		ii = 2 * i
		if pairNonzero(x, i) && !pairNonzero(y, i) {
			if x[ii] == x[ii+1] {
				z[ii+1] = true
			} else {
				z[ii+1] = x[ii]
				z[ii] = x[ii+1]
			}

			break
		}
	}

	// 3c. ...and a pair where y is nonzero and x is zero.
	for i = 0; i < nn/2; i++ {
		ii = 2 * i
		if !pairNonzero(x, i) && pairNonzero(y, i) {
			if y[ii] == y[ii+1] {
				z[ii+1] = true
			} else {
				z[ii+1] = y[ii]
				z[ii] = y[ii+1]
			}

			break
		}
	}

	for j := range h0 {
		h0[j] = x[j] != z[j]
		h1[j] = y[j] != z[j]
	}

	return h0, h1
}

func equalBits(a, b []bool) bool {
	for j := range a {
		if a[j] != b[j] {
			return false
		}
	}

	return true
}

// symplecticMatrix maps a group index in [0, |Sp(2n,2)|) to the
// corresponding symplectic matrix in the interleaved convention, by
// peeling index digits recursively: the low digits choose the images of
// the first basis pair (e1, f1) via transvections, the rest index
// Sp(2(n-1),2).
//
// idx is consumed as an arbitrary-precision integer; it is not mutated.
// Complexity: O(n³).
func symplecticMatrix(idx *big.Int, n int) [][]bool {
	nn := 2 * n

	// 1. Split off the first digit: k ∈ [1, 2^{2n}-1] selects f1 = image of e1.
	s := new(big.Int).Lsh(big.NewInt(1), uint(nn))
	s.Sub(s, big.NewInt(1))
	rest := new(big.Int)
	k := new(big.Int)
	rest.DivMod(idx, s, k)
	k.Add(k, big.NewInt(1))

	f1 := bigBits(k, nn)

	// 2. Transvections mapping e1 ↦ f1.
	e1 := make([]bool, nn)
	e1[0] = true
	t0, t1 := findTransvection(e1, f1)

	// 3. Next 2n-1 bits choose the image of the conjugate basis vector.
	bmod := new(big.Int).Lsh(big.NewInt(1), uint(nn-1))
	bval := new(big.Int).Mod(rest, bmod)
	bits := bigBits(bval, nn-1)

	eprime := make([]bool, nn)
	copy(eprime, e1)
	var j int
	for j = 2; j < nn; j++ {
		eprime[j] = bits[j-1]
	}
	h0 := transvect(t0, eprime)
	h0 = transvect(t1, h0)

	// 4. bits[0] decides whether the f1 transvection is skipped.
	if bits[0] {
		for j = range f1 {
			f1[j] = false
		}
	}

	// 5. Recurse on the remaining index for the (n-1)-qubit block.
	var g [][]bool
	if n == 1 {
		g = [][]bool{{true, false}, {false, true}}
	} else {
		sub := symplecticMatrix(new(big.Int).Rsh(rest, uint(nn-1)), n-1)
		g = make([][]bool, nn)
		for j = 0; j < nn; j++ {
			g[j] = make([]bool, nn)
		}
		g[0][0] = true
		g[1][1] = true
		var r, c int
		for r = range sub {
			for c = range sub[r] {
				g[r+2][c+2] = sub[r][c]
			}
		}
	}

	// 6. Push every row through the chosen transvections.
	for j = 0; j < nn; j++ {
		g[j] = transvect(t0, g[j])
		g[j] = transvect(t1, g[j])
		g[j] = transvect(h0, g[j])
		g[j] = transvect(f1, g[j])
	}

	return g
}
