// Symplectic-form validity check: a tableau is a valid Clifford action iff
// its bit matrix T satisfies T·Ω·Tᵀ mod 2 == Ω, where Ω is the
// block-antidiagonal identity of size 2N.

package tableau

// innerProduct computes the symplectic bilinear form of rows a and b in the
// X|Z block convention: Σ_k T[a][k]·T[b][N+k] + T[a][N+k]·T[b][k] mod 2.
func (t *Tableau) innerProduct(a, b int) bool {
	n := t.n
	out := false
	var k int
	for k = 0; k < n; k++ {
		if t.rows[a][k] && t.rows[b][n+k] {
			out = !out
		}
		if t.rows[a][n+k] && t.rows[b][k] {
			out = !out
		}
	}

	return out
}

// IsSymplectic reports whether the tableau preserves the symplectic form:
// (T·Ω·Tᵀ)[i][j] equals Ω[i][j] = 1 iff |i-j| == N. Equivalently, row i and
// row j anticommute as Paulis exactly when they are a destabilizer/stabilizer
// pair for the same qubit.
//
// Gate application and composition are trusted to preserve the form; this is
// a validity check, not an enforced invariant on every mutation.
// Complexity: O(N³).
func (t *Tableau) IsSymplectic() bool {
	size := 2 * t.n
	var i, j int
	for i = 0; i < size; i++ {
		for j = 0; j < size; j++ {
			want := j-i == t.n || i-j == t.n
			if t.innerProduct(i, j) != want {
				return false
			}
		}
	}

	return true
}
