// Uniform random Clifford elements: a random phase vector plus a uniform
// group index pushed through the Koenig–Smolin bijection.

package sampling

import (
	"fmt"
	"math/big"
	"math/rand"

	"github.com/kvantor/cliffgo/clifford"
)

// Random returns a uniformly distributed n-qubit Clifford element.
//
// The draw order is fixed (phase bits first, then the group index), so the
// same seed yields the same element bit-for-bit. big.Int.Rand performs
// rejection sampling internally, keeping the index unbiased even though
// |Sp(2n,2)| is not a power of two.
//
// The sampled matrix arrives in the bijection's interleaved row/column
// convention and is deinterleaved into the tableau's X|Z block convention:
// block row i ← interleaved row 2i, block row n+i ← interleaved row 2i+1,
// and the same permutation on columns.
// Complexity: O(n³).
func Random(n int, opts ...Option) (*clifford.Element, error) {
	// 1. Validate qubit count
	if n <= 0 {
		return nil, fmt.Errorf("Random(%d): %w", n, ErrBadQubits)
	}

	// 2. Apply options
	cfg := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&cfg)
	}
	rng := cfg.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	// 3. Random phase vector: 2n independent bits
	phase := make([]bool, 2*n)
	var i int
	for i = 0; i < 2*n; i++ {
		phase[i] = rng.Intn(2) == 1
	}

	// 4. Uniform group index in [0, |Sp(2n,2)|)
	size, _ := GroupOrder(n)
	idx := new(big.Int).Rand(rng, size)

	// 5. Bijection, then deinterleave rows and columns
	symp := symplecticMatrix(idx, n)
	rows := deinterleave(symp, n)

	return clifford.FromRows(rows, phase)
}

// deinterleave permutes a (x1,z1,x2,z2,...) matrix into X|Z block layout on
// both axes.
func deinterleave(symp [][]bool, n int) [][]bool {
	size := 2 * n

	// Rows: block row i ← interleaved row 2i; block row n+i ← row 2i+1.
	byRow := make([][]bool, size)
	var i int
	for i = 0; i < n; i++ {
		byRow[i] = symp[2*i]
		byRow[n+i] = symp[2*i+1]
	}

	// Columns: same permutation.
	out := make([][]bool, size)
	var r, j int
	for r = 0; r < size; r++ {
		out[r] = make([]bool, size)
		for j = 0; j < n; j++ {
			out[r][j] = byRow[r][2*j]
			out[r][n+j] = byRow[r][2*j+1]
		}
	}

	return out
}
