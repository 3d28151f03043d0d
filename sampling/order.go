// Group orders. |Sp(2n,2)| grows doubly-exponentially, so everything here
// is math/big; fixed-width integers overflow already around n = 5.

package sampling

import (
	"fmt"
	"math/big"
)

const (
	// Order1Q is the order of the 1-qubit Clifford group (up to phase):
	// |Sp(2,2)|·2² = 6·4 = 24.
	Order1Q = 24

	// Order2Q is the order of the 2-qubit Clifford group (up to phase):
	// |Sp(4,2)|·2⁴ = 720·16 = 11520.
	Order2Q = 11520
)

// GroupOrder returns |Sp(2n,2)| = 2^{n²} · Π_{k=1..n}(4^k − 1) as an
// arbitrary-precision integer.
// Complexity: O(n) big-integer multiplications.
func GroupOrder(n int) (*big.Int, error) {
	// Validate qubit count
	if n <= 0 {
		return nil, fmt.Errorf("GroupOrder(%d): %w", n, ErrBadQubits)
	}

	// 2^{n²}
	size := new(big.Int).Lsh(big.NewInt(1), uint(n*n))

	// Π_{k=1..n} (4^k − 1)
	one := big.NewInt(1)
	factor := new(big.Int)
	var k int
	for k = 1; k <= n; k++ {
		factor.Lsh(one, uint(2*k)) // 4^k
		factor.Sub(factor, one)
		size.Mul(size, factor)
	}

	return size, nil
}

// PhaseSpaceOrder returns the number of (symplectic matrix, phase vector)
// pairs, |Sp(2n,2)| · 2^{2n}: the size of the canonical enumeration the
// random sampler draws from.
// Complexity: O(n) big-integer multiplications.
func PhaseSpaceOrder(n int) (*big.Int, error) {
	size, err := GroupOrder(n)
	if err != nil {
		return nil, err
	}

	return size.Lsh(size, uint(2*n)), nil
}
