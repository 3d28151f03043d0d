package sampling_test

import (
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvantor/cliffgo/clifford"
	"github.com/kvantor/cliffgo/sampling"
)

// elementKey flattens an element's labels into a comparable string.
func elementKey(e *clifford.Element) string {
	d := e.ToDict()

	return strings.Join(d.Destabilizer, ",") + "|" + strings.Join(d.Stabilizer, ",")
}

// TestGroupOrder pins the exact symplectic group orders for small n and the
// overflow regime for larger n.
func TestGroupOrder(t *testing.T) {
	targets := map[int]int64{
		1: 6,
		2: 720,
		3: 1451520,
	}
	for n, want := range targets {
		size, err := sampling.GroupOrder(n)
		require.NoError(t, err)
		assert.Equal(t, want, size.Int64(), "|Sp(%d,2)|", 2*n)
	}

	// n = 6 no longer fits in a fixed-width integer.
	size, err := sampling.GroupOrder(6)
	require.NoError(t, err)
	assert.Greater(t, size.BitLen(), 64, "|Sp(12,2)| exceeds 64 bits")

	_, err = sampling.GroupOrder(0)
	assert.ErrorIs(t, err, sampling.ErrBadQubits)
	_, err = sampling.GroupOrder(-1)
	assert.ErrorIs(t, err, sampling.ErrBadQubits)
}

// TestPhaseSpaceOrder: the full enumeration size matches the published
// Clifford group orders for one and two qubits.
func TestPhaseSpaceOrder(t *testing.T) {
	size, err := sampling.PhaseSpaceOrder(1)
	require.NoError(t, err)
	assert.Equal(t, int64(sampling.Order1Q), size.Int64())

	size, err = sampling.PhaseSpaceOrder(2)
	require.NoError(t, err)
	assert.Equal(t, int64(sampling.Order2Q), size.Int64())

	size, err = sampling.PhaseSpaceOrder(3)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1451520*64).Int64(), size.Int64())

	_, err = sampling.PhaseSpaceOrder(0)
	assert.ErrorIs(t, err, sampling.ErrBadQubits)
}

// TestRandom_Deterministic: the same seed reproduces the same element, an
// external source seeded identically matches, and the stream varies with
// the seed.
func TestRandom_Deterministic(t *testing.T) {
	a, err := sampling.Random(3, sampling.WithSeed(5))
	require.NoError(t, err)
	b, err := sampling.Random(3, sampling.WithSeed(5))
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "same seed must reproduce the element")

	c, err := sampling.Random(3, sampling.WithRand(rand.New(rand.NewSource(5))))
	require.NoError(t, err)
	assert.True(t, a.Equal(c), "WithRand with the same seed matches WithSeed")

	// Across a handful of seeds the sampler must not be constant.
	keys := make(map[string]bool)
	var seed int64
	for seed = 1; seed <= 8; seed++ {
		e, rerr := sampling.Random(3, sampling.WithSeed(seed))
		require.NoError(t, rerr)
		keys[elementKey(e)] = true
	}
	assert.Greater(t, len(keys), 1, "distinct seeds must reach distinct elements")
}

// TestRandom_Symplectic: every sampled element is a valid group element.
func TestRandom_Symplectic(t *testing.T) {
	var n int
	var seed int64
	for n = 1; n <= 4; n++ {
		for seed = 1; seed <= 10; seed++ {
			elem, err := sampling.Random(n, sampling.WithSeed(seed))
			require.NoError(t, err)
			assert.Equal(t, n, elem.NQubits())
			assert.True(t, elem.IsSymplectic(), "n=%d seed=%d", n, seed)
		}
	}

	_, err := sampling.Random(0)
	assert.ErrorIs(t, err, sampling.ErrBadQubits)
}

// TestRandom_1QubitClosure: on one qubit the sampler can only land inside
// the 24-element group enumerated by Element1Q.
func TestRandom_1QubitClosure(t *testing.T) {
	group := make(map[string]bool, sampling.Order1Q)
	for idx := 0; idx < sampling.Order1Q; idx++ {
		elem, err := sampling.Element1Q(idx)
		require.NoError(t, err)
		group[elementKey(elem)] = true
	}

	var seed int64
	for seed = 1; seed <= 20; seed++ {
		elem, err := sampling.Random(1, sampling.WithSeed(seed))
		require.NoError(t, err)
		assert.True(t, group[elementKey(elem)], "seed %d left the group", seed)
	}
}

// TestDecompose1Q_Exhaustive: the 24 canonical indices decompose into 24
// distinct elements, and the index wraps modulo the group order.
func TestDecompose1Q_Exhaustive(t *testing.T) {
	seen := make(map[string]int, sampling.Order1Q)
	for idx := 0; idx < sampling.Order1Q; idx++ {
		elem, err := sampling.Element1Q(idx)
		require.NoError(t, err)
		key := elementKey(elem)
		prev, dup := seen[key]
		assert.False(t, dup, "indices %d and %d collide", prev, idx)
		seen[key] = idx
	}
	assert.Len(t, seen, sampling.Order1Q)

	// Index zero is the identity and the enumeration wraps.
	seq, err := sampling.Decompose1Q(0)
	require.NoError(t, err)
	assert.Empty(t, seq, "index 0 is the empty circuit")

	wrapped, err := sampling.Element1Q(sampling.Order1Q + 3)
	require.NoError(t, err)
	direct, err := sampling.Element1Q(3)
	require.NoError(t, err)
	assert.True(t, wrapped.Equal(direct))

	_, err = sampling.Decompose1Q(-1)
	assert.ErrorIs(t, err, sampling.ErrBadIndex)
}

// TestDecompose2Q_Exhaustive: all 11520 canonical indices decompose into
// pairwise distinct elements, covering the whole 2-qubit group.
func TestDecompose2Q_Exhaustive(t *testing.T) {
	seen := make(map[string]int, sampling.Order2Q)
	for idx := 0; idx < sampling.Order2Q; idx++ {
		elem, err := sampling.Element2Q(idx)
		require.NoError(t, err)
		require.True(t, elem.IsSymplectic(), "index %d", idx)
		key := elementKey(elem)
		prev, dup := seen[key]
		require.False(t, dup, "indices %d and %d collide", prev, idx)
		seen[key] = idx
	}
	assert.Len(t, seen, sampling.Order2Q)
}

// TestDecompose2Q_ClassBoundaries spot-checks the coset templates at the
// start of each symplectic class.
func TestDecompose2Q_ClassBoundaries(t *testing.T) {
	// symp = 0, pauli = 0: the identity.
	seq, err := sampling.Decompose2Q(0)
	require.NoError(t, err)
	assert.Empty(t, seq)

	// symp = 36 starts the CNOT-like class with a bare cx(0,1).
	seq, err = sampling.Decompose2Q(16 * 36)
	require.NoError(t, err)
	require.Len(t, seq, 1)
	assert.Equal(t, "cx", seq[0].Name)
	assert.Equal(t, []int{0, 1}, seq[0].Qubits)

	// symp = 360 starts the iSWAP-like class with cx(0,1) cx(1,0).
	seq, err = sampling.Decompose2Q(16 * 360)
	require.NoError(t, err)
	require.Len(t, seq, 2)
	assert.Equal(t, []int{0, 1}, seq[0].Qubits)
	assert.Equal(t, []int{1, 0}, seq[1].Qubits)

	// symp = 684 starts the SWAP class: three alternating cx make a swap.
	elem, err := sampling.Element2Q(16 * 684)
	require.NoError(t, err)
	want, err := clifford.FromDict(clifford.Dict{
		Destabilizer: []string{"+IX", "+XI"},
		Stabilizer:   []string{"+IZ", "+ZI"},
	})
	require.NoError(t, err)
	assert.True(t, elem.Equal(want), "SWAP class base element")

	_, err = sampling.Decompose2Q(-7)
	assert.ErrorIs(t, err, sampling.ErrBadIndex)
}
