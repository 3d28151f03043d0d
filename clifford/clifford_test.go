package clifford_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvantor/cliffgo/clifford"
	"github.com/kvantor/cliffgo/gates"
	"github.com/kvantor/cliffgo/tableau"
)

// g is shorthand for a gate literal in circuit tables.
func g(name string, qubits ...int) gates.Gate {
	return gates.Gate{Name: name, Qubits: qubits}
}

// mustFold builds an element from a gate sequence, failing the test on
// any error.
func mustFold(t *testing.T, n int, seq ...gates.Gate) *clifford.Element {
	t.Helper()
	elem, err := clifford.FromGates(n, seq)
	require.NoError(t, err)

	return elem
}

// TestConstructors covers Identity, FromTableau, FromRows, and their
// error contracts.
func TestConstructors(t *testing.T) {
	elem, err := clifford.Identity(2)
	require.NoError(t, err)
	assert.Equal(t, 2, elem.NQubits())
	assert.Equal(t, []string{"+XI", "+IX"}, elem.DestabilizerLabels())
	assert.Equal(t, []string{"+ZI", "+IZ"}, elem.StabilizerLabels())
	assert.True(t, elem.IsSymplectic())

	_, err = clifford.Identity(0)
	assert.ErrorIs(t, err, clifford.ErrShapeMismatch)

	tab, err := tableau.NewIdentity(1)
	require.NoError(t, err)
	wrapped, err := clifford.FromTableau(tab)
	require.NoError(t, err)

	// FromTableau deep-copies: mutating the source must not leak through.
	require.NoError(t, tab.SetPhase(0, true))
	p, _ := wrapped.Tableau().Phase(0)
	assert.False(t, p, "FromTableau must clone its input")

	_, err = clifford.FromTableau(nil)
	assert.ErrorIs(t, err, clifford.ErrNilElement)

	_, err = clifford.FromRows([][]bool{{true, false}}, []bool{false})
	assert.ErrorIs(t, err, clifford.ErrShapeMismatch, "odd row count")
}

// TestApply_Errors verifies the instruction filter and sentinel
// pass-through, and that a failing Apply leaves the element untouched.
func TestApply_Errors(t *testing.T) {
	elem, err := clifford.Identity(2)
	require.NoError(t, err)
	before := elem.Clone()

	assert.ErrorIs(t, elem.Apply("t", []int{0}), clifford.ErrNonClifford)
	assert.ErrorIs(t, elem.Apply("rz", []int{1}), clifford.ErrNonClifford)
	assert.ErrorIs(t, elem.Apply("h", []int{0, 1}), gates.ErrArity)
	assert.ErrorIs(t, elem.Apply("cx", []int{0, 2}), gates.ErrQubitRange)

	assert.True(t, elem.Equal(before), "failed Apply must not modify the element")
}

// TestLabels_1Qubit pins the signed label pair every 1-qubit generator
// produces from the identity.
func TestLabels_1Qubit(t *testing.T) {
	targets := map[string]struct {
		destab, stab string
	}{
		"i":   {"+X", "+Z"},
		"x":   {"+X", "-Z"},
		"y":   {"-X", "-Z"},
		"z":   {"-X", "+Z"},
		"h":   {"+Z", "+X"},
		"s":   {"+Y", "+Z"},
		"sdg": {"-Y", "+Z"},
		"v":   {"+Y", "+X"},
		"w":   {"+Z", "+Y"},
	}

	for name, want := range targets {
		elem := mustFold(t, 1, g(name, 0))
		assert.Equal(t, []string{want.destab}, elem.DestabilizerLabels(), "destabilizer of %s", name)
		assert.Equal(t, []string{want.stab}, elem.StabilizerLabels(), "stabilizer of %s", name)
	}
}

// TestLabels_Bell pins the labels of the Bell-pair preparation circuit
// h(0), cx(0,1): qubit 0 is the leftmost character.
func TestLabels_Bell(t *testing.T) {
	bell := mustFold(t, 2, g("h", 0), g("cx", 0, 1))

	assert.Equal(t, []string{"+ZI", "+IX"}, bell.DestabilizerLabels())
	assert.Equal(t, []string{"+XX", "+ZZ"}, bell.StabilizerLabels())
	assert.True(t, bell.IsSymplectic())
}

// TestDict_RoundTrip: ToDict then FromDict reproduces the element exactly,
// phases included.
func TestDict_RoundTrip(t *testing.T) {
	orig := mustFold(t, 2, g("h", 0), g("cx", 0, 1), g("s", 1), g("x", 0))

	back, err := clifford.FromDict(orig.ToDict())
	require.NoError(t, err)
	assert.True(t, orig.Equal(back), "dict round trip must be lossless")

	// Signs are optional on input; a missing sign reads as +.
	plain, err := clifford.FromDict(clifford.Dict{
		Destabilizer: []string{"XI", "IX"},
		Stabilizer:   []string{"ZI", "IZ"},
	})
	require.NoError(t, err)
	ident, _ := clifford.Identity(2)
	assert.True(t, plain.Equal(ident))
}

// TestFromDict_Errors covers the label grammar rejections.
func TestFromDict_Errors(t *testing.T) {
	valid := clifford.Dict{
		Destabilizer: []string{"+XI", "+IX"},
		Stabilizer:   []string{"+ZI", "+IZ"},
	}

	d := valid
	d.Stabilizer = []string{"+ZI"}
	_, err := clifford.FromDict(d)
	assert.ErrorIs(t, err, clifford.ErrShapeMismatch, "list length mismatch")

	d = valid
	d.Destabilizer = []string{"+X", "+IX"}
	_, err = clifford.FromDict(d)
	assert.ErrorIs(t, err, clifford.ErrShapeMismatch, "label too short")

	d = valid
	d.Destabilizer = []string{"+iXI", "+IX"}
	_, err = clifford.FromDict(d)
	assert.ErrorIs(t, err, clifford.ErrInvalidLabel, "imaginary marker is rejected")

	d = valid
	d.Stabilizer = []string{"+QI", "+IZ"}
	_, err = clifford.FromDict(d)
	assert.ErrorIs(t, err, clifford.ErrInvalidLabel, "letters outside IXYZ are rejected")

	_, err = clifford.FromDict(clifford.Dict{})
	assert.ErrorIs(t, err, clifford.ErrShapeMismatch, "empty dict")
}

// TestCompose_MatchesFolding: composing two circuit folds equals folding
// the concatenated circuit; WithFront swaps the operand roles.
func TestCompose_MatchesFolding(t *testing.T) {
	a := mustFold(t, 2, g("h", 0), g("cx", 0, 1))
	b := mustFold(t, 2, g("s", 1), g("h", 1), g("cz", 0, 1))
	want := mustFold(t, 2, g("h", 0), g("cx", 0, 1), g("s", 1), g("h", 1), g("cz", 0, 1))

	got, err := a.Compose(b)
	require.NoError(t, err)
	assert.True(t, got.Equal(want), "a.Compose(b) applies a first")
	assert.True(t, got.IsSymplectic())

	// Pin the signs explicitly: the qubit-0 stabilizer row accumulates
	// (X0Z1)·(−Z0Y1) = (−i)(−i)(−1)·Y0X1 = +Y0X1, which a parity-only
	// sign rule gets wrong.
	assert.Equal(t, []string{"+YX", "+IX"}, got.StabilizerLabels())

	got, err = b.Compose(a, clifford.WithFront())
	require.NoError(t, err)
	assert.True(t, got.Equal(want), "WithFront applies the argument first")

	// Operands are untouched.
	assert.True(t, a.Equal(mustFold(t, 2, g("h", 0), g("cx", 0, 1))))
}

// TestCompose_SingleQubitSigns: a Y row in the applied-first operand
// carries an i of its own (Y = i·X·Z), so s followed by h must send X to
// −Y, matching the circuit fold.
func TestCompose_SingleQubitSigns(t *testing.T) {
	s := mustFold(t, 1, g("s", 0))
	h := mustFold(t, 1, g("h", 0))

	got, err := s.Compose(h)
	require.NoError(t, err)
	assert.Equal(t, []string{"-Y"}, got.DestabilizerLabels())
	assert.Equal(t, []string{"+X"}, got.StabilizerLabels())
	assert.True(t, got.Equal(mustFold(t, 1, g("s", 0), g("h", 0))))
}

// TestCompose_Associative checks (a·b)·c == a·(b·c) on fixed circuits.
func TestCompose_Associative(t *testing.T) {
	a := mustFold(t, 2, g("h", 0))
	b := mustFold(t, 2, g("cx", 0, 1), g("sdg", 0))
	c := mustFold(t, 2, g("swap", 0, 1), g("y", 1))

	ab, err := a.Compose(b)
	require.NoError(t, err)
	left, err := ab.Compose(c)
	require.NoError(t, err)

	bc, err := b.Compose(c)
	require.NoError(t, err)
	right, err := a.Compose(bc)
	require.NoError(t, err)

	assert.True(t, left.Equal(right))
}

// TestCompose_Inverse: folding a circuit against its inverse yields the
// identity element.
func TestCompose_Inverse(t *testing.T) {
	fwd := mustFold(t, 2, g("h", 0), g("s", 1), g("cx", 0, 1))
	inv := mustFold(t, 2, g("cx", 0, 1), g("sdg", 1), g("h", 0))

	got, err := fwd.Compose(inv)
	require.NoError(t, err)
	ident, _ := clifford.Identity(2)
	assert.True(t, got.Equal(ident))
}

// TestCompose_Subsystem: a 1-qubit operand embedded with WithQubits acts
// on the addressed qubit under the reversed tensor convention, where
// position p maps to tableau index N-1-p.
func TestCompose_Subsystem(t *testing.T) {
	full, err := clifford.Identity(2)
	require.NoError(t, err)
	s1 := mustFold(t, 1, g("s", 0))

	got, err := full.Compose(s1, clifford.WithQubits(0))
	require.NoError(t, err)
	assert.True(t, got.Equal(mustFold(t, 2, g("s", 1))), "position 0 is tableau index 1")

	got, err = full.Compose(s1, clifford.WithQubits(1))
	require.NoError(t, err)
	assert.True(t, got.Equal(mustFold(t, 2, g("s", 0))), "position 1 is tableau index 0")

	// A 2-qubit operand on positions [0 1] of a 3-qubit element.
	big, err := clifford.Identity(3)
	require.NoError(t, err)
	cx := mustFold(t, 2, g("cx", 0, 1))
	got, err = big.Compose(cx, clifford.WithQubits(0, 1))
	require.NoError(t, err)
	assert.True(t, got.Equal(mustFold(t, 3, g("cx", 1, 2))))
	assert.True(t, got.IsSymplectic())
}

// TestCompose_Errors covers nil input, size mismatch, and bad qargs.
func TestCompose_Errors(t *testing.T) {
	two, err := clifford.Identity(2)
	require.NoError(t, err)
	one, err := clifford.Identity(1)
	require.NoError(t, err)

	_, err = two.Compose(nil)
	assert.ErrorIs(t, err, clifford.ErrNilElement)

	_, err = two.Compose(one)
	assert.ErrorIs(t, err, clifford.ErrIncompatible, "size mismatch without qargs")

	_, err = two.Compose(one, clifford.WithQubits(0, 1))
	assert.ErrorIs(t, err, clifford.ErrIncompatible, "qarg count mismatch")

	_, err = two.Compose(one, clifford.WithQubits(2))
	assert.ErrorIs(t, err, clifford.ErrIncompatible, "qarg out of range")

	cx := mustFold(t, 2, g("cx", 0, 1))
	_, err = two.Compose(cx, clifford.WithQubits(1, 1))
	assert.ErrorIs(t, err, clifford.ErrIncompatible, "duplicate qargs")
}

// TestConjugate: conjugation flips phases on rows containing an odd number
// of Y letters; it inverts s into sdg and fixes real-matrix elements.
func TestConjugate(t *testing.T) {
	s := mustFold(t, 1, g("s", 0))
	sdg := mustFold(t, 1, g("sdg", 0))
	assert.True(t, s.Conjugate().Equal(sdg), "conj(s) is sdg")
	assert.True(t, s.Conjugate().Conjugate().Equal(s), "conjugation is an involution")

	for _, seq := range [][]gates.Gate{
		{g("h", 0)},
		{g("x", 1)},
		{g("cx", 0, 1)},
		{g("h", 0), g("cx", 0, 1)},
	} {
		elem := mustFold(t, 2, seq...)
		assert.True(t, elem.Conjugate().Equal(elem), "real elements are self-conjugate: %v", seq)
	}
}

// TestFromGates_Errors: a bad gate anywhere in the sequence aborts the fold.
func TestFromGates_Errors(t *testing.T) {
	_, err := clifford.FromGates(2, []gates.Gate{g("h", 0), g("t", 1)})
	assert.ErrorIs(t, err, clifford.ErrNonClifford)

	_, err = clifford.FromGates(2, []gates.Gate{g("cx", 0, 5)})
	assert.ErrorIs(t, err, gates.ErrQubitRange)

	_, err = clifford.FromGates(0, nil)
	assert.ErrorIs(t, err, clifford.ErrShapeMismatch)
}

// TestCloneEqualReset covers the ownership and lifecycle helpers.
func TestCloneEqualReset(t *testing.T) {
	elem := mustFold(t, 2, g("h", 0), g("cx", 0, 1))

	cp := elem.Clone()
	assert.True(t, elem.Equal(cp))

	require.NoError(t, cp.Apply("x", []int{0}))
	assert.False(t, elem.Equal(cp), "clone is independent storage")

	cp.Reset()
	ident, _ := clifford.Identity(2)
	assert.True(t, cp.Equal(ident), "reset restores the identity")

	one, _ := clifford.Identity(1)
	assert.False(t, elem.Equal(one), "different sizes never compare equal")
	assert.False(t, elem.Equal(nil))
}

// TestUnsupportedOperations: the matrix-backed surface always fails with
// ErrNotImplemented.
func TestUnsupportedOperations(t *testing.T) {
	elem, err := clifford.Identity(1)
	require.NoError(t, err)

	_, err = elem.ToMatrix()
	assert.ErrorIs(t, err, clifford.ErrNotImplemented)
	_, err = elem.ToOperator()
	assert.ErrorIs(t, err, clifford.ErrNotImplemented)
	_, err = elem.Transpose()
	assert.ErrorIs(t, err, clifford.ErrNotImplemented)
	_, err = elem.Tensor(elem)
	assert.ErrorIs(t, err, clifford.ErrNotImplemented)
	_, err = elem.Expand(elem)
	assert.ErrorIs(t, err, clifford.ErrNotImplemented)
}

// TestString renders through the label codec.
func TestString(t *testing.T) {
	elem, err := clifford.Identity(1)
	require.NoError(t, err)
	assert.Equal(t, "Clifford: Stabilizer = [+Z], Destabilizer = [+X]", elem.String())
}
