// Tableau is a row-major GF(2) symplectic tableau.
// rows holds 2N bit-vectors of length 2N (X block columns 0..N-1, Z block
// columns N..2N-1); phase holds the 2N sign bits.

package tableau

import (
	"fmt"
	"strings"
)

// Tableau represents the action of a Clifford element on the 2N canonical
// Pauli generators. Rows 0..N-1 form the destabilizer block, rows N..2N-1
// the stabilizer block. A Tableau exclusively owns its storage.
type Tableau struct {
	n     int      // qubit count, fixed at construction
	rows  [][]bool // 2n rows × 2n columns
	phase []bool   // 2n phase bits, parallel to rows
}

// NewIdentity returns the identity tableau on n qubits: diagonal X/Z blocks
// and zero phase.
// Stage 1 (Validate): ensure n > 0.
// Stage 2 (Prepare): allocate 2n×2n storage.
// Stage 3 (Finalize): set the diagonal and return.
// Complexity: O(n²) time and memory.
func NewIdentity(n int) (*Tableau, error) {
	// Validate qubit count
	if n <= 0 {
		return nil, fmt.Errorf("NewIdentity(%d): %w", n, ErrBadShape)
	}

	size := 2 * n
	t := &Tableau{
		n:     n,
		rows:  make([][]bool, size),
		phase: make([]bool, size),
	}
	var i int
	for i = 0; i < size; i++ {
		t.rows[i] = make([]bool, size)
		t.rows[i][i] = true // identity diagonal
	}

	return t, nil
}

// NewFromRows builds a tableau from raw bit rows and a phase vector.
// The input is deep-copied; the caller keeps ownership of its slices.
// Stage 1 (Validate): row count must be a positive even number 2n, every row
// must have length 2n, and phase must have length 2n.
// Stage 2 (Execute): copy rows and phase into fresh storage.
// Complexity: O(n²) time and memory.
func NewFromRows(rows [][]bool, phase []bool) (*Tableau, error) {
	size := len(rows)
	// Validate row count: positive and even
	if size == 0 || size%2 != 0 {
		return nil, fmt.Errorf("NewFromRows: %d rows: %w", size, ErrBadShape)
	}
	// Validate phase length
	if len(phase) != size {
		return nil, fmt.Errorf("NewFromRows: %d phase bits for %d rows: %w", len(phase), size, ErrBadShape)
	}

	t := &Tableau{
		n:     size / 2,
		rows:  make([][]bool, size),
		phase: make([]bool, size),
	}
	copy(t.phase, phase)
	var i int
	for i = 0; i < size; i++ {
		// Validate row length
		if len(rows[i]) != size {
			return nil, fmt.Errorf("NewFromRows: row %d has %d columns, want %d: %w", i, len(rows[i]), size, ErrBadShape)
		}
		t.rows[i] = make([]bool, size)
		copy(t.rows[i], rows[i])
	}

	return t, nil
}

// NQubits returns the qubit count N.
// Complexity: O(1).
func (t *Tableau) NQubits() int { return t.n }

// Size returns the row count 2N.
// Complexity: O(1).
func (t *Tableau) Size() int { return 2 * t.n }

// checkRow validates a row index against [0, 2N).
func (t *Tableau) checkRow(method string, i int) error {
	if i < 0 || i >= 2*t.n {
		return fmt.Errorf("Tableau.%s(%d): %w", method, i, ErrOutOfRange)
	}

	return nil
}

// checkCol validates a column index against [0, 2N).
func (t *Tableau) checkCol(method string, j int) error {
	if j < 0 || j >= 2*t.n {
		return fmt.Errorf("Tableau.%s(col=%d): %w", method, j, ErrOutOfRange)
	}

	return nil
}

// Bit returns the bit at row i, column j.
// Columns 0..N-1 are the X block, N..2N-1 the Z block.
// Complexity: O(1).
func (t *Tableau) Bit(i, j int) (bool, error) {
	if err := t.checkRow("Bit", i); err != nil {
		return false, err
	}
	if err := t.checkCol("Bit", j); err != nil {
		return false, err
	}

	return t.rows[i][j], nil
}

// SetBit assigns the bit at row i, column j.
// Complexity: O(1).
func (t *Tableau) SetBit(i, j int, v bool) error {
	if err := t.checkRow("SetBit", i); err != nil {
		return err
	}
	if err := t.checkCol("SetBit", j); err != nil {
		return err
	}
	t.rows[i][j] = v

	return nil
}

// Phase returns the phase bit of row i.
// Complexity: O(1).
func (t *Tableau) Phase(i int) (bool, error) {
	if err := t.checkRow("Phase", i); err != nil {
		return false, err
	}

	return t.phase[i], nil
}

// SetPhase assigns the phase bit of row i.
// Complexity: O(1).
func (t *Tableau) SetPhase(i int, v bool) error {
	if err := t.checkRow("SetPhase", i); err != nil {
		return err
	}
	t.phase[i] = v

	return nil
}

// Row returns a copy of row i's bits together with its phase bit.
// The returned slice is owned by the caller.
// Complexity: O(N).
func (t *Tableau) Row(i int) ([]bool, bool, error) {
	if err := t.checkRow("Row", i); err != nil {
		return nil, false, err
	}
	bits := make([]bool, 2*t.n)
	copy(bits, t.rows[i])

	return bits, t.phase[i], nil
}

// SetRow overwrites row i with the given bits and phase.
// Stage 1 (Validate): row index in range, bits length == 2N.
// Stage 2 (Execute): copy bits (no aliasing) and assign phase.
// Complexity: O(N).
func (t *Tableau) SetRow(i int, bits []bool, phase bool) error {
	if err := t.checkRow("SetRow", i); err != nil {
		return err
	}
	if len(bits) != 2*t.n {
		return fmt.Errorf("Tableau.SetRow(%d): %d bits, want %d: %w", i, len(bits), 2*t.n, ErrBadShape)
	}
	copy(t.rows[i], bits)
	t.phase[i] = phase

	return nil
}

// Reset restores the identity tableau in place: diagonal bits, zero phase.
// Complexity: O(N²).
func (t *Tableau) Reset() {
	size := 2 * t.n
	var i, j int
	for i = 0; i < size; i++ {
		for j = 0; j < size; j++ {
			t.rows[i][j] = i == j
		}
		t.phase[i] = false
	}
}

// Clone returns a deep copy of the tableau. The copy shares no storage with
// the original, so either side may mutate freely afterwards.
// Complexity: O(N²) time and memory.
func (t *Tableau) Clone() *Tableau {
	size := 2 * t.n
	out := &Tableau{
		n:     t.n,
		rows:  make([][]bool, size),
		phase: make([]bool, size),
	}
	copy(out.phase, t.phase)
	var i int
	for i = 0; i < size; i++ {
		out.rows[i] = make([]bool, size)
		copy(out.rows[i], t.rows[i])
	}

	return out
}

// Equal reports whether two tableaus have element-wise equal bits and phase.
// Tableaus of different size are never equal.
// Complexity: O(N²).
func (t *Tableau) Equal(o *Tableau) bool {
	if o == nil || t.n != o.n {
		return false
	}
	size := 2 * t.n
	var i, j int
	for i = 0; i < size; i++ {
		if t.phase[i] != o.phase[i] {
			return false
		}
		for j = 0; j < size; j++ {
			if t.rows[i][j] != o.rows[i][j] {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer for debugging: one row per line as 0/1
// bits, with the phase bit after a '|' separator.
// Complexity: O(N²).
func (t *Tableau) String() string {
	var sb strings.Builder
	size := 2 * t.n
	var i, j int
	for i = 0; i < size; i++ {
		sb.WriteByte('[')
		for j = 0; j < size; j++ {
			if t.rows[i][j] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteString("|")
		if t.phase[i] {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
