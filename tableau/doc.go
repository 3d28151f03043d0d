// Package tableau implements the GF(2) symplectic tableau underlying the
// stabilizer formalism: a 2N×2N boolean matrix (X block columns followed by
// Z block columns) with a parallel 2N phase vector, plus the primitive row
// operations Clifford algebra is built on.
//
// What:
//
//   - Tableau owns its storage exclusively; Clone performs an eager deep copy.
//   - Rows 0..N-1 are the destabilizer block, rows N..2N-1 the stabilizer block.
//   - RowSum is the Aaronson–Gottesman "rowsum": GF(2) row addition with the
//     sign-tracking rule g(x1,z1,x2,z2) accumulated per qubit as a signed
//     i-exponent; a phase flip means the sum lands on 2 mod 4. SumRowExp
//     exposes the raw exponent for callers chaining several additions.
//   - IsSymplectic verifies T·Ω·Tᵀ mod 2 == Ω for the block-antidiagonal Ω.
//
// Why:
//
//	A Clifford element is fully described by its action on the 2N canonical
//	Pauli generators; the tableau records that action in O(N²) bits instead
//	of a 2^N×2^N unitary. All arithmetic is exact boolean arithmetic.
//
// Complexity:
//
//   - NewIdentity / Clone / Reset / Equal: O(N²) time and memory.
//   - Bit / SetBit / Phase / SetPhase: O(1) with bounds checking.
//   - RowSum / SumRow / SumRowExp: O(N) per call.
//   - IsSymplectic: O(N³).
//
// Errors:
//
//   - ErrBadShape    — invalid qubit count or inconsistent row/phase lengths.
//   - ErrOutOfRange  — row or column index outside [0, 2N).
//
// Mutating methods require exclusive ownership of the receiver; the package
// never aliases caller-supplied slices.
package tableau
