// Package clifford implements the Clifford group element: a symplectic
// tableau of exactly 2N rows wrapped with group operations and codecs.
//
// What:
//
//   - Element owns one tableau.Tableau exclusively (eager deep copies, no
//     aliasing between elements).
//   - Group operations: Compose (tableau-level multiplication with optional
//     subsystem embedding), Conjugate, Reset, Equal.
//   - Incremental construction: Apply folds elementary generators onto the
//     tableau in circuit order; FromGates imports a whole gate sequence.
//   - Codecs: signed Pauli row labels ("+XI", "-YZ", ...) and the
//     {destabilizer, stabilizer} dict, lossless round trip.
//
// Why:
//
//	Tableau multiplication is NOT a boolean matrix product: each output row
//	is a sign-tracked rowsum of the front operand's rows selected by the
//	back operand's row bits, carrying one i-exponent mod 4 across the whole
//	accumulation (partial products can sit at ±i·Pauli). A literal GF(2)
//	product would lose that bookkeeping, so composition is built on
//	tableau.SumRowExp.
//
// Complexity:
//
//   - Apply: O(N) per gate. Compose: O(N³). Conjugate / Equal / codecs: O(N²).
//
// Errors:
//
//   - ErrShapeMismatch  — row/label counts inconsistent with the qubit count.
//   - ErrIncompatible   — mismatched sizes or bad qargs during Compose.
//   - ErrNonClifford    — instruction outside the generator set.
//   - ErrInvalidLabel   — malformed Pauli label (incl. imaginary markers).
//   - ErrNotImplemented — declared-but-unsupported operations (ToMatrix,
//     ToOperator, Transpose, Tensor, Expand). These fail loudly by design
//     of the contract: callers must treat them as unsupported, not defaulted.
//
// Concurrency: operations are not thread-safe; each goroutine must own its
// elements. Failure leaves the receiver unmodified.
package clifford
