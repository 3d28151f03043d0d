// Package gates maps the named elementary Clifford generators onto pure
// symplectic-tableau row transforms.
//
// What:
//
//   - A fixed, immutable dispatch table from gate name to a column-wise
//     GF(2) transform: Pauli x/y/z, Hadamard h, phase s/sdg, the order-3
//     rotations v/w, and the two-qubit cx/cz/swap (plus the identity i).
//   - Apply validates name, arity, and qubit bounds before touching the
//     tableau, so a failing call leaves the tableau unmodified.
//   - Gate is the (name, qubit list) descriptor used by circuit importers.
//
// Why:
//
//	Building a Clifford element from a circuit is a fold over these
//	transforms starting at the identity tableau. The transforms are hand
//	sign-checked against worked per-gate tableau vectors: every rule is
//	expressed in XORs and column swaps, never matrices.
//
// Aliases: "id" and "iden" resolve to "i"; "sinv" resolves to "sdg".
//
// Complexity:
//
//	Every rule touches one or two columns of all 2N rows: O(N) per gate.
//
// Errors:
//
//   - ErrUnknownGate — name outside the generator set (never a silent no-op).
//   - ErrArity      — len(qubits) does not match the gate's arity.
//   - ErrQubitRange — qubit index out of range, or duplicate 2-qubit targets.
//
// The dispatch table is built once at process start and never mutated, so
// read-only sharing across goroutines is safe; the tableau being mutated
// must be exclusively owned by the caller.
package gates
