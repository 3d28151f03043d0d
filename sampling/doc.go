// Package sampling draws uniform random elements of the N-qubit Clifford
// group without enumerating it, and decomposes canonical 1-/2-qubit group
// indices into explicit minimal gate sequences.
//
// What:
//
//   - GroupOrder(n): |Sp(2n,2)| = 2^{n²} · Π_{k=1..n}(4^k − 1) as a
//     math/big integer (exceeds 64 bits for n ≳ 5 — arbitrary precision is
//     a deliberate scope inclusion, not incidental).
//   - Random(n, ...): seeded, unbiased sampling — a random 2n-bit phase
//     vector plus a uniform big-integer index in [0, GroupOrder(n)) mapped
//     to a symplectic matrix via the Koenig–Smolin bijection, then permuted
//     from that algorithm's interleaved row/column convention into the
//     tableau's X|Z block convention.
//   - Decompose1Q / Decompose2Q: closed-form coset decompositions of an
//     index modulo 24 (resp. 11520) into hadamard/rotation/pauli (and cnot)
//     factors — a fixed case split, not a search.
//
// Why:
//
//	Building random Cliffords gate-by-gate does not sample uniformly; the
//	bijection indexes the group directly, so every element is equally
//	likely and the same seed reproduces the same element bit-for-bit.
//
// Complexity:
//
//   - GroupOrder: O(n) big-integer multiplications.
//   - Random: O(n³) transvection arithmetic over GF(2).
//   - Decompose1Q / Decompose2Q: O(1).
//
// Errors:
//
//   - ErrBadQubits — non-positive qubit count.
//   - ErrBadIndex  — negative canonical index.
//
// Reference: R. Koenig, J.A. Smolin, "How to efficiently select an
// arbitrary Clifford group element", J. Math. Phys. 55, 122202 (2014).
package sampling
