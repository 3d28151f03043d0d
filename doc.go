// Package cliffgo is a compact algebraic engine for the Clifford group
// over N qubits, represented as a symplectic tableau over GF(2).
//
// 🚀 What is cliffgo?
//
//	An exact-arithmetic library that brings together:
//		• Symplectic tableaus: GF(2) storage, bounds-checked row ops, rowsum
//		• Clifford elements: compose, conjugate, reset, label/dict codecs
//		• Gate rules: the twelve elementary Clifford generators as pure
//		  tableau row transforms (x, y, z, h, s, sdg, v, w, cx, cz, swap, i)
//		• Uniform sampling: unbiased big-integer indexing of the full group
//		  (Koenig–Smolin) plus closed-form 1-/2-qubit decompositions
//
// ✨ Why choose cliffgo?
//
//   - Exact – boolean/big-integer arithmetic only, no floating point
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure Go – no cgo; tableaus are plain owned slices
//   - Validated – the full Aaronson–Gottesman sign bookkeeping is pinned
//     by worked per-gate test vectors, not by intuition
//
// Under the hood, everything is organized leaf-first:
//
//	tableau/  — GF(2) symplectic tableau storage & rowsum primitives
//	gates/    — immutable generator-name → tableau-transform dispatch
//	clifford/ — Clifford element: group operations & serialization
//	sampling/ — group order, uniform random elements, canonical indices
//	cmd/      — cliffgo CLI: order, sample, decompose, apply
//
// Quick example:
//
//	elem, _ := clifford.Identity(2)
//	_ = elem.Apply("h", []int{0})
//	_ = elem.Apply("cx", []int{0, 1})
//	fmt.Println(elem.StabilizerLabels()) // [+XX +ZZ]
package cliffgo
