// Package lvldense is a dense linear-algebra engine for exact numeric
// workflows: pivoted LU factorization, determinants, inverses, triangular
// solves and Gaussian row reduction — all over plain float64.
//
// 🚀 What is lvldense?
//
//	A small, deterministic library built around one row-major container
//	and a handful of carefully specified kernels:
//		• Dense container: flat row-major storage, O(1) element access
//		• Pivoting: partial (row) pivoting with permutation/sign tracking
//		• LU: Doolittle factorization P·A = L·U
//		• Determinant & invertibility: derived from the LU factors
//		• Inverse: from a raw matrix or from precomputed (L, U)
//		• Solves: forward/back substitution for factored systems
//		• Echelon: row-echelon & reduced-row-echelon forms + solvability
//
// ✨ Why choose lvldense?
//
//   - Deterministic – fixed loop orders, no global state, no randomness
//   - Explicit numerics – exact-zero singularity checks by default, with an
//     opt-in, documented relative tolerance
//   - Pure Go – no cgo, no hidden deps
//   - Predictable errors – sentinel errors matched via errors.Is, never panics
//
// Everything lives in a single subpackage:
//
//	dense/ — the Dense container, elementwise kernels, LU/inverse/solve
//	         routines and echelon reduction
//
// Quick sketch of the central invariant:
//
//	P·A = L·U        (L unit-lower-triangular, U upper-triangular)
//	det(A) = sign(P) · Π diag(U)
//	A⁻¹ = (L·U)⁻¹ · P
//
// Dive into dense/doc.go for the full contract of each operation.
//
//	go get github.com/katalvlaran/lvldense/dense
package lvldense
