// Package dense implements direct methods for dense real matrices on a
// flat row-major float64 layout.
//
// The dense package provides:
//
//   - Dense, a row-major value type behind the small Matrix interface, with
//     constructors (NewDense, NewDenseFromRows, NewZeros, NewIdentity) and
//     row/column primitives (SwapRows, SwapCols, Row, Col).
//   - Elementwise and product kernels: Add, Sub, Scale, Mul, Transpose,
//     MatVec.
//   - Factorization and its consumers: Pivot (partial pivoting with sign
//     tracking), LUDecompose (Doolittle with P·A = L·U), Determinant,
//     Invertible, Inverse and InverseLU, LUEvaluate for triangular solves.
//   - Row reduction: RowEchelon, ReducedRowEchelon (in place), their ...Of
//     copy variants, and Classify for the solvability of row-echelon
//     augmented systems.
//
// Every exported kernel accepts the Matrix interface and takes a fast path
// when the value is a *Dense; other implementations fall back to At/Set.
// Singularity policy is exact-zero by default and relative under
// WithEpsilon; only the inverse entry points report ErrSingular, the rest
// let degenerate values (0, ±Inf, NaN) flow through arithmetic.
//
// All routines are deterministic and single-goroutine; concurrent use on
// distinct matrices is safe, shared mutation is the caller's concern.
package dense
