// SPDX-License-Identifier: MIT
// Package dense: pivoted Doolittle LU factorization and its derived scalar
// analyses (determinant, invertibility).
//
// The factorization contract is P·A = L·U with L unit-lower-triangular and
// U upper-triangular. Pivoting is applied to a working copy up front; the
// Doolittle recurrence then runs without further row exchanges, so running
// LUDecompose on an already-permuted matrix P·A reproduces the same L and U
// with an identity permutation.

package dense

import "math"

// LUDecompose factors a square matrix into (L, U, P) with P·A = L·U.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); clone m into a working *Dense and
//     pivot it in place, mirroring the swaps onto an identity to build P.
//   - Stage 2: Doolittle recurrence on the pivoted copy, row by row:
//     U[r,c] = A'[r,c] − Σ_{k<r} U[k,c]·L[r,k]            for c ≥ r,
//     L[r,c] = (A'[r,c] − Σ_{k<c} U[k,c]·L[r,k]) / U[c,c] for c < r.
//
// Behavior highlights:
//   - NEVER fails on singular input: a zero U[c,c] makes the division above
//     produce ±Inf or NaN in L (IEEE semantics), yielding a degenerate
//     factorization whose zero U diagonal stays visible to Determinant,
//     Invertible and the inverse entry points.
//   - The input matrix is never mutated.
//
// Returns:
//   - L: unit lower triangular (diagonal fixed to 1).
//   - U: upper triangular.
//   - P: permutation matrix; Mul(P, A) equals Mul(L, U) elementwise.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Determinism:
//   - Fixed r→c loops; pivot ties resolve to the topmost row.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the three results plus the working copy.
func LUDecompose(m Matrix) (l, u, p *Dense, err error) {
	if err = ValidateSquareNonNil(m); err != nil {
		return nil, nil, nil, opErrorf(opLU, err)
	}

	// Working copy + permutation accumulator.
	var a *Dense
	if a, err = denseCopyOf(m); err != nil {
		return nil, nil, nil, opErrorf(opLU, err)
	}
	if p, err = NewIdentity(a.r); err != nil {
		return nil, nil, nil, opErrorf(opLU, err)
	}
	pivotInPlace(a, p)

	l, u, err = doolittle(a)
	if err != nil {
		return nil, nil, nil, opErrorf(opLU, err)
	}

	return l, u, p, nil
}

// doolittle runs the (non-pivoting) Doolittle recurrence on a and returns the
// unit-lower L and upper U factors. a must be square; callers pivot first.
// Time O(n^3), Space O(n^2).
func doolittle(a *Dense) (*Dense, *Dense, error) {
	n := a.r
	l, err := NewIdentity(n)
	if err != nil {
		return nil, nil, err
	}
	u, err := NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}

	var sum float64
	for r := 0; r < n; r++ {
		base := r * n
		for c := 0; c < n; c++ {
			sum = ZeroSum
			if c >= r {
				// Upper region (diagonal included): row r of U.
				for k := 0; k < r; k++ {
					sum += u.data[k*n+c] * l.data[base+k]
				}
				u.data[base+c] = a.data[base+c] - sum
			} else {
				// Strict lower region: column c of L. Division by a zero
				// U[c,c] intentionally yields ±Inf/NaN (degenerate factors).
				for k := 0; k < c; k++ {
					sum += u.data[k*n+c] * l.data[base+k]
				}
				l.data[base+c] = (a.data[base+c] - sum) / u.data[c*n+c]
			}
		}
	}

	return l, u, nil
}

// luDiagonal factors m (pivoting a private copy, no P materialization) and
// returns the accumulated swap sign together with the diagonal of U.
// Shared backend for Determinant and Invertible.
// Time O(n^3), Space O(n^2) transient.
func luDiagonal(m Matrix) (int, []float64, error) {
	a, err := denseCopyOf(m)
	if err != nil {
		return 0, nil, err
	}
	sign, _ := pivotInPlace(a, nil)

	_, u, err := doolittle(a)
	if err != nil {
		return 0, nil, err
	}

	n := u.r
	diag := make([]float64, n)
	for i := 0; i < n; i++ {
		diag[i] = u.data[i*n+i]
	}

	return sign, diag, nil
}

// Determinant computes det(A) = sign(P) × Π diag(U) from the pivoted LU
// factors of A. diag(L) is identically 1 and contributes nothing.
//
// Behavior highlights:
//   - Always defined, including for singular matrices: when any diagonal
//     entry of U is zero under the numeric policy the result is EXACTLY 0.
//     The short-circuit also keeps NaN from the degenerate L region (see
//     LUDecompose) out of the product.
//   - Default policy is the exact-zero comparison; WithEpsilon enables the
//     relative tolerance |d| ≤ eps·scale (scale = max finite |diag(U)|).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare. Never signals singularity.
//
// Complexity:
//   - Time O(n^3) (dominated by the factorization), Space O(n^2) transient.
func Determinant(m Matrix, opts ...Option) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, opErrorf(opDet, err)
	}
	o := gatherOptions(opts...)

	sign, diag, err := luDiagonal(m)
	if err != nil {
		return 0, opErrorf(opDet, err)
	}

	scale := pivotScale(diag)
	det := float64(sign)
	for _, d := range diag {
		if o.isZeroPivot(d, scale) {
			return 0, nil // degenerate factorization ⇒ determinant is exactly 0
		}
		det *= d
	}

	return det, nil
}

// Invertible reports whether A has an inverse: true iff det(A) is nonzero
// (and finite) under the numeric policy.
//
// Behavior highlights:
//   - The default exact-zero comparison preserves the baseline contract but
//     is numerically fragile for matrices singular only up to rounding;
//     pass WithEpsilon for the documented relative tolerance.
//   - Callers that want to avoid the ErrSingular path of Inverse should
//     check here first, with the same options.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) transient.
func Invertible(m Matrix, opts ...Option) (bool, error) {
	det, err := Determinant(m, opts...)
	if err != nil {
		return false, opErrorf(opInvert, err)
	}
	if math.IsNaN(det) || math.IsInf(det, 0) {
		return false, nil // non-finite determinant can never support inversion
	}

	return det != 0, nil
}
