// SPDX-License-Identifier: MIT
// Package dense: linear-system evaluation against precomputed LU factors.

package dense

import "fmt"

// LUEvaluate solves a factored square system for one right-hand side using
// forward substitution on L followed by back substitution on U.
//
// RHS CONVENTION (documented, deliberate): b must be given in the row order
// established by the factorization — i.e. callers holding a raw right-hand
// side of A·x = b must pass P·b (apply the permutation from LUDecompose, or
// MatVec(P, b)). The returned vector is then the true solution x of the
// original system. When the factorization required no swaps (P = I) the raw
// and permuted right-hand sides coincide.
//
// Implementation:
//   - Stage 1: ValidateFactorPair(l, u) and ValidateVecLen(b, n).
//   - Stage 2: forward solve L·y = b top-down (unit diagonal ⇒ no division),
//     then back solve U·x = y bottom-up.
//
// Behavior highlights:
//   - No singularity check: evaluating against degenerate factors yields
//     non-finite entries in x rather than an error (check Invertible, or use
//     the inverse entry points, when a signaled failure is wanted).
//   - b is never mutated; x is freshly allocated and caller-owned.
//
// Inputs:
//   - l: unit-lower-triangular factor, as produced by LUDecompose.
//   - u: upper-triangular factor.
//   - b: right-hand side of length n, already permuted (see above).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed forward i↑ then backward i↓ orders.
//
// Complexity:
//   - Time O(n^2), Space O(n) for the two vectors.
func LUEvaluate(l, u Matrix, b []float64) ([]float64, error) {
	if err := ValidateFactorPair(l, u); err != nil {
		return nil, opErrorf(opEvaluate, err)
	}
	n := l.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, opErrorf(opEvaluate, err)
	}

	y := make([]float64, n)
	x := make([]float64, n)
	var sum float64

	// Fast-path: both factors are *Dense → flat row-major strides.
	ld, okL := l.(*Dense)
	ud, okU := u.(*Dense)
	if okL && okU {
		// Forward: L·y = b.
		for i := 0; i < n; i++ {
			sum = ZeroSum
			base := i * n
			for k := 0; k < i; k++ {
				sum += ld.data[base+k] * y[k]
			}
			y[i] = b[i] - sum
		}
		// Backward: U·x = y. Division by a zero pivot propagates ±Inf/NaN.
		for i := n - 1; i >= 0; i-- {
			sum = ZeroSum
			base := i * n
			for k := i + 1; k < n; k++ {
				sum += ud.data[base+k] * x[k]
			}
			x[i] = (y[i] - sum) / ud.data[base+i]
		}

		return x, nil
	}

	// Fallback: generic interface version.
	var v, pivot float64
	var err error
	for i := 0; i < n; i++ {
		sum = ZeroSum
		for k := 0; k < i; k++ {
			if v, err = l.At(i, k); err != nil {
				return nil, opErrorf(opEvaluate, fmt.Errorf("At(%d,%d): %w", i, k, err))
			}
			sum += v * y[k]
		}
		y[i] = b[i] - sum
	}
	for i := n - 1; i >= 0; i-- {
		sum = ZeroSum
		for k := i + 1; k < n; k++ {
			if v, err = u.At(i, k); err != nil {
				return nil, opErrorf(opEvaluate, fmt.Errorf("At(%d,%d): %w", i, k, err))
			}
			sum += v * x[k]
		}
		if pivot, err = u.At(i, i); err != nil {
			return nil, opErrorf(opEvaluate, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		x[i] = (y[i] - sum) / pivot
	}

	return x, nil
}
