// SPDX-License-Identifier: MIT
// Package dense: matrix inversion from a raw matrix or from precomputed LU
// factors.
//
// Both entry points share one postcondition — input × inverse = identity and
// inverse × input = identity (within floating tolerance) — and one failure
// mode: ErrSingular when the matrix (or its factorization) is singular under
// the numeric policy. Inversion is the ONLY place in the package where
// singularity is an error; see errors.go for the taxonomy.

package dense

import "fmt"

// factorDiagonal reads the diagonal of u into a fresh slice.
// Time O(n) fast path, O(n) At calls otherwise.
func factorDiagonal(u Matrix) ([]float64, error) {
	n := u.Rows()
	diag := make([]float64, n)
	if du, ok := u.(*Dense); ok {
		for i := 0; i < n; i++ {
			diag[i] = du.data[i*n+i]
		}
		return diag, nil
	}
	var err error
	for i := 0; i < n; i++ {
		if diag[i], err = u.At(i, i); err != nil {
			return nil, err
		}
	}
	return diag, nil
}

// InverseLU computes (L·U)⁻¹ from precomputed factors by solving the n
// systems L·y = e_i, U·x = y — one per identity column — and assembling the
// solutions as the columns of the result.
//
// Implementation:
//   - Stage 1: ValidateFactorPair(l, u); pre-scan diag(U) under the numeric
//     policy and fail with ErrSingular on a (near-)zero pivot. The pre-scan
//     guarantees this entry point and Inverse fail identically on the same
//     degenerate factors.
//   - Stage 2: per identity column, forward substitution down L (unit
//     diagonal ⇒ no division) then back substitution up U.
//
// Inputs:
//   - l: unit-lower-triangular factor, as produced by LUDecompose.
//   - u: upper-triangular factor.
//
// Returns:
//   - Matrix: fresh n×n Dense holding (L·U)⁻¹. Note that for factors of a
//     pivoted decomposition P·A = L·U this is A⁻¹·P⁻¹; Inverse composes the
//     final ·P step.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrSingular.
//
// Determinism:
//   - Fixed col↑, forward i↑, backward i↓ loop orders.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the result plus two O(n) workspaces.
func InverseLU(l, u Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateFactorPair(l, u); err != nil {
		return nil, opErrorf(opInverseLU, err)
	}
	o := gatherOptions(opts...)

	// Singularity pre-scan: any (near-)zero diagonal pivot of U blocks the
	// back substitution before producing non-finite garbage.
	diag, err := factorDiagonal(u)
	if err != nil {
		return nil, opErrorf(opInverseLU, err)
	}
	scale := pivotScale(diag)
	for _, d := range diag {
		if o.isZeroPivot(d, scale) {
			return nil, opErrorf(opInverseLU, ErrSingular)
		}
	}

	n := l.Rows()
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, opErrorf(opInverseLU, err)
	}

	var (
		sum float64
		y   = make([]float64, n) // forward substitution workspace
		x   = make([]float64, n) // backward substitution workspace
	)

	// Fast-path: both factors are *Dense → flat row-major strides.
	ld, okL := l.(*Dense)
	ud, okU := u.(*Dense)
	if okL && okU {
		for col := 0; col < n; col++ {
			// Forward: L·y = e_col (unit diagonal, no division).
			for i := 0; i < n; i++ {
				sum = ZeroSum
				base := i * n
				for k := 0; k < i; k++ {
					sum += ld.data[base+k] * y[k]
				}
				if i == col {
					y[i] = 1.0 - sum
				} else {
					y[i] = -sum
				}
			}
			// Backward: U·x = y (pivots verified by the pre-scan).
			for i := n - 1; i >= 0; i-- {
				sum = ZeroSum
				base := i * n
				for k := i + 1; k < n; k++ {
					sum += ud.data[base+k] * x[k]
				}
				x[i] = (y[i] - sum) / ud.data[base+i]
			}
			// Column col of the inverse is x.
			for i := 0; i < n; i++ {
				inv.data[i*n+col] = x[i]
			}
		}

		return inv, nil
	}

	// Fallback: generic interface version.
	var v float64
	for col := 0; col < n; col++ {
		for i := 0; i < n; i++ {
			sum = ZeroSum
			for k := 0; k < i; k++ {
				if v, err = l.At(i, k); err != nil {
					return nil, opErrorf(opInverseLU, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				sum += v * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		for i := n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k := i + 1; k < n; k++ {
				if v, err = u.At(i, k); err != nil {
					return nil, opErrorf(opInverseLU, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				sum += v * x[k]
			}
			x[i] = (y[i] - sum) / diag[i]
		}
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// Inverse computes A⁻¹ via the pivoted factorization: decompose P·A = L·U,
// invert the factor product, then fold the permutation back in:
//
//	A⁻¹ = (L·U)⁻¹ · P
//
// Behavior highlights:
//   - The input is never mutated.
//   - Shares the singularity policy (and the ErrSingular sentinel) with
//     InverseLU; callers wanting to avoid the error path should consult
//     Invertible first with the same options.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, opErrorf(opInverse, err)
	}

	l, u, p, err := LUDecompose(m)
	if err != nil {
		return nil, opErrorf(opInverse, err)
	}

	luInv, err := InverseLU(l, u, opts...)
	if err != nil {
		return nil, opErrorf(opInverse, err) // keeps ErrSingular matchable via errors.Is
	}

	// Undo the row permutation on the right: (L·U)⁻¹ = A⁻¹·P⁻¹, so ·P
	// restores A⁻¹.
	inv, err := Mul(luInv, p)
	if err != nil {
		return nil, opErrorf(opInverse, err)
	}

	return inv, nil
}
