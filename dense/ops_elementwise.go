// SPDX-License-Identifier: MIT
// Package dense: elementwise and product kernels over any Matrix
// implementation. All functions perform strict fail-fast validation via the
// central validators and return clear sentinel errors on dimension
// mismatches.
//
// Notes:
//   - Every kernel has a flat-slice fast path for *Dense operands and a
//     deterministic At/Set fallback for foreign Matrix implementations.
//   - Inputs are never mutated; results are freshly allocated Dense values.

package dense

import "fmt"

// ZeroSum is the initial accumulator value for substitution and dot products.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Inverse routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opPivot     = "Pivot"
	opLU        = "LUDecompose"
	opDet       = "Determinant"
	opInvert    = "Invertible"
	opInverse   = "Inverse"
	opInverseLU = "InverseLU"
	opEvaluate  = "LUEvaluate"
	opREF       = "RowEchelon"
	opRREF      = "ReducedRowEchelon"
	opClassify  = "Classify"
)

// opErrorf wraps err with an operation tag, preserving the original error via
// %w so errors.Is/As keep matching the sentinels. Call only with err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); allocate the result Dense.
//   - Stage 2: fast-path if both are *Dense — single flat loop 0..n-1;
//     otherwise fall back to At/Set with fixed i→j order.
//
// Determinism:
//   - Flat 0..(r*c−1) in fast-path; i→j in fallback.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, opErrorf(opTag, err)
	}

	// Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, opErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := 0; idx < rows*cols; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}
			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, opErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, opErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c). The fast path is bandwidth-bound.
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A − B and returns a fresh
// Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
// The original matrix is never mutated; NaN/Inf alpha propagates.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, opErrorf(opScale, err)
	}

	// Fast-path for *Dense → flat multiply.
	if dm, ok := m.(*Dense); ok {
		for idx := 0; idx < rows*cols; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}
		return res, nil
	}

	// Fallback: generic interface loop.
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, opErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: validate A, B (non-nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: if A and B are *Dense, use i→k→j with row-major strides and
//     zero-skip on A[i,k]; otherwise use a fixed i→j→k fallback.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders (i→k→j fast path, i→j→k fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}

	// Fast-path for two Dense matrices: row-major accumulation into res.data.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i := 0; i < aRows; i++ {
				rowA, rowR := i*aCols, i*bCols
				for k := 0; k < aCols; k++ {
					av := da.data[rowA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowB := k * bCols
					for j := 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i→j→k).
	var av, bv, acc float64
	for i := 0; i < aRows; i++ {
		for j := 0; j < bCols; j++ {
			acc = ZeroSum
			for k := 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, opErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, opErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				acc += av * bv
			}
			res.data[i*bCols+j] = acc
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	// Fast-path: data[i*cols + j] → res.data[j*rows + i].
	if dm, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			base := i * cols
			for j := 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[base+j]
			}
		}
		return res, nil
	}

	// Fallback: generic interface loop.
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, opErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, opErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			acc := ZeroSum
			base := i * cols
			for j := 0; j < cols; j++ {
				if xv := x[j]; xv != 0 { // skip zero multiplications
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}
		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var mv float64
	var err error
	for i := 0; i < rows; i++ {
		y[i] = ZeroSum
		for j := 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, opErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}
