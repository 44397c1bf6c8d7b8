// SPDX-License-Identifier: MIT
// Package dense: partial (row) pivoting.
//
// Partial pivoting scans each column left to right, finds the row with the
// largest absolute value at or below the diagonal and swaps it into the
// diagonal position. Only rows are permuted — full (row+column) pivoting
// would require tracking a column permutation as well and is a deliberate
// accuracy/performance tradeoff, not a limitation of the LU contract.

package dense

import "math"

// Pivot reorders the rows of a square matrix IN PLACE so that each diagonal
// position holds the maximum-magnitude candidate of its column, and returns
// the sign of the accumulated permutation (−1 per swap performed).
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: for each column c, scan rows r ∈ [c, n) for the largest
//     |m[r,c]|; swap the winner into row c and flip the sign.
//
// Behavior highlights:
//   - Mutates the caller's matrix; callers that need the original must clone
//     first (LUDecompose does exactly that).
//   - A column whose maximal candidate is zero performs no swap; singular
//     structure is left for downstream consumers to detect.
//
// Returns:
//   - int: +1 for an even number of swaps, −1 for odd.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Determinism:
//   - Fixed c→r scan order; ties keep the topmost row (strict > comparison).
//
// Complexity:
//   - Time O(n^2) scan + O(n^2) worst-case swaps, Space O(1).
func Pivot(m Matrix) (int, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, opErrorf(opPivot, err)
	}

	// Fast-path: operate on the flat backing slice, no permutation tracking.
	if d, ok := m.(*Dense); ok {
		sign, _ := pivotInPlace(d, nil)
		return sign, nil
	}

	// Fallback: generic interface path via At/Set row swaps.
	n := m.Rows()
	sign := 1
	var v, best, tmpA, tmpB float64
	var err error
	for c := 0; c < n; c++ {
		maxR := c
		if best, err = m.At(c, c); err != nil {
			return 0, opErrorf(opPivot, err)
		}
		best = math.Abs(best)
		for r := c + 1; r < n; r++ {
			if v, err = m.At(r, c); err != nil {
				return 0, opErrorf(opPivot, err)
			}
			if math.Abs(v) > best {
				best = math.Abs(v)
				maxR = r
			}
		}
		if maxR == c {
			continue
		}
		// Swap rows c and maxR through the interface.
		for j := 0; j < n; j++ {
			if tmpA, err = m.At(c, j); err != nil {
				return 0, opErrorf(opPivot, err)
			}
			if tmpB, err = m.At(maxR, j); err != nil {
				return 0, opErrorf(opPivot, err)
			}
			if err = m.Set(c, j, tmpB); err != nil {
				return 0, opErrorf(opPivot, err)
			}
			if err = m.Set(maxR, j, tmpA); err != nil {
				return 0, opErrorf(opPivot, err)
			}
		}
		sign = -sign
	}

	return sign, nil
}

// pivotInPlace runs partial pivoting on d and mirrors every row swap onto p
// when p is non-nil. Seeding p with the identity therefore accumulates the
// permutation matrix P satisfying P·A = pivoted(A).
//
// Invariant: sign == parity of the swaps applied to p, so the permutation
// matrix and the swap sign always agree.
//
// Time O(n^2) + swaps, Space O(1).
func pivotInPlace(d, p *Dense) (int, int) {
	n := d.r
	sign := 1
	swaps := 0
	for c := 0; c < n; c++ {
		// Locate the max-|v| row at or below the diagonal in column c.
		maxR := c
		best := math.Abs(d.data[c*n+c])
		for r := c + 1; r < n; r++ {
			if v := math.Abs(d.data[r*n+c]); v > best {
				best = v
				maxR = r
			}
		}
		if maxR == c {
			continue
		}
		_ = d.SwapRows(c, maxR) // indices are in range by construction
		if p != nil {
			_ = p.SwapRows(c, maxR)
		}
		sign = -sign
		swaps++
	}

	return sign, swaps
}

// denseCopyOf materializes any Matrix into a fresh *Dense.
// For *Dense inputs this is a flat copy; foreign implementations are read
// through the interface in fixed i→j order.
// Time O(r*c), Space O(r*c).
func denseCopyOf(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}

	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}
