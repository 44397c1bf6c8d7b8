// SPDX-License-Identifier: MIT
// Package dense: Gaussian row reduction to echelon forms, usable on
// rectangular matrices independently of the LU path, plus the solvability
// classifier for row-echelon augmented systems.
//
// Calling convention: RowEchelon and ReducedRowEchelon reduce the caller's
// matrix IN PLACE; the ...Of variants are the non-mutating counterparts
// returning a fresh Dense.

package dense

import "math"

// RowEchelon reduces m IN PLACE to (non-reduced) row-echelon form using
// Gaussian elimination with partial pivoting.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); materialize foreign implementations.
//   - Stage 2: iterate (row r, column c) from the top-left; search rows
//     r..R−1 for the max-|v| entry of column c; if the maximum is zero,
//     advance c only (rank deficiency leaves a pivotless column); otherwise
//     swap the winner up, normalize the pivot row to a leading 1 and
//     eliminate every entry below, then advance both r and c.
//
// Behavior highlights:
//   - Accepts rectangular matrices; terminates when rows or columns run out.
//   - Rank-deficient input produces fewer pivot rows, never an error.
//
// Errors:
//   - ErrNilMatrix.
//
// Determinism:
//   - Fixed scan orders; pivot ties keep the topmost row.
//
// Complexity:
//   - Time O(r^2*c), Space O(1) on *Dense (O(r*c) transient otherwise).
func RowEchelon(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return opErrorf(opREF, err)
	}

	if d, ok := m.(*Dense); ok {
		refInPlace(d)
		return nil
	}

	// Foreign Matrix: reduce a dense copy, then write the result back in
	// fixed i→j order (the interface has no row-level primitives to reduce
	// against directly).
	d, err := denseCopyOf(m)
	if err != nil {
		return opErrorf(opREF, err)
	}
	refInPlace(d)

	return writeBack(opREF, m, d)
}

// ReducedRowEchelon reduces m IN PLACE to reduced row-echelon form: first
// the forward elimination of RowEchelon, then a bottom-up pass locating each
// row's leading nonzero entry, normalizing by it and eliminating that
// column's entries in all rows above. All-zero rows (rank deficiency) are
// skipped.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r^2*c), Space O(1) on *Dense (O(r*c) transient otherwise).
func ReducedRowEchelon(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return opErrorf(opRREF, err)
	}

	if d, ok := m.(*Dense); ok {
		rrefInPlace(d)
		return nil
	}

	d, err := denseCopyOf(m)
	if err != nil {
		return opErrorf(opRREF, err)
	}
	rrefInPlace(d)

	return writeBack(opRREF, m, d)
}

// RowEchelonOf returns the row-echelon form of m without mutating it.
// Time O(r^2*c), Space O(r*c).
func RowEchelonOf(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opREF, err)
	}
	d, err := denseCopyOf(m)
	if err != nil {
		return nil, opErrorf(opREF, err)
	}
	refInPlace(d)

	return d, nil
}

// ReducedRowEchelonOf returns the reduced row-echelon form of m without
// mutating it. Time O(r^2*c), Space O(r*c).
func ReducedRowEchelonOf(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opRREF, err)
	}
	d, err := denseCopyOf(m)
	if err != nil {
		return nil, opErrorf(opRREF, err)
	}
	rrefInPlace(d)

	return d, nil
}

// refInPlace is the forward-elimination kernel on flat storage.
func refInPlace(d *Dense) {
	rows, cols := d.r, d.c
	r, c := 0, 0
	for r < rows && c < cols {
		// Downward max-|v| search in column c, rows r..rows-1.
		maxR := r
		best := math.Abs(d.data[r*cols+c])
		for r2 := r + 1; r2 < rows; r2++ {
			if v := math.Abs(d.data[r2*cols+c]); v > best {
				best = v
				maxR = r2
			}
		}
		// An all-zero column below the current row yields no pivot: advance
		// the column only.
		if d.data[maxR*cols+c] == 0 {
			c++
			continue
		}
		_ = d.SwapRows(r, maxR)

		// Normalize the pivot row to a leading 1.
		base := r * cols
		pivot := d.data[base+c]
		for j := c; j < cols; j++ {
			d.data[base+j] /= pivot
		}

		// Eliminate below the pivot.
		for r2 := r + 1; r2 < rows; r2++ {
			factor := d.data[r2*cols+c]
			if factor == 0 {
				continue
			}
			rowBase := r2 * cols
			for j := c; j < cols; j++ {
				d.data[rowBase+j] -= factor * d.data[base+j]
			}
		}

		r++
		c++
	}
}

// rrefInPlace runs refInPlace, then the bottom-up back elimination.
func rrefInPlace(d *Dense) {
	refInPlace(d)

	rows, cols := d.r, d.c
	for r := rows - 1; r >= 0; r-- {
		base := r * cols
		// Locate this row's leading nonzero entry.
		lead := -1
		for c := 0; c < cols; c++ {
			if d.data[base+c] != 0 {
				lead = c
				break
			}
		}
		if lead < 0 {
			continue // all-zero row from rank deficiency
		}

		// Normalize by the leading entry (already 1 after refInPlace, kept
		// for rows whose scale drifted during elimination).
		pivot := d.data[base+lead]
		for j := lead; j < cols; j++ {
			d.data[base+j] /= pivot
		}

		// Eliminate the pivot column in all rows above.
		for r2 := 0; r2 < r; r2++ {
			factor := d.data[r2*cols+lead]
			if factor == 0 {
				continue
			}
			rowBase := r2 * cols
			for j := lead; j < cols; j++ {
				d.data[rowBase+j] -= factor * d.data[base+j]
			}
		}
	}
}

// writeBack copies the reduced dense result into a foreign Matrix via Set.
func writeBack(tag string, dst Matrix, src *Dense) error {
	for i := 0; i < src.r; i++ {
		for j := 0; j < src.c; j++ {
			if err := dst.Set(i, j, src.data[i*src.c+j]); err != nil {
				return opErrorf(tag, err)
			}
		}
	}
	return nil
}

// Classify inspects a row-echelon AUGMENTED matrix (coefficient columns plus
// one trailing right-hand-side column) and reports whether the underlying
// linear system has no solution, exactly one, or infinitely many.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); require at least one coefficient column
//     (Cols ≥ 2, else ErrDimensionMismatch).
//   - Stage 2: one pass over the rows. A row whose coefficients are all zero
//     but whose RHS is nonzero is contradictory ⇒ NoSolution. Otherwise
//     count rows owning a leading coefficient (pivot rows).
//   - Stage 3: pivots < unknowns (Cols−1) ⇒ InfiniteSolutions (free
//     columns); pivots == unknowns ⇒ UniqueSolution.
//
// Behavior highlights:
//   - Input must already be in row-echelon form (run RowEchelon first); the
//     classifier does not re-reduce.
//   - Comparisons are exact-zero, matching the reduction kernels that
//     produce the input.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Single fixed row scan; contradiction short-circuits.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Classify(m Matrix) (Solvability, error) {
	if err := ValidateNotNil(m); err != nil {
		return NoSolution, opErrorf(opClassify, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if cols < 2 {
		return NoSolution, opErrorf(opClassify, validatorErrorf("augmented form needs coefficients and RHS", ErrDimensionMismatch))
	}

	unknowns := cols - 1
	pivots := 0
	var v float64
	var err error
	for i := 0; i < rows; i++ {
		lead := -1
		for j := 0; j < unknowns; j++ {
			if v, err = m.At(i, j); err != nil {
				return NoSolution, opErrorf(opClassify, err)
			}
			if v != 0 {
				lead = j
				break
			}
		}
		if lead >= 0 {
			pivots++
			continue
		}
		// All-zero coefficients: a nonzero RHS makes the row contradictory.
		if v, err = m.At(i, unknowns); err != nil {
			return NoSolution, opErrorf(opClassify, err)
		}
		if v != 0 {
			return NoSolution, nil
		}
	}

	if pivots < unknowns {
		return InfiniteSolutions, nil
	}

	return UniqueSolution, nil
}
