// SPDX-License-Identifier: MIT
// Package dense: the Dense container. Dense is the concrete, row-major
// implementation of the Matrix interface, storing elements in a flat slice
// for performance and cache friendliness.

package dense

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// Allocate flat slice and return initialized Dense
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense from explicit row slices.
// Stage 1 (Validate): non-empty input, rectangular shape.
// Stage 2 (Execute): copy row by row into flat storage.
// Complexity: O(r*c) time and memory.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	// Validate outer shape
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])

	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i, row := range rows {
		// Every row must have the same length (rectangular invariant).
		if len(row) != c {
			return nil, validatorErrorf("NewDenseFromRows", ErrDimensionMismatch)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// SwapRows exchanges rows a and b in place.
// A no-op when a == b. Returns ErrOutOfRange on invalid indices.
// Complexity: O(c).
func (m *Dense) SwapRows(a, b int) error {
	// Validate both row indices
	if a < 0 || a >= m.r || b < 0 || b >= m.r {
		return denseErrorf("SwapRows", a, b, ErrOutOfRange)
	}
	if a == b {
		return nil
	}

	// Exchange the two contiguous row blocks element by element.
	baseA, baseB := a*m.c, b*m.c
	for j := 0; j < m.c; j++ {
		m.data[baseA+j], m.data[baseB+j] = m.data[baseB+j], m.data[baseA+j]
	}

	return nil
}

// SwapCols exchanges columns a and b in place.
// A no-op when a == b. Returns ErrOutOfRange on invalid indices.
// Complexity: O(r).
func (m *Dense) SwapCols(a, b int) error {
	// Validate both column indices
	if a < 0 || a >= m.c || b < 0 || b >= m.c {
		return denseErrorf("SwapCols", a, b, ErrOutOfRange)
	}
	if a == b {
		return nil
	}

	// Strided walk: one swap per row.
	for i := 0; i < m.r; i++ {
		base := i * m.c
		m.data[base+a], m.data[base+b] = m.data[base+b], m.data[base+a]
	}

	return nil
}

// Row returns a fresh copy of row i as a vector.
// Complexity: O(c) time and memory.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a fresh copy of column j as a vector.
// Complexity: O(r) time and memory.
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf("Col", 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			// compute flat index directly for performance
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
