// SPDX-License-Identifier: MIT

// Package dense: domain types shared by the container and the kernels.
// This file contains ONLY domain-facing types; errors and options live in
// dedicated files (errors.go, options.go) per the package conventions.

package dense

// Matrix represents a two-dimensional mutable array of float64 values.
// Kernels accept this interface and fast-path on the concrete *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Solvability classifies a linear system in row-echelon augmented form
// (coefficients plus one trailing right-hand-side column).
type Solvability int

const (
	// NoSolution: some row has all-zero coefficients but a nonzero RHS —
	// the system is contradictory.
	NoSolution Solvability = iota

	// UniqueSolution: no contradictory rows and every unknown has a pivot.
	UniqueSolution

	// InfiniteSolutions: no contradictory rows, but at least one unknown
	// column carries no pivot (a free variable).
	InfiniteSolutions
)

// String implements fmt.Stringer for diagnostics and test output.
func (s Solvability) String() string {
	switch s {
	case NoSolution:
		return "no solution"
	case UniqueSolution:
		return "unique solution"
	case InfiniteSolutions:
		return "infinite solutions"
	default:
		return "unknown solvability"
	}
}
