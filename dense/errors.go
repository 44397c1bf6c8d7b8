// SPDX-License-Identifier: MIT
// Package dense: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the dense
// package. All algorithms MUST return these sentinels and tests MUST check
// them via errors.Is. No algorithm panics on user-triggered error conditions;
// panics are reserved for programmer errors in option constructors.

package dense

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dense: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> shape/index -> dimension mismatch -> singularity.

var (
	// ErrInvalidDimensions is returned when a requested shape is invalid
	// (r<=0 or c<=0). Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("dense: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub with different shapes, Mul where a.Cols != b.Rows, or a
	// right-hand-side vector whose length differs from the system dimension.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required (LU, determinant,
	// inversion, pivoting) but the input wasn't.
	ErrNonSquare = errors.New("dense: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("dense: nil matrix")

	// ErrSingular is returned by the inverse entry points when the matrix (or
	// its LU factors) is singular under the configured numeric policy. It is
	// the ONLY singularity signal in the package: decomposition, determinant
	// and echelon reduction stay silent and produce degenerate results instead.
	ErrSingular = errors.New("dense: singular matrix")
)
