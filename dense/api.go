// SPDX-License-Identifier: MIT
// Package dense — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common construction tasks.
//   - Avoid any logic duplication — each facade delegates to the canonical
//     implementation.
//   - Keep function names explicit and intention-revealing.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of the kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and
//     neutral elements.

package dense

// ---------- Constructors & Utilities (O(1) alloc + O(rc) zeroing by runtime) ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init (constructor).
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as a neutral element for inverse/permutation checks.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r*c) copy for dense; implementation-defined otherwise.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing. Handy to preallocate staging buffers.
func ZerosLike(m Matrix) (*Dense, error) {
	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2). Validates square via central validator.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, opErrorf("IdentityLike", err)
	}
	return NewIdentity(m.Rows())
}

// ---------- Aliases (facades map 1:1 to kernels) ----------

// Det is an alias for Determinant.
// Complexity: O(n^3) (dominated by the LU factorization).
func Det(m Matrix, opts ...Option) (float64, error) { return Determinant(m, opts...) }

// REF is an alias for RowEchelon: reduce m in place to row-echelon form.
// Complexity: O(r^2*c).
func REF(m Matrix) error { return RowEchelon(m) }

// RREF is an alias for ReducedRowEchelon: reduce m in place to reduced
// row-echelon form.
// Complexity: O(r^2*c).
func RREF(m Matrix) error { return ReducedRowEchelon(m) }
