// SPDX-License-Identifier: MIT
// Package dense_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and assertions for the kernels.
//   • Keep all fixture data finite and well-formed to avoid numeric-policy
//     interference; degenerate inputs are built explicitly where tested.

package dense_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvldense/dense"
)

// Shared numeric tolerances for floating assertions.
const (
	// TolExact is used where the arithmetic is provably exact (small
	// integer fixtures, short elimination chains).
	TolExact = 0.0

	// TolTiny covers accumulated rounding of O(n^3) kernels on the
	// well-conditioned fixtures below.
	TolTiny = 1e-12

	// TolLoose covers longer solve chains (factor + substitution + product).
	TolLoose = 1e-9
)

// hide WRAPS any Matrix to mask its concrete type from type assertions.
// Use hide{X} to force the At/Set fallback path in code under test; keep the
// other operand *Dense to isolate path differences.
type hide struct{ dense.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *dense.Dense {
	t.Helper()
	m, err := dense.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustDenseFromRows BUILDS a *Dense from explicit row literals or fails.
// Preferred fixture builder: the shape is visible at the call site.
func MustDenseFromRows(t *testing.T, rows [][]float64) *dense.Dense {
	t.Helper()
	m, err := dense.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// IdentityDense RETURNS an n×n identity matrix or fails the test.
func IdentityDense(t *testing.T, n int) *dense.Dense {
	t.Helper()
	m, err := dense.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// MustSet WRITES v to m[i,j] or fails the test.
func MustSet(t *testing.T, m dense.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t *testing.T, m dense.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact ASSERTS strict equality between a 2D literal and m.
// Use only for integer-like fixtures whose arithmetic is exact.
func CompareExact(t *testing.T, want [][]float64, m dense.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int // loop iterators
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose ASSERTS |want[i][j] − m[i,j]| ≤ atol element-wise.
func CompareClose(t *testing.T, want [][]float64, m dense.Matrix, atol float64) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareClose: Rows = %d; want %d", r, len(want))
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareClose: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			v = MustAt(t, m, i, j)
			if math.Abs(v-want[i][j]) > atol {
				t.Fatalf("m[%d,%d]=%g; want %g (atol=%g)", i, j, v, want[i][j], atol)
			}
		}
	}
}

// MatricesClose ASSERTS |a[i,j] − b[i,j]| ≤ atol element-wise for two
// identically shaped matrices. atol == 0 demands bitwise equality.
func MatricesClose(t *testing.T, a, b dense.Matrix, atol float64) {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("shape mismatch: %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	var i, j int
	var av, bv float64
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, bv = MustAt(t, a, i, j), MustAt(t, b, i, j)
			if math.Abs(av-bv) > atol {
				t.Fatalf("[%d,%d]: %g vs %g (atol=%g)", i, j, av, bv, atol)
			}
		}
	}
}

// sliceClose ASSERTS |a[i]-b[i]| ≤ atol element-wise on vectors.
func sliceClose(t *testing.T, a, b []float64, atol float64) {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("slice lengths: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > atol {
			t.Fatalf("sliceClose idx=%d: got=%g want=%g (atol=%g)", i, a[i], b[i], atol)
		}
	}
}

// AssertErrorIs WRAPS errors.Is with consistent failure text.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// ExpectPanic ASSERTS that fn() panics (any value).
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got nil")
		}
	}()
	fn()
}

// ---------- shared fixtures ----------

// wellConditioned5 is the invertible 5×5 fixture: determinant −135.
func wellConditioned5(t *testing.T) *dense.Dense {
	t.Helper()
	return MustDenseFromRows(t, [][]float64{
		{1, -2, 3, 5, 8},
		{0, -1, -1, 2, 3},
		{2, 4, -1, 3, 1},
		{0, 0, 5, 0, 0},
		{1, 3, 0, 4, -1},
	})
}

// singular5 is wellConditioned5 with three rows replaced so that the fourth
// column is a multiple of another; determinant 0, inversion must fail.
func singular5(t *testing.T) *dense.Dense {
	t.Helper()
	return MustDenseFromRows(t, [][]float64{
		{1, -2, 3, 5, 8},
		{0, -1, -1, 0, 3},
		{2, 4, -1, 10, 1},
		{0, 0, 5, 0, 0},
		{1, 3, 0, 5, -1},
	})
}

// nearSingular2 has a pivot of ~1e-13: invertible under the exact-zero
// baseline, singular under WithEpsilon(1e-10).
func nearSingular2(t *testing.T) *dense.Dense {
	t.Helper()
	return MustDenseFromRows(t, [][]float64{
		{1, 2},
		{1, 2 + 1e-13},
	})
}

// augmented3x5 is the rectangular reduction fixture with a known reduced
// row-echelon form.
func augmented3x5(t *testing.T) *dense.Dense {
	t.Helper()
	return MustDenseFromRows(t, [][]float64{
		{2, 1, -1, 8, 80},
		{-3, -1, 2, -11, -110},
		{-2, 1, 2, -3, -30},
	})
}

// ---------- bench helpers ----------

func benchDense(b *testing.B, r, c int) *dense.Dense {
	d, err := dense.NewZeros(r, c)
	if err != nil {
		b.Fatalf("NewZeros(%d,%d): %v", r, c, err)
	}
	return d
}

func fillDenseRand(d *dense.Dense, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	rows, cols := d.Rows(), d.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			_ = d.Set(i, j, rng.Float64()*2-1) // [-1,1]
		}
	}
}
