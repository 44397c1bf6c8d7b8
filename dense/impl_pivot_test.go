// SPDX-License-Identifier: MIT
// Package dense_test: partial-pivoting tests (in-place reordering, swap sign,
// fast-path/fallback parity).

package dense_test

import (
	"testing"

	"github.com/katalvlaran/lvldense/dense"
)

func TestPivot_ReordersAndSigns(t *testing.T) {
	t.Parallel()

	// Column 0 winner is row 1 (|2| > |0|): one swap, sign −1; column 1
	// already holds its max-magnitude candidate after the swap.
	m := MustDenseFromRows(t, [][]float64{
		{0, 1},
		{2, 3},
	})

	sign, err := dense.Pivot(m)
	if err != nil {
		t.Fatalf("Pivot: %v", err)
	}
	if sign != -1 {
		t.Fatalf("sign = %d, want -1 (single swap)", sign)
	}
	CompareExact(t, [][]float64{{2, 3}, {0, 1}}, m)
}

func TestPivot_NoSwapNeeded(t *testing.T) {
	t.Parallel()

	// Diagonally dominant: every diagonal entry already wins its column.
	m := MustDenseFromRows(t, [][]float64{
		{5, 1, 0},
		{2, 7, 1},
		{-1, 3, 9},
	})

	sign, err := dense.Pivot(m)
	if err != nil {
		t.Fatalf("Pivot: %v", err)
	}
	if sign != 1 {
		t.Fatalf("sign = %d, want +1 (no swaps)", sign)
	}
	CompareExact(t, [][]float64{{5, 1, 0}, {2, 7, 1}, {-1, 3, 9}}, m)
}

func TestPivot_TieKeepsTopRow(t *testing.T) {
	t.Parallel()

	// |m[0,0]| == |m[1,0]|: the strict > comparison keeps the topmost row.
	m := MustDenseFromRows(t, [][]float64{
		{2, 1},
		{-2, 5},
	})

	sign, err := dense.Pivot(m)
	if err != nil {
		t.Fatalf("Pivot: %v", err)
	}
	if sign != 1 {
		t.Fatalf("sign = %d, want +1 (tie keeps order)", sign)
	}
	CompareExact(t, [][]float64{{2, 1}, {-2, 5}}, m)
}

func TestPivot_FallbackMatchesFastPath(t *testing.T) {
	t.Parallel()

	rows := [][]float64{
		{0, 1, -4},
		{-2, 8, 3},
		{7, -1, 2},
	}
	fast := MustDenseFromRows(t, rows)
	slowBase := MustDenseFromRows(t, rows)

	signFast, err := dense.Pivot(fast)
	if err != nil {
		t.Fatalf("Pivot fast: %v", err)
	}
	signSlow, err := dense.Pivot(hide{slowBase}) // force the At/Set path
	if err != nil {
		t.Fatalf("Pivot fallback: %v", err)
	}

	if signFast != signSlow {
		t.Fatalf("sign mismatch: fast=%d fallback=%d", signFast, signSlow)
	}
	MatricesClose(t, fast, slowBase, TolExact)
}

func TestPivot_SingularColumnLeftInPlace(t *testing.T) {
	t.Parallel()

	// Zero leading column: no candidate wins column 0, and the column-1
	// diagonal already holds its winner, so nothing moves. The singular
	// structure is left for downstream consumers.
	m := MustDenseFromRows(t, [][]float64{
		{0, 1},
		{0, 2},
	})

	sign, err := dense.Pivot(m)
	if err != nil {
		t.Fatalf("Pivot: %v", err)
	}
	if sign != 1 {
		t.Fatalf("sign = %d, want +1", sign)
	}
	CompareExact(t, [][]float64{{0, 1}, {0, 2}}, m)
}

func TestPivot_Errors(t *testing.T) {
	t.Parallel()

	_, err := dense.Pivot(nil)
	AssertErrorIs(t, err, dense.ErrNilMatrix)
	_, err = dense.Pivot(MustDense(t, 2, 3))
	AssertErrorIs(t, err, dense.ErrNonSquare)
}
