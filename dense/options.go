// SPDX-License-Identifier: MIT

// Package dense: functional configuration for the numeric singularity policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: the epsilon flag changes behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes on the policy itself:
//   - The reference behavior compares pivots and determinants against EXACT
//     zero. That is the default here, preserved deliberately: it is the
//     baseline contract of the library.
//   - Exact-zero testing is numerically fragile for matrices that are
//     singular only up to rounding. WithEpsilon(eps) switches the pivot and
//     determinant checks to a RELATIVE test |v| ≤ eps·scale, where scale is
//     the largest finite |U[i,i]| of the factorization (1 when all diagonal
//     magnitudes vanish). This is an explicit, opt-in deviation.

package dense

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the default singularity tolerance: exact-zero comparison,
// matching the baseline contract. Opt into a relative tolerance via
// WithEpsilon.
const DefaultEpsilon = 0.0

// Options carries the resolved numeric policy. Fields are unexported; public
// APIs consume ...Option and resolve through gatherOptions.
type Options struct {
	epsilon float64 // relative singularity tolerance, ≥ 0; 0 ⇒ exact-zero test
}

// Option mutates Options during resolution.
type Option func(*Options)

// WithEpsilon sets the relative singularity tolerance used by Determinant,
// Invertible, Inverse and InverseLU. eps must be finite and ≥ 0; eps == 0
// restores the exact-zero baseline. Panics on NaN/Inf/negative input
// (programmer error, not a runtime condition).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(fmt.Sprintf("dense: WithEpsilon(%g): tolerance must be finite and non-negative", eps))
	}
	return func(o *Options) { o.epsilon = eps }
}

// gatherOptions folds opts over the documented defaults.
// Time O(len(opts)), Space O(1).
func gatherOptions(opts ...Option) Options {
	o := Options{epsilon: DefaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// pivotScale returns the reference magnitude for the relative tolerance test:
// the largest finite |d| over the diagonal entries d, or 1 when none exceeds
// zero. Exact-zero policy (epsilon == 0) never calls this.
func pivotScale(diag []float64) float64 {
	scale := 0.0
	for _, d := range diag {
		if a := math.Abs(d); a > scale && !math.IsInf(a, 0) && !math.IsNaN(a) {
			scale = a
		}
	}
	if scale == 0 {
		return 1.0
	}
	return scale
}

// isZeroPivot reports whether pivot v counts as zero under the policy.
// With epsilon == 0 this is the exact-zero baseline; otherwise the relative
// test |v| ≤ epsilon·scale. NaN pivots (degenerate factorizations) always
// count as zero — a non-finite pivot can never support an inversion.
func (o Options) isZeroPivot(v, scale float64) bool {
	if math.IsNaN(v) {
		return true
	}
	if o.epsilon == 0 {
		return v == ZeroPivot
	}
	return math.Abs(v) <= o.epsilon*scale
}
