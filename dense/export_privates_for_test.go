// SPDX-License-Identifier: MIT
// Test-only exports. This file widens package-private seams for white-box
// tests living in dense_test; nothing here is part of the public contract.

package dense

// OptionsSnapshot_TestOnly is a readable copy of the resolved Options state.
type OptionsSnapshot_TestOnly struct {
	Eps float64
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly like the public entry
// points do and returns the resulting state.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot_TestOnly {
	o := gatherOptions(opts...)
	return OptionsSnapshot_TestOnly{Eps: o.epsilon}
}

// PivotScale_TestOnly exposes the relative-tolerance reference magnitude.
func PivotScale_TestOnly(diag []float64) float64 {
	return pivotScale(diag)
}

// IsZeroPivot_TestOnly exposes the singularity predicate under the policy
// resolved from opts.
func IsZeroPivot_TestOnly(v, scale float64, opts ...Option) bool {
	return gatherOptions(opts...).isZeroPivot(v, scale)
}
