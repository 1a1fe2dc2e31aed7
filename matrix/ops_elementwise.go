// SPDX-License-Identifier: MIT
// Package matrix - element-wise comparison kernels.
//
// Purpose:
//   - Centralize tolerance-based equality in one place.
//   - Tolerance normalization: NaN/Inf rejected, negatives abs-ed.

package matrix

import "math"

const opAllClose = "AllCloseVec"

// normalizeTolerances validates and abs-normalizes (rtol, atol).
func normalizeTolerances(rtol, atol float64) (float64, float64, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return 0, 0, ErrNaNInf // invalid tolerance
	}

	return math.Abs(rtol), math.Abs(atol), nil
}

// closeEnough reports |a-b| ≤ atol + rtol*|b|; equal infinities compare true, NaN never does.
func closeEnough(a, b, rtol, atol float64) bool {
	if a == b {
		return true // covers +Inf==+Inf and -Inf==-Inf
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// ewAllCloseVec is the flat-slice kernel behind AllCloseVec.
// Lengths are assumed equal.
func ewAllCloseVec(a, b []float64, rtol, atol float64) bool {
	for idx := range a {
		if !closeEnough(a[idx], b[idx], rtol, atol) {
			return false
		}
	}

	return true
}
