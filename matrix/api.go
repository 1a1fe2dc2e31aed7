// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//
// Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewZeros/NewIdentity to build matrices with explicit shape and neutral elements.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(rows*cols) zero-init.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// AllCloseVec checks element-wise |a-b| ≤ atol + rtol*|b|; lengths must match
// (ErrDimensionMismatch). NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
// Time: O(n). Space: O(1).
//
// Hints:
//   - AllCloseVec with small atol/rtol is ideal for invariance tests in unit tests.
func AllCloseVec(a, b []float64, rtol, atol float64) (bool, error) {
	rtol, atol, err := normalizeTolerances(rtol, atol)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if len(a) != len(b) {
		return false, matrixErrorf(opAllClose, ErrDimensionMismatch)
	}

	return ewAllCloseVec(a, b, rtol, atol), nil
}
