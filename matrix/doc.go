// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra layer of the reservoir module.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy (NaN/±Inf rejected by default).
//   - Mul, MatVec and the allocation-free MatVecInto/MatVecAddInto kernels
//     used by the reservoir state update r ← tanh(A·r + B·x + d).
//   - Central validators (shape, vector length, finiteness) returning
//     sentinel errors that callers match with errors.Is.
//
// Empty shapes (0×c, r×0) are legal: every kernel degrades to empty or
// all-zero results instead of failing.
//
// See the examples in this package and in reservoir for usage patterns.
package matrix
