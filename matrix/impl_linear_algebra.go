// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels a reservoir step needs:
// matrix multiplication and matrix-vector products (allocating and in-place).
// All functions perform strict fail-fast validation and return clear errors on
// dimension mismatches.
//
// Purpose:
//   - Declare canonical kernels used across the module.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - All kernels use central validators and wrap sentinels via matrixErrorf.
//   - The *Into variants write into caller-owned buffers so hot loops allocate nothing.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial accumulator value for dot-products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul           = "Mul"
	opMatVec        = "MatVec"
	opMatVecInto    = "MatVecInto"
	opMatVecAddInto = "MatVecAddInto"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Behavior highlights:
//   - Deterministic triple loops; no temporary tiles; one allocation for C.
//   - Empty inner dimension yields an all-zero r×c result.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders (i→k→j for fast path, i→j→k for fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies.
//
// Hints:
//   - If you can keep A as *Dense and cache-friendly by rows, you unlock the best path here.
func Mul(a, b Matrix) (*Dense, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue // skip zero for performance
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate product
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// MatVec computes y = m·x and returns a freshly allocated y (len == Rows(m)).
// Implementation:
//   - Stage 1: Validate m (not nil) and len(x) == Cols(m).
//   - Stage 2: Delegate to the shared row-dot kernel (fast-path for *Dense).
//
// Behavior highlights:
//   - Inputs are never mutated; a zero-column matrix yields an all-zero y.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r).
//
// Hints:
//   - For repeated calls with the same shape, prefer MatVecInto with a reused buffer.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, m.Rows()) // allocate exactly rows outputs
	if err := rowDots(m, x, y, false); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	return y, nil
}

// MatVecInto overwrites dst with m·x.
// Implementation:
//   - Stage 1: Validate m, len(x) == Cols(m), len(dst) == Rows(m).
//   - Stage 2: per-row dot products written straight into dst.
//
// Behavior highlights:
//   - Zero allocations; dst must not alias x (the kernel reads x while writing dst).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func MatVecInto(dst []float64, m Matrix, x []float64) error {
	if err := validateMatVecInto(dst, m, x); err != nil {
		return matrixErrorf(opMatVecInto, err)
	}
	if err := rowDots(m, x, dst, false); err != nil {
		return matrixErrorf(opMatVecInto, err)
	}

	return nil
}

// MatVecAddInto accumulates dst += m·x.
// Each row dot-product is completed before it is added to dst[i], so the
// result equals elementwise dst + (m·x) rather than a running sum seeded by dst.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// Hints:
//   - Chain MatVecInto(A,r) → MatVecAddInto(B,x) to build A·r + B·x without temporaries.
func MatVecAddInto(dst []float64, m Matrix, x []float64) error {
	if err := validateMatVecInto(dst, m, x); err != nil {
		return matrixErrorf(opMatVecAddInto, err)
	}
	if err := rowDots(m, x, dst, true); err != nil {
		return matrixErrorf(opMatVecAddInto, err)
	}

	return nil
}

// validateMatVecInto runs the composite NotNil → len(x) → len(dst) sequence.
func validateMatVecInto(dst []float64, m Matrix, x []float64) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return err
	}

	return ValidateVecLen(dst, m.Rows())
}

// rowDots computes y(i) = Σ_j m(i,j)·x(j) for every row, storing or adding it into y.
// Shapes are assumed validated by the caller.
// Determinism: fixed i→j order on both paths.
func rowDots(m Matrix, x, y []float64, accumulate bool) error {
	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int // indices and row base offset
		var acc, xv float64
		for i = 0; i < d.r; i++ { // iterate rows deterministically
			acc = ZeroSum             // reset accumulator per row
			base = i * d.c            // compute flat base offset for row i
			for j = 0; j < d.c; j++ { // iterate columns
				xv = x[j]    // read x(j) once per iteration
				if xv != 0 { // micro-optimization: skip zero multiplications
					acc += d.data[base+j] * xv // accumulate a(i,j)*x(j)
				}
			}
			if accumulate {
				y[i] += acc
			} else {
				y[i] = acc
			}
		}

		return nil
	}

	// Fallback: interface-based dot-products via At.
	rows, cols := m.Rows(), m.Cols()
	var i, j int
	var mv, acc float64
	var err error
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			acc += mv * x[j]
		}
		if accumulate {
			y[i] += acc
		} else {
			y[i] = acc
		}
	}

	return nil
}
