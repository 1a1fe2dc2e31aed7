// SPDX-License-Identifier: MIT

package reservoir

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/reservoir/matrix"
)

// Base reservoir scales: B ~ (U[0,1) − 0.5)·baseInputScale, r* ~ U[0,1) − baseStateOffset.
const (
	baseInputScale  = 0.05
	baseStateOffset = 0.5
)

// NewFixedPoint builds a reservoir whose bias makes rInit a fixed point of the
// discrete map under the constant input xInit:
//
//	d = atanh(rInit) − A·rInit − B·xInit
//
// The dimensions come from the operands: n = A.Rows(), k = B.Cols(),
// m = W.Rows(). The state starts at zero and the input at xInit, so Run and
// Simulate trace the relaxation towards rInit. rInit and xInit are kept and
// reported by FixedPoint and FixedPointInput.
//
// Errors:
//   - ErrNilMatrix for nil operands.
//   - ErrDimensionMismatch when A is not square, B not n×k, W not m×n,
//     len(rInit) != n or len(xInit) != k.
//   - ErrNaNInf for non-finite entries.
//   - ErrOutOfDomain when some |rInit_i| >= 1.
func NewFixedPoint(A, B, W matrix.Matrix, rInit, xInit []float64, opts ...Option) (*Reservoir, error) {
	for _, op := range []matrix.Matrix{A, B, W} {
		if err := matrix.ValidateNotNil(op); err != nil {
			return nil, reservoirErrorf(opNewFixedPoint, err)
		}
	}
	if err := matrix.ValidateSquare(A); err != nil {
		return nil, reservoirErrorf(opNewFixedPoint, err)
	}
	n, k, m := A.Rows(), B.Cols(), W.Rows()

	res, err := New(k, m, n, opts...)
	if err != nil {
		return nil, reservoirErrorf(opNewFixedPoint, err)
	}
	if err = res.SetRecurrent(A); err != nil {
		return nil, reservoirErrorf(opNewFixedPoint, err)
	}
	if err = res.SetInputWeights(B); err != nil {
		return nil, reservoirErrorf(opNewFixedPoint, err)
	}
	if err = res.SetReadoutWeights(W); err != nil {
		return nil, reservoirErrorf(opNewFixedPoint, err)
	}
	if err = checkVec(rInit, n); err != nil {
		return nil, reservoirErrorf(opNewFixedPoint, fmt.Errorf("rInit: %w", err))
	}
	if err = res.SetInput(xInit); err != nil {
		return nil, reservoirErrorf(opNewFixedPoint, err)
	}
	for i, v := range rInit {
		if math.Abs(v) >= 1 {
			return nil, reservoirErrorf(opNewFixedPoint, fmt.Errorf("rInit[%d]=%g: %w", i, v, ErrOutOfDomain))
		}
	}
	copy(res.fixedPoint, rInit)
	copy(res.fixedInput, xInit)

	// d = atanh(r*) − (A·r* + B·x*), reusing the bias buffer as the accumulator.
	_ = matrix.MatVecInto(res.bias, res.recurrent, res.fixedPoint)
	_ = matrix.MatVecAddInto(res.bias, res.inputWeights, res.fixedInput)
	for i, v := range res.fixedPoint {
		res.bias[i] = math.Atanh(v) - res.bias[i]
	}

	return res, nil
}

// NewRandom builds the seeded base reservoir used to bootstrap a design:
// A = 0, B_ij = (U − 0.5)·0.05, r*_i = U − 0.5, x* = 0, W = 0, with
// d derived by NewFixedPoint. B is drawn before r*, row-major.
// The state starts at zero; the same seed always produces the same reservoir.
func NewRandom(k, m, n int, seed int64, opts ...Option) (*Reservoir, error) {
	if k < 0 || m < 0 || n < 0 {
		return nil, reservoirErrorf(opNewRandom, ErrInvalidDimensions)
	}
	rng := rand.New(rand.NewSource(seed))

	bVals := make([]float64, n*k)
	for i := range bVals {
		bVals[i] = (rng.Float64() - 0.5) * baseInputScale
	}
	rInit := make([]float64, n)
	for i := range rInit {
		rInit[i] = rng.Float64() - baseStateOffset
	}

	A, err := matrix.NewZeros(n, n)
	if err != nil {
		return nil, reservoirErrorf(opNewRandom, err)
	}
	B, err := matrix.NewDenseFrom(n, k, bVals)
	if err != nil {
		return nil, reservoirErrorf(opNewRandom, err)
	}
	W, err := matrix.NewZeros(m, n)
	if err != nil {
		return nil, reservoirErrorf(opNewRandom, err)
	}

	res, err := NewFixedPoint(A, B, W, rInit, make([]float64, k), opts...)
	if err != nil {
		return nil, reservoirErrorf(opNewRandom, err)
	}

	return res, nil
}
