// SPDX-License-Identifier: MIT

package reservoir

import (
	"fmt"

	"github.com/katalvlaran/reservoir/matrix"
)

// The setters copy caller data into the reservoir after checking it against
// the fixed (k, m, n) shape. A rejected call leaves the reservoir untouched.
// None of them touch the convergence flag: convergence is a property of the
// trajectory observed by Run, not of the parameters.

// SetState replaces r (len n).
func (res *Reservoir) SetState(r []float64) error {
	return res.setVec(res.state, r, "State")
}

// SetInput replaces x (len k).
func (res *Reservoir) SetInput(x []float64) error {
	return res.setVec(res.input, x, "Input")
}

// SetBias replaces d (len n).
func (res *Reservoir) SetBias(d []float64) error {
	return res.setVec(res.bias, d, "Bias")
}

// SetRecurrent replaces A (n×n).
func (res *Reservoir) SetRecurrent(A matrix.Matrix) error {
	return res.setMat(&res.recurrent, A, res.n, res.n, "Recurrent")
}

// SetInputWeights replaces B (n×k).
func (res *Reservoir) SetInputWeights(B matrix.Matrix) error {
	return res.setMat(&res.inputWeights, B, res.n, res.k, "InputWeights")
}

// SetReadoutWeights replaces W (m×n).
func (res *Reservoir) SetReadoutWeights(W matrix.Matrix) error {
	return res.setMat(&res.readoutWeights, W, res.m, res.n, "ReadoutWeights")
}

func (res *Reservoir) setVec(dst, src []float64, field string) error {
	if err := checkVec(src, len(dst)); err != nil {
		return reservoirErrorf(opSet+field, err)
	}
	copy(dst, src)

	return nil
}

func (res *Reservoir) setMat(dst **matrix.Dense, src matrix.Matrix, rows, cols int, field string) error {
	if err := matrix.ValidateShape(src, rows, cols); err != nil {
		return reservoirErrorf(opSet+field, err)
	}
	d, err := denseCopy(src)
	if err != nil {
		return reservoirErrorf(opSet+field, err)
	}
	*dst = d

	return nil
}

// checkVec runs NotNil → length → finite on a caller vector.
func checkVec(v []float64, n int) error {
	if err := matrix.ValidateVecLen(v, n); err != nil {
		return fmt.Errorf("len %d, want %d: %w", len(v), n, err)
	}

	return matrix.ValidateFiniteVec(v)
}

// denseCopy materializes any Matrix as an independent, finite *Dense.
func denseCopy(src matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateFinite(src); err != nil {
		return nil, err
	}
	if d, ok := src.(*matrix.Dense); ok {
		return d.CloneDense(), nil
	}
	out, err := matrix.NewDense(src.Rows(), src.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < src.Rows(); i++ {
		for j := 0; j < src.Cols(); j++ {
			if v, err = src.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
