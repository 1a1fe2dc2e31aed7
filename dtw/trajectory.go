// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/reservoir/matrix"
)

// Trajectories aligns two multi-channel trajectories stored column-wise:
// a is c×n, b is c×m, and column t holds the c channels at time t (the
// layout Reservoir.Simulate returns). The local cost of pairing column i of
// a with column j of b is their Lp distance, p = opts.Norm.
//
// Errors:
//   - ErrBadInput for nil trajectories or an invalid Norm.
//   - matrix.ErrDimensionMismatch when the channel counts differ.
//   - ErrEmptyInput when either trajectory has no columns.
//   - everything DTW reports for bad options.
func Trajectories(a, b matrix.Matrix, opts *Options) (float64, []Coord, error) {
	if matrix.ValidateNotNil(a) != nil || matrix.ValidateNotNil(b) != nil {
		return 0, nil, fmt.Errorf("nil trajectory: %w", ErrBadInput)
	}
	if a.Rows() != b.Rows() {
		return 0, nil, fmt.Errorf("channels %d vs %d: %w", a.Rows(), b.Rows(), matrix.ErrDimensionMismatch)
	}
	if a.Cols() == 0 || b.Cols() == 0 {
		return 0, nil, ErrEmptyInput
	}
	o, err := resolve(opts)
	if err != nil {
		return 0, nil, err
	}
	if math.IsNaN(o.Norm) || o.Norm < 1 {
		return 0, nil, fmt.Errorf("norm %g: %w", o.Norm, ErrBadInput)
	}

	ca, err := columns(a)
	if err != nil {
		return 0, nil, err
	}
	cb, err := columns(b)
	if err != nil {
		return 0, nil, err
	}

	return align(len(ca), len(cb), func(i, j int) float64 {
		return floats.Distance(ca[i], cb[j], o.Norm)
	}, o)
}

// columns copies the columns of m into contiguous slices.
func columns(m matrix.Matrix) ([][]float64, error) {
	rows, cols := m.Rows(), m.Cols()
	buf := make([]float64, rows*cols)
	out := make([][]float64, cols)
	for j := range out {
		out[j] = buf[j*rows : (j+1)*rows : (j+1)*rows]
	}
	if d, ok := m.(*matrix.Dense); ok {
		d.Do(func(i, j int, v float64) bool {
			out[j][i] = v
			return true
		})

		return out, nil
	}
	var err error
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if out[j][i], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
