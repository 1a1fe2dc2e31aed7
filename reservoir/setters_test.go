// SPDX-License-Identifier: MIT
package reservoir_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reservoir/matrix"
	"github.com/katalvlaran/reservoir/reservoir"
)

// hide wraps *Dense so only the Matrix interface is visible.
type hide struct{ matrix.Matrix }

// constMatrix reports v everywhere; it bypasses the Dense NaN/Inf policy.
type constMatrix struct {
	r, c int
	v    float64
}

func (m constMatrix) Rows() int { return m.r }
func (m constMatrix) Cols() int { return m.c }
func (m constMatrix) At(int, int) (float64, error) { return m.v, nil }
func (m constMatrix) Set(int, int, float64) error { return nil }
func (m constMatrix) Clone() matrix.Matrix { return m }

func TestSetVectors(t *testing.T) {
	res, err := reservoir.New(2, 1, 3)
	require.NoError(t, err)

	setters := map[string]struct {
		set  func([]float64) error
		get  func() []float64
		size int
	}{
		"state": {res.SetState, res.State, 3},
		"input": {res.SetInput, res.Input, 2},
		"bias":  {res.SetBias, res.Bias, 3},
	}
	for name, tc := range setters {
		t.Run(name, func(t *testing.T) {
			want := make([]float64, tc.size)
			for i := range want {
				want[i] = 0.1 * float64(i+1)
			}
			require.NoError(t, tc.set(want))
			require.Equal(t, want, tc.get())

			// the reservoir holds a copy
			want[0] = 42
			require.NotEqual(t, want, tc.get())

			// so do the getters
			got := tc.get()
			got[0] = -42
			require.NotEqual(t, got, tc.get())

			before := tc.get()
			require.ErrorIs(t, tc.set(make([]float64, tc.size+1)), reservoir.ErrDimensionMismatch)
			require.ErrorIs(t, tc.set(nil), reservoir.ErrNilMatrix)
			bad := make([]float64, tc.size)
			bad[tc.size-1] = math.NaN()
			require.ErrorIs(t, tc.set(bad), reservoir.ErrNaNInf)
			bad[tc.size-1] = math.Inf(-1)
			require.ErrorIs(t, tc.set(bad), reservoir.ErrNaNInf)
			require.Equal(t, before, tc.get(), "rejected call must not mutate")
		})
	}
}

func TestSetMatrices(t *testing.T) {
	res, err := reservoir.New(2, 3, 4)
	require.NoError(t, err)

	setters := map[string]struct {
		set        func(matrix.Matrix) error
		get        func() *matrix.Dense
		rows, cols int
	}{
		"recurrent": {res.SetRecurrent, res.Recurrent, 4, 4},
		"input":     {res.SetInputWeights, res.InputWeights, 4, 2},
		"readout":   {res.SetReadoutWeights, res.ReadoutWeights, 3, 4},
	}
	for name, tc := range setters {
		t.Run(name, func(t *testing.T) {
			src, err := matrix.NewDense(tc.rows, tc.cols)
			require.NoError(t, err)
			require.NoError(t, src.Set(tc.rows-1, tc.cols-1, 0.25))

			require.NoError(t, tc.set(src))
			v, err := tc.get().At(tc.rows-1, tc.cols-1)
			require.NoError(t, err)
			require.Equal(t, 0.25, v)

			// later writes to src do not leak in
			require.NoError(t, src.Set(0, 0, 9))
			v, err = tc.get().At(0, 0)
			require.NoError(t, err)
			require.Equal(t, 0.0, v)

			// interface fallback copies element by element
			require.NoError(t, tc.set(hide{src}))
			v, err = tc.get().At(0, 0)
			require.NoError(t, err)
			require.Equal(t, 9.0, v)

			wrong, err := matrix.NewDense(tc.rows+1, tc.cols)
			require.NoError(t, err)
			require.ErrorIs(t, tc.set(wrong), reservoir.ErrDimensionMismatch)
			require.ErrorIs(t, tc.set(nil), reservoir.ErrNilMatrix)
			var typedNil *matrix.Dense
			require.ErrorIs(t, tc.set(typedNil), reservoir.ErrNilMatrix)

			require.ErrorIs(t, tc.set(constMatrix{tc.rows, tc.cols, math.Inf(1)}), reservoir.ErrNaNInf)

			v, err = tc.get().At(0, 0)
			require.NoError(t, err)
			require.Equal(t, 9.0, v, "rejected call must not mutate")
		})
	}
}

func TestSettersKeepConvergence(t *testing.T) {
	res, err := reservoir.New(1, 1, 1)
	require.NoError(t, err)
	res.Run()
	require.True(t, res.Converged())

	require.NoError(t, res.SetState([]float64{0.7}))
	require.NoError(t, res.SetBias([]float64{0.3}))
	A, err := matrix.NewIdentity(1)
	require.NoError(t, err)
	require.NoError(t, res.SetRecurrent(A))
	require.True(t, res.Converged())
}

func TestSetEmptyVectors(t *testing.T) {
	res, err := reservoir.New(0, 0, 0)
	require.NoError(t, err)
	require.NoError(t, res.SetState([]float64{}))
	require.NoError(t, res.SetInput([]float64{}))
	require.ErrorIs(t, res.SetState(nil), reservoir.ErrNilMatrix)
}
