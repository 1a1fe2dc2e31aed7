// SPDX-License-Identifier: MIT
package reservoir_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reservoir/matrix"
	"github.com/katalvlaran/reservoir/reservoir"
)

// randVec returns n values in [-1,1) drawn from rng.
func randVec(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*2 - 1
	}

	return v
}

// randDense returns an r×c matrix with values in [-1,1) drawn from rng.
func randDense(t testing.TB, rng *rand.Rand, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, randVec(rng, r*c))
	require.NoError(t, err)

	return m
}

// randomReservoir fills every parameter and the initial state with seeded values in [-1,1).
func randomReservoir(t testing.TB, k, m, n int, seed int64, opts ...reservoir.Option) *reservoir.Reservoir {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	res, err := reservoir.New(k, m, n, opts...)
	require.NoError(t, err)

	require.NoError(t, res.SetRecurrent(randDense(t, rng, n, n)))
	require.NoError(t, res.SetInputWeights(randDense(t, rng, n, k)))
	require.NoError(t, res.SetReadoutWeights(randDense(t, rng, m, n)))
	require.NoError(t, res.SetInput(randVec(rng, k)))
	require.NoError(t, res.SetBias(randVec(rng, n)))
	require.NoError(t, res.SetState(randVec(rng, n)))

	return res
}

// oscillator returns a 1-latent reservoir that flips sign every step and never converges.
func oscillator(t testing.TB) *reservoir.Reservoir {
	t.Helper()
	res, err := reservoir.New(0, 1, 1)
	require.NoError(t, err)
	A, err := matrix.NewDenseFrom(1, 1, []float64{-5})
	require.NoError(t, err)
	require.NoError(t, res.SetRecurrent(A))
	require.NoError(t, res.SetState([]float64{0.5}))

	return res
}

func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
