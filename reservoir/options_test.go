// SPDX-License-Identifier: MIT
package reservoir_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reservoir/reservoir"
)

func TestOptionsDefaults(t *testing.T) {
	o := reservoir.NewOptions()
	require.Equal(t, reservoir.DefaultTolerance, o.Tolerance())
	require.Equal(t, reservoir.DefaultGlobalTimescale, o.GlobalTimescale())
	require.Equal(t, reservoir.DefaultGamma, o.Gamma())

	// γ·dt = 0.1 keeps the RK4 step well inside its stability region
	require.Equal(t, 0.001, reservoir.DefaultGlobalTimescale)
	require.Equal(t, 100.0, reservoir.DefaultGamma)
}

func TestOptionsLastWriterWins(t *testing.T) {
	o := reservoir.NewOptions(
		reservoir.WithTolerance(1e-3),
		nil, // ignored
		reservoir.WithTolerance(1e-8),
		reservoir.WithGamma(10),
	)
	require.Equal(t, 1e-8, o.Tolerance())
	require.Equal(t, 10.0, o.Gamma())
	require.Equal(t, reservoir.DefaultGlobalTimescale, o.GlobalTimescale())

	res, err := reservoir.New(1, 1, 1, reservoir.WithTolerance(0.25))
	require.NoError(t, err)
	require.Equal(t, 0.25, res.Tolerance())
	require.Equal(t, 0.25, res.Options().Tolerance())
}

func TestOptionsPanics(t *testing.T) {
	bad := []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, v := range bad {
		require.Panics(t, func() { reservoir.WithTolerance(v) }, "tolerance %v", v)
		require.Panics(t, func() { reservoir.WithGlobalTimescale(v) }, "timescale %v", v)
		require.Panics(t, func() { reservoir.WithGamma(v) }, "gamma %v", v)
	}
	require.NotPanics(t, func() { reservoir.WithTolerance(math.SmallestNonzeroFloat64) })
}
