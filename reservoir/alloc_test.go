// SPDX-License-Identifier: MIT
package reservoir_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Stepping reuses the scratch buffers.
func TestRunDoesNotAllocate(t *testing.T) {
	res := randomReservoir(t, 8, 4, 32, 3)
	allocs := testing.AllocsPerRun(100, func() { res.Run() })
	require.Zero(t, allocs)

	x := res.Input()
	stages := [4][]float64{x, x, x, x}
	require.NoError(t, res.Propagate(stages)) // allocates the RK4 scratch once
	allocs = testing.AllocsPerRun(100, func() { _ = res.Propagate(stages) })
	require.Zero(t, allocs)
}
