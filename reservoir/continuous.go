// SPDX-License-Identifier: MIT

package reservoir

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/reservoir/matrix"
)

// rkStages is the number of input samples one RK4 step consumes.
const rkStages = 4

// rk4Scratch holds the stage buffers of one RK4 step (all len n).
type rk4Scratch struct {
	k1, k2, k3, k4 []float64
	probe          []float64 // r + c·k_i fed to the next stage
}

func newRK4Scratch(n int) *rk4Scratch {
	return &rk4Scratch{
		k1:    make([]float64, n),
		k2:    make([]float64, n),
		k3:    make([]float64, n),
		k4:    make([]float64, n),
		probe: make([]float64, n),
	}
}

// field writes dt·γ·(−r + tanh(A·r + B·x + d)) into dst.
func (res *Reservoir) field(dst, r, x []float64) {
	res.preactivate(dst, r, x)
	floats.Sub(dst, r)
	floats.Scale(res.opts.timescale*res.opts.gamma, dst)
}

// Propagate advances the continuous-time dynamics
//
//	dr/dt = γ·(−r + tanh(A·r + B·x + d))
//
// by one classic RK4 step of size GlobalTimescale. x[s] is the input sampled
// at stage s (start, two midpoints, end); each must have length k.
//
// Propagate moves the state but leaves the convergence flag and step count
// alone: those describe the discrete map driven by Run.
//
// Errors: ErrNilMatrix / ErrDimensionMismatch / ErrNaNInf for a bad stage
// input, ErrNaNInf when the step overflows. The state is untouched on failure.
func (res *Reservoir) Propagate(x [rkStages][]float64) error {
	for s := range x {
		if err := checkVec(x[s], res.k); err != nil {
			return reservoirErrorf(opPropagate, fmt.Errorf("stage %d: %w", s, err))
		}
	}
	// next is free between Runs; it holds the pre-step state for rollback.
	copy(res.next, res.state)
	res.propagate(x)
	if err := matrix.ValidateFiniteVec(res.state); err != nil {
		copy(res.state, res.next)
		return reservoirErrorf(opPropagate, err)
	}

	return nil
}

// propagate is Propagate without validation.
func (res *Reservoir) propagate(x [rkStages][]float64) {
	if res.rk == nil {
		res.rk = newRK4Scratch(res.n)
	}
	rk := res.rk
	r := res.state

	res.field(rk.k1, r, x[0])

	floats.AddScaledTo(rk.probe, r, 0.5, rk.k1)
	res.field(rk.k2, rk.probe, x[1])

	floats.AddScaledTo(rk.probe, r, 0.5, rk.k2)
	res.field(rk.k3, rk.probe, x[2])

	floats.AddScaledTo(rk.probe, r, 1, rk.k3)
	res.field(rk.k4, rk.probe, x[3])

	// r += (k1 + 2·k2 + 2·k3 + k4) / 6
	floats.AddScaled(r, 1.0/6, rk.k1)
	floats.AddScaled(r, 2.0/6, rk.k2)
	floats.AddScaled(r, 2.0/6, rk.k3)
	floats.AddScaled(r, 1.0/6, rk.k4)
}

// Simulate integrates the continuous dynamics over a sequence of inputs and
// returns the readout trajectory W·S (m×T, T = len(inputs)).
//
// Column 0 of the state matrix S is the current state; for t = 1..T−1 the
// reservoir takes one Propagate step with inputs[t−1] held constant across
// the four RK4 stages and records the new state in column t. The last input
// therefore only matters through its length check. The reservoir is left at
// the final state.
//
// Errors (the state is untouched on failure):
//   - ErrNilMatrix / ErrDimensionMismatch / ErrNaNInf for a bad input row.
//   - ErrNaNInf when the integration diverges (γ·dt too large).
func (res *Reservoir) Simulate(inputs [][]float64) (*matrix.Dense, error) {
	for t, x := range inputs {
		if err := checkVec(x, res.k); err != nil {
			return nil, reservoirErrorf(opSimulate, fmt.Errorf("input %d: %w", t, err))
		}
	}

	T := len(inputs)
	S, err := matrix.NewZeros(res.n, T)
	if err != nil {
		return nil, reservoirErrorf(opSimulate, err)
	}
	start := cloneVec(res.state)
	for t := 0; t < T; t++ {
		if t > 0 {
			x := inputs[t-1]
			res.propagate([rkStages][]float64{x, x, x, x})
		}
		for i, v := range res.state {
			if err = S.Set(i, t, v); err != nil {
				copy(res.state, start)
				return nil, reservoirErrorf(opSimulate, fmt.Errorf("t=%d: %w", t, err))
			}
		}
	}

	out, err := matrix.Mul(res.readoutWeights, S)
	if err != nil {
		return nil, reservoirErrorf(opSimulate, err)
	}

	return out, nil
}
