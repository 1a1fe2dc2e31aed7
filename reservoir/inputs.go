// SPDX-License-Identifier: MIT

package reservoir

import (
	"fmt"
	"math"
)

// DefaultDriveLevel is the amplitude HighLow uses in the CLI driver.
const DefaultDriveLevel = 0.1

// Zeros returns T all-zero input samples of length k, ready for Simulate.
func Zeros(k, T int) ([][]float64, error) {
	if k < 0 || T < 0 {
		return nil, reservoirErrorf(opZeros, fmt.Errorf("k=%d T=%d: %w", k, T, ErrInvalidDimensions))
	}
	buf := make([]float64, k*T)
	out := make([][]float64, T)
	for t := range out {
		out[t] = buf[t*k : (t+1)*k : (t+1)*k]
	}

	return out, nil
}

// HighLow returns T input samples over k channels that visit every
// high/low combination of the channels in turn. Combination p sets channel
// c to +level when bit c of p is set and to −level otherwise.
//
// Each of the 2^k combinations is held for T / 2^k consecutive samples; the
// remainder cycles through the combinations one sample at a time. With two
// channels and T = 8 the first channel reads − − + + − − + + and the second
// − − − − + + + +.
//
// Errors: ErrInvalidDimensions for negative k or T, ErrNaNInf for a
// non-finite level.
func HighLow(k, T int, level float64) ([][]float64, error) {
	if k < 0 || T < 0 {
		return nil, reservoirErrorf(opHighLow, fmt.Errorf("k=%d T=%d: %w", k, T, ErrInvalidDimensions))
	}
	if math.IsNaN(level) || math.IsInf(level, 0) {
		return nil, reservoirErrorf(opHighLow, fmt.Errorf("level %g: %w", level, ErrNaNInf))
	}

	combos := math.MaxInt // 2^k, saturated
	if k < 62 {
		combos = 1 << k
	}
	hold := T / combos
	held := hold * combos

	out, _ := Zeros(k, T)
	var p int
	for t, x := range out {
		if t < held {
			p = t / hold
		} else {
			p = (t - held) % combos
		}
		for c := range x {
			if c < 62 && p>>c&1 == 1 {
				x[c] = level
			} else {
				x[c] = -level
			}
		}
	}

	return out, nil
}
