// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"
	"math"
)

// DTW computes the Dynamic Time Warping distance between scalar series a and b.
//
// Recurrence (1-based, D[0][0] = 0, D[i][0] = D[0][j] = +Inf):
//
//	D[i][j] = |a[i-1] − b[j-1]| + min(D[i-1][j-1], D[i-1][j] + p, D[i][j-1] + p)
//
// with p = SlopePenalty. Cells outside the window are +Inf, so a band too
// narrow for the length difference yields distance +Inf (not an error).
// A nil opts means DefaultOptions().
//
// Errors: ErrEmptyInput, ErrBadInput, ErrPathNeedsMatrix.
//
// Complexity: O(n·m) time; memory per MemoryMode.
func DTW(a, b []float64, opts *Options) (float64, []Coord, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, nil, ErrEmptyInput
	}
	o, err := resolve(opts)
	if err != nil {
		return 0, nil, err
	}

	return align(len(a), len(b), func(i, j int) float64 {
		return math.Abs(a[i] - b[j])
	}, o)
}

// resolve applies defaults and validates option values.
func resolve(opts *Options) (Options, error) {
	if opts == nil {
		return DefaultOptions(), nil
	}
	o := *opts
	switch {
	case o.Window < -1:
		return o, fmt.Errorf("window %d: %w", o.Window, ErrBadInput)
	case math.IsNaN(o.SlopePenalty) || math.IsInf(o.SlopePenalty, 0) || o.SlopePenalty < 0:
		return o, fmt.Errorf("slope penalty %g: %w", o.SlopePenalty, ErrBadInput)
	case o.MemoryMode < FullMatrix || o.MemoryMode > NoMemory:
		return o, fmt.Errorf("memory mode %d: %w", o.MemoryMode, ErrBadInput)
	case o.ReturnPath && o.MemoryMode != FullMatrix:
		return o, ErrPathNeedsMatrix
	}

	return o, nil
}

// outside reports whether cell (i, j) (1-based) falls outside the band.
func outside(i, j, window int) bool {
	return window >= 0 && abs(i-j) > window
}

// align runs the DP over an n×m cost grid. cost is 0-based.
func align(n, m int, cost func(i, j int) float64, o Options) (float64, []Coord, error) {
	switch o.MemoryMode {
	case TwoRows:
		return alignTwoRows(n, m, cost, o), nil, nil
	case NoMemory:
		return alignOneRow(n, m, cost, o), nil, nil
	}

	inf := math.Inf(1)
	w := m + 1
	dp := make([]float64, (n+1)*w) // row-major, like Dense
	for j := 1; j <= m; j++ {
		dp[j] = inf
	}
	for i := 1; i <= n; i++ {
		dp[i*w] = inf
		for j := 1; j <= m; j++ {
			if outside(i, j, o.Window) {
				dp[i*w+j] = inf
				continue
			}
			dp[i*w+j] = cost(i-1, j-1) + min3(
				dp[(i-1)*w+j-1],
				dp[(i-1)*w+j]+o.SlopePenalty,
				dp[i*w+j-1]+o.SlopePenalty,
			)
		}
	}
	dist := dp[n*w+m]
	if !o.ReturnPath || math.IsInf(dist, 1) {
		return dist, nil, nil
	}

	// Backtrack from (n, m); ties prefer the diagonal, then insertion.
	path := make([]Coord, 0, n+m)
	i, j := n, m
	for {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		diag := dp[(i-1)*w+j-1]
		up := dp[(i-1)*w+j] + o.SlopePenalty
		left := dp[i*w+j-1] + o.SlopePenalty
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return dist, path, nil
}

func alignTwoRows(n, m int, cost func(i, j int) float64, o Options) float64 {
	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}
	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if outside(i, j, o.Window) {
				curr[j] = inf
				continue
			}
			curr[j] = cost(i-1, j-1) + min3(prev[j-1], prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty)
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

func alignOneRow(n, m int, cost func(i, j int) float64, o Options) float64 {
	inf := math.Inf(1)
	row := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		row[j] = inf
	}
	var diag, up float64
	for i := 1; i <= n; i++ {
		diag = row[0] // D[i-1][0]
		row[0] = inf
		for j := 1; j <= m; j++ {
			up = row[j] // D[i-1][j]
			if outside(i, j, o.Window) {
				row[j] = inf
			} else {
				row[j] = cost(i-1, j-1) + min3(diag, up+o.SlopePenalty, row[j-1]+o.SlopePenalty)
			}
			diag = up
		}
	}

	return row[m]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// min3 returns the smallest of a, b, c.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
