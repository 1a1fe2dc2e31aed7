// SPDX-License-Identifier: MIT

package dtw

import "errors"

// MemoryMode controls how DTW stores its DP table.
//
//   - FullMatrix — keep the whole (n+1)×(m+1) table. Required for ReturnPath.
//     Memory: O(n·m).
//   - TwoRows    — keep the previous and current row only. Memory: O(m).
//   - NoMemory   — keep a single row plus one carried diagonal cell. Memory: O(m).
//
// All three modes produce bit-identical distances.
type MemoryMode int

const (
	// FullMatrix stores all rows and supports path recovery.
	FullMatrix MemoryMode = iota

	// TwoRows keeps two rolling rows; distance only.
	TwoRows

	// NoMemory keeps one row updated in place; distance only.
	NoMemory
)

// Coord is one cell (I into a, J into b) of a warping path, 0-based.
type Coord struct {
	I, J int
}

// Options configures an alignment.
//
// Fields:
//   - Window       — Sakoe–Chiba band: only cells with |i−j| ≤ Window are
//     reachable. -1 disables the band; values below -1 are rejected.
//   - SlopePenalty — cost added to every insertion/deletion step (≥ 0).
//   - ReturnPath   — backtrack and return the optimal path (FullMatrix only).
//   - MemoryMode   — DP storage strategy.
//   - Norm         — p of the Lp distance between two samples of a
//     multi-channel trajectory (≥ 1, +Inf allowed). Ignored for scalar series.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
	Norm         float64
}

// Defaults used by DefaultOptions.
const (
	DefaultWindow = -1
	DefaultNorm   = 2.0
)

// DefaultOptions returns unlimited window, no penalty, no path, TwoRows and
// Euclidean sample distance.
func DefaultOptions() Options {
	return Options{
		Window:     DefaultWindow,
		MemoryMode: TwoRows,
		Norm:       DefaultNorm,
	}
}

var (
	// ErrEmptyInput indicates one or both sequences have no samples.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates an invalid option value or a nil trajectory.
	ErrBadInput = errors.New("dtw: invalid input or options")

	// ErrPathNeedsMatrix indicates ReturnPath without FullMatrix storage.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")
)
