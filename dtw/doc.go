// SPDX-License-Identifier: MIT

// Package dtw computes Dynamic Time Warping distances between time series,
// scalar or multi-channel, with an optional alignment path.
//
// 🚀 What is DTW?
//
//	DTW finds the cheapest monotone pairing of two sequences, letting one
//	run faster or slower than the other. Here it is used to compare readout
//	trajectories of a reservoir: two runs that trace the same shape at a
//	different pace score close to zero, while a plain sample-by-sample
//	difference would not.
//
// ✨ Key features:
//   - scalar series (DTW) and column-wise trajectories (Trajectories)
//   - Lp sample distance for trajectories (Options.Norm)
//   - Sakoe–Chiba window (|i−j| ≤ w)
//   - slope penalty for insertions/deletions
//   - three storage modes with identical distances: FullMatrix, TwoRows, NoMemory
//   - alignment path on demand (ReturnPath, FullMatrix only)
//
// ⚙️ Usage:
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 10
//	dist, _, err := dtw.Trajectories(driven, baseline, &opts)
//
// Performance:
//
//   - Time:   O(n·m·c) for c channels
//   - Memory: O(n·m) (FullMatrix) or O(m) (TwoRows, NoMemory), plus a copy
//     of both trajectories
package dtw
