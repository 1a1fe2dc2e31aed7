// SPDX-License-Identifier: MIT

// Package reservoir simulates a fixed-topology recurrent reservoir:
//
//	r(t+1) = tanh(A·r(t) + B·x + d)
//	O      = W·r
//
// where r is the latent state (n), x the exogenous input (k), d the bias (n),
// A the recurrent matrix (n×n), B the input matrix (n×k) and W the readout
// matrix (m×n).
//
// 🚀 Lifecycle:
//
//	res, err := reservoir.New(5, 3, 4) // k=5 inputs, m=3 outputs, n=4 latents
//	if err != nil {
//		// only negative dimensions fail
//	}
//	for !res.Converged() {
//		res.Run() // one discrete step; returns the L∞ state delta
//	}
//	out := res.Readout() // len(out) == 3
//
// Convergence is the absorbing condition max_i |r_i(t+1) − r_i(t)| < tolerance
// (DefaultTolerance = 1e-5). Run keeps updating the state after convergence;
// only the flag freezes. Settle wraps the loop with a step cap and a context.
//
// ✨ Beyond the discrete map:
//   - NewFixedPoint derives d so that a chosen r* is a fixed point for input x*;
//     the state starts at zero and relaxes towards r*.
//   - NewRandom builds the seeded "base RNN" (A=0, small random B, random r*).
//   - Propagate / Simulate integrate the continuous-time dynamics
//     dr/dt = γ·(−r + tanh(A·r + B·x + d)) with classic RK4 and read the
//     trajectory out through W. A diverging step reports ErrNaNInf and
//     leaves the state where it was.
//   - Zeros / HighLow build input sequences for Simulate; HighLow visits
//     every high/low combination of the input channels.
//
// A Reservoir owns every buffer it holds (setters and getters copy) and is
// not safe for concurrent mutation; independent instances share nothing.
package reservoir
