// Package reservoir is a small, deterministic reservoir-computing core:
// a recurrent state machine that iterates
//
//	r ← tanh(A·r + B·x + d)
//
// until its state stops moving, and exposes the settled state through a
// linear readout y = W·r.
//
// 🚀 What is inside?
//
//	• Discrete map: Run, Settle (context-aware), convergence tracking
//	• Readout: W·r into a fresh vector of length m
//	• Fixed-point design: NewFixedPoint derives d so a chosen state is stationary
//	• Base reservoirs: NewRandom, seeded and reproducible
//	• Continuous time: RK4 integration of dr/dt = γ(−r + tanh(A·r + B·x + d)),
//	  Propagate and Simulate
//	• Dense kernels: MatVec, MatVecInto, MatVecAddInto, Mul with NaN/Inf policy
//
// ✨ Why?
//
//   - Zero allocations per step once built
//   - Sentinel errors you can match with errors.Is across packages
//   - Deterministic: same inputs, same bits
//
// Layout:
//
//	matrix/        — Dense storage, validators and the linear-algebra kernels
//	reservoir/     — the Reservoir type, options, fixed points, RK4
//	cmd/reservoir/ — command-line driver (settle, dump, simulate, profile)
//
// Quick example:
//
//	res, _ := reservoir.New(5, 3, 4) // k inputs, m outputs, n latents
//	res.Run()
//	fmt.Println(res.Converged(), res.Readout()) // true [0 0 0]
//
//	go get github.com/katalvlaran/reservoir/reservoir
package reservoir
