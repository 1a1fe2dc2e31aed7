// SPDX-License-Identifier: MIT

// Functional configuration for a Reservoir. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper that resolves setters against the defaults.

package reservoir

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the L∞ step delta below which a reservoir is converged.
	DefaultTolerance = 1e-5

	// DefaultGlobalTimescale is the RK4 step size used by Propagate/Simulate.
	DefaultGlobalTimescale = 0.001

	// DefaultGamma is the rate constant γ of the continuous-time vector field.
	DefaultGamma = 100.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "reservoir: WithTolerance: tolerance must be finite and > 0"
	panicTimescaleInvalid = "reservoir: WithGlobalTimescale: timescale must be finite and > 0"
	panicGammaInvalid     = "reservoir: WithGamma: gamma must be finite and > 0"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tolerance float64 // > 0; DefaultTolerance
	timescale float64 // > 0; DefaultGlobalTimescale
	gamma     float64 // > 0; DefaultGamma
}

// Tolerance returns the convergence threshold.
func (o Options) Tolerance() float64 { return o.tolerance }

// GlobalTimescale returns the RK4 step size.
func (o Options) GlobalTimescale() float64 { return o.timescale }

// Gamma returns the continuous-time rate constant.
func (o Options) Gamma() float64 { return o.gamma }

// positiveFinite reports v > 0 && v < +Inf (NaN fails both comparisons).
func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// WithTolerance sets the convergence threshold on the L∞ step delta.
// Panics when tol is NaN, ±Inf or ≤ 0.
func WithTolerance(tol float64) Option {
	if !positiveFinite(tol) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithGlobalTimescale sets the RK4 step size dt used by Propagate.
// Panics when dt is NaN, ±Inf or ≤ 0.
func WithGlobalTimescale(dt float64) Option {
	if !positiveFinite(dt) {
		panic(panicTimescaleInvalid)
	}

	return func(o *Options) { o.timescale = dt }
}

// WithGamma sets the rate constant γ in dr/dt = γ·(−r + tanh(A·r + B·x + d)).
// γ·dt should stay well below 2.8 for RK4 to remain stable.
// Panics when gamma is NaN, ±Inf or ≤ 0.
func WithGamma(gamma float64) Option {
	if !positiveFinite(gamma) {
		panic(panicGammaInvalid)
	}

	return func(o *Options) { o.gamma = gamma }
}

// NewOptions resolves option setters against the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided setters on top of the defaults in order.
func gatherOptions(user ...Option) Options {
	o := Options{
		tolerance: DefaultTolerance,
		timescale: DefaultGlobalTimescale,
		gamma:     DefaultGamma,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
