// SPDX-License-Identifier: MIT

package reservoir

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/reservoir/matrix"
)

// Reservoir is a discrete-time recurrent state machine
// r ← tanh(A·r + B·x + d) with linear readout W·r.
//
// Dimensions (k inputs, m outputs, n latents) are fixed at construction.
// The zero value is not usable; build one with New, NewFixedPoint or NewRandom.
type Reservoir struct {
	k, m, n int // input, output and latent dimensions

	state []float64 // r, len n
	input []float64 // x, len k
	bias  []float64 // d, len n

	// r* and x* the bias was derived from; zero unless built by NewFixedPoint.
	fixedPoint []float64 // len n
	fixedInput []float64 // len k

	recurrent      *matrix.Dense // A, n×n
	inputWeights   *matrix.Dense // B, n×k
	readoutWeights *matrix.Dense // W, m×n

	// next receives the candidate state of a step; it is swapped with state
	// afterwards so Run never allocates and never reads a half-written state.
	next []float64

	converged bool
	lastDelta float64 // +Inf until the first Run
	steps     int

	rk   *rk4Scratch // lazily allocated by Propagate
	opts Options
}

// New allocates a zero-filled reservoir with k inputs, m outputs and n latents.
//
// Every vector and matrix starts at zero and Converged() is false. Zero
// dimensions are legal and produce empty buffers. The only failure is a
// negative dimension (ErrInvalidDimensions).
//
// Complexity: O(n² + nk + mn) time and memory.
func New(k, m, n int, opts ...Option) (*Reservoir, error) {
	if k < 0 || m < 0 || n < 0 {
		return nil, reservoirErrorf(opNew, ErrInvalidDimensions)
	}
	A, err := matrix.NewZeros(n, n)
	if err != nil {
		return nil, reservoirErrorf(opNew, err)
	}
	B, err := matrix.NewZeros(n, k)
	if err != nil {
		return nil, reservoirErrorf(opNew, err)
	}
	W, err := matrix.NewZeros(m, n)
	if err != nil {
		return nil, reservoirErrorf(opNew, err)
	}

	return &Reservoir{
		k:              k,
		m:              m,
		n:              n,
		state:          make([]float64, n),
		input:          make([]float64, k),
		bias:           make([]float64, n),
		fixedPoint:     make([]float64, n),
		fixedInput:     make([]float64, k),
		recurrent:      A,
		inputWeights:   B,
		readoutWeights: W,
		next:           make([]float64, n),
		lastDelta:      math.Inf(1),
		opts:           gatherOptions(opts...),
	}, nil
}

// preactivate writes tanh(A·r + B·x + d) into dst.
// Shapes are fixed at construction, so the kernels cannot fail here; r and x
// are validated by every public entry point that accepts them.
func (res *Reservoir) preactivate(dst, r, x []float64) {
	_ = matrix.MatVecInto(dst, res.recurrent, r)
	_ = matrix.MatVecAddInto(dst, res.inputWeights, x)
	floats.Add(dst, res.bias)
	for i, v := range dst {
		dst[i] = math.Tanh(v)
	}
}

// Run advances the reservoir by one discrete step and returns the L∞ delta
// max_i |r_i(t+1) − r_i(t)|.
//
// The new state is computed entirely from the old one before it is
// installed. If the delta is strictly below the tolerance the reservoir
// becomes converged; Run never clears that flag. A non-finite state yields
// a NaN delta, which never converges.
//
// Complexity: O(n² + nk), no allocations.
func (res *Reservoir) Run() float64 {
	res.preactivate(res.next, res.state, res.input)

	delta := floats.Distance(res.next, res.state, math.Inf(1))
	// Distance skips NaN components.
	if matrix.ValidateFiniteVec(res.state) != nil || matrix.ValidateFiniteVec(res.next) != nil {
		delta = math.NaN()
	}
	if delta < res.opts.tolerance {
		res.converged = true
	}
	res.state, res.next = res.next, res.state
	res.lastDelta = delta
	res.steps++

	return delta
}

// Readout returns W·r as a new slice of length m. It does not mutate the reservoir.
// Complexity: O(mn).
func (res *Reservoir) Readout() []float64 {
	out, _ := matrix.MatVec(res.readoutWeights, res.state) // shapes fixed at construction

	return out
}

// Converged reports whether a step delta has ever dropped below the tolerance.
func (res *Reservoir) Converged() bool { return res.converged }

// Dims returns the (k, m, n) triple fixed at construction.
func (res *Reservoir) Dims() (k, m, n int) { return res.k, res.m, res.n }

// Steps returns how many times Run has been called.
func (res *Reservoir) Steps() int { return res.steps }

// LastDelta returns the L∞ delta of the most recent Run, or +Inf before the first one.
func (res *Reservoir) LastDelta() float64 { return res.lastDelta }

// Tolerance returns the convergence threshold in effect.
func (res *Reservoir) Tolerance() float64 { return res.opts.tolerance }

// Options returns the resolved configuration.
func (res *Reservoir) Options() Options { return res.opts }

// State returns a copy of r.
func (res *Reservoir) State() []float64 { return cloneVec(res.state) }

// Input returns a copy of x.
func (res *Reservoir) Input() []float64 { return cloneVec(res.input) }

// Bias returns a copy of d.
func (res *Reservoir) Bias() []float64 { return cloneVec(res.bias) }

// FixedPoint returns a copy of the r* recorded by NewFixedPoint (zeros otherwise).
// It is not updated by the setters.
func (res *Reservoir) FixedPoint() []float64 { return cloneVec(res.fixedPoint) }

// FixedPointInput returns a copy of the x* recorded by NewFixedPoint (zeros otherwise).
func (res *Reservoir) FixedPointInput() []float64 { return cloneVec(res.fixedInput) }

// Recurrent returns a copy of A.
func (res *Reservoir) Recurrent() *matrix.Dense { return res.recurrent.CloneDense() }

// InputWeights returns a copy of B.
func (res *Reservoir) InputWeights() *matrix.Dense { return res.inputWeights.CloneDense() }

// ReadoutWeights returns a copy of W.
func (res *Reservoir) ReadoutWeights() *matrix.Dense { return res.readoutWeights.CloneDense() }

// Clone returns an independent deep copy, including the convergence flag and step count.
func (res *Reservoir) Clone() *Reservoir {
	return &Reservoir{
		k:              res.k,
		m:              res.m,
		n:              res.n,
		state:          cloneVec(res.state),
		input:          cloneVec(res.input),
		bias:           cloneVec(res.bias),
		fixedPoint:     cloneVec(res.fixedPoint),
		fixedInput:     cloneVec(res.fixedInput),
		recurrent:      res.recurrent.CloneDense(),
		inputWeights:   res.inputWeights.CloneDense(),
		readoutWeights: res.readoutWeights.CloneDense(),
		next:           make([]float64, res.n),
		converged:      res.converged,
		lastDelta:      res.lastDelta,
		steps:          res.steps,
		opts:           res.opts,
	}
}

// String renders every field for debugging. The layout carries no contract.
func (res *Reservoir) String() string {
	return res.Format(-1)
}

const dumpRule = "--------------------\n"

// Format renders every field with values rounded to prec decimals
// (prec < 0 prints the shortest exact representation).
func (res *Reservoir) Format(prec int) string {
	var b strings.Builder
	b.WriteString(dumpRule)
	b.WriteString("Reservoir Parameters\n")
	b.WriteString("k=" + strconv.Itoa(res.k) + " m=" + strconv.Itoa(res.m) + " n=" + strconv.Itoa(res.n) + "\n")
	b.WriteString("A:\n" + res.recurrent.Format(prec))
	b.WriteString("B:\n" + res.inputWeights.Format(prec))
	b.WriteString("W:\n" + res.readoutWeights.Format(prec))
	b.WriteString("x: " + formatVec(res.input, prec) + "\n")
	b.WriteString("d: " + formatVec(res.bias, prec) + "\n")
	b.WriteString("r: " + formatVec(res.state, prec) + "\n")
	b.WriteString("r*: " + formatVec(res.fixedPoint, prec) + "\n")
	b.WriteString("x*: " + formatVec(res.fixedInput, prec) + "\n")
	b.WriteString("converged: " + strconv.FormatBool(res.converged) +
		" steps: " + strconv.Itoa(res.steps) +
		" delta: " + strconv.FormatFloat(res.lastDelta, 'g', -1, 64) + "\n")
	b.WriteString("global_timescale: " + strconv.FormatFloat(res.opts.timescale, 'g', -1, 64) + "\n")
	b.WriteString("1/gamma: " + strconv.FormatFloat(1/res.opts.gamma, 'g', -1, 64) + "\n")
	b.WriteString(dumpRule)

	return b.String()
}

func formatVec(v []float64, prec int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'f', prec, 64)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func cloneVec(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
