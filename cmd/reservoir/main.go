// SPDX-License-Identifier: MIT

// Command reservoir builds a reservoir, settles it and prints the readout.
//
//	reservoir                      # New(5, 3, 4) → settle → [0 0 0]
//	reservoir -k 2 -m 1 -n 64 --random --seed 7 --dump
//	reservoir --random --probe --simulate 10
//	reservoir -k 2 --random --simulate 200 --drive highlow --compare
package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"gopkg.in/urfave/cli.v1"

	"github.com/katalvlaran/reservoir/dtw"
	"github.com/katalvlaran/reservoir/matrix"
	"github.com/katalvlaran/reservoir/reservoir"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("reservoir: ")

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "reservoir"
	app.Usage = "settle a tanh reservoir and print its linear readout"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "input, k",
			Value: 5,
			Usage: "input dimension `k`",
		},
		cli.IntFlag{
			Name:  "output, m",
			Value: 3,
			Usage: "output dimension `m`",
		},
		cli.IntFlag{
			Name:  "latent, n",
			Value: 4,
			Usage: "latent dimension `n`",
		},
		cli.IntFlag{
			Name:  "max-steps",
			Usage: "give up after `N` steps (0 = no cap)",
		},
		cli.Float64Flag{
			Name:  "tolerance",
			Value: reservoir.DefaultTolerance,
			Usage: "L-inf step delta below which the state counts as converged",
		},
		cli.Float64Flag{
			Name:  "timescale",
			Value: reservoir.DefaultGlobalTimescale,
			Usage: "RK4 step size used by --simulate",
		},
		cli.Float64Flag{
			Name:  "gamma",
			Value: reservoir.DefaultGamma,
			Usage: "rate constant of the continuous-time dynamics",
		},
		cli.BoolFlag{
			Name:  "random",
			Usage: "start from a seeded random base reservoir instead of zeros",
		},
		cli.Int64Flag{
			Name:  "seed",
			Value: 1,
			Usage: "random `seed` for --random",
		},
		cli.IntFlag{
			Name:  "simulate",
			Usage: "print the readout trajectory over `T` RK4 steps from the initial state",
		},
		cli.StringFlag{
			Name:  "drive",
			Value: "zeros",
			Usage: "input pattern for --simulate: zeros or highlow",
		},
		cli.Float64Flag{
			Name:  "level",
			Value: reservoir.DefaultDriveLevel,
			Usage: "amplitude of the highlow pattern",
		},
		cli.BoolFlag{
			Name:  "compare",
			Usage: "also print the DTW distance between the driven and the zero-input trajectory",
		},
		cli.BoolFlag{
			Name:  "probe",
			Usage: "read the first m latents directly (W = [I 0]) instead of the zero readout",
		},
		cli.BoolFlag{
			Name:  "dump",
			Usage: "print every reservoir field before and after settling",
		},
		cli.StringFlag{
			Name:  "profile",
			Usage: "write a `cpu` or `mem` profile to the working directory",
		},
	}
	app.Action = run

	return app
}

func run(c *cli.Context) error {
	switch c.String("profile") {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		return cli.NewExitError("unknown --profile "+c.String("profile")+" (want cpu or mem)", 2)
	}

	res, err := build(c)
	if err != nil {
		return cli.NewExitError(err.Error(), 2)
	}
	if c.Bool("dump") {
		fmt.Fprint(c.App.Writer, res)
	}

	start := res.Clone()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	steps, err := res.Settle(ctx, c.Int("max-steps"))
	if err != nil {
		return cli.NewExitError(errors.Wrapf(err, "after %d steps (delta %g)", steps, res.LastDelta()).Error(), 1)
	}
	log.Printf("converged in %d steps", steps)
	if c.Bool("dump") {
		fmt.Fprint(c.App.Writer, res)
	}
	fmt.Fprintln(c.App.Writer, res.Readout())

	if T := c.Int("simulate"); T > 0 {
		if err = simulate(c, start, T); err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
	}

	return nil
}

// simulate prints the readout trajectory under the chosen drive and,
// with --compare, its DTW distance to the undriven trajectory.
func simulate(c *cli.Context, res *reservoir.Reservoir, T int) error {
	k, _, _ := res.Dims()
	var (
		inputs [][]float64
		err    error
	)
	switch c.String("drive") {
	case "zeros":
		inputs, err = reservoir.Zeros(k, T)
	case "highlow":
		inputs, err = reservoir.HighLow(k, T, c.Float64("level"))
	default:
		return errors.Errorf("unknown --drive %q (want zeros or highlow)", c.String("drive"))
	}
	if err != nil {
		return errors.Wrap(err, "drive")
	}

	baseline := res.Clone()
	out, err := res.Simulate(inputs)
	if err != nil {
		return errors.Wrap(err, "simulate")
	}
	fmt.Fprint(c.App.Writer, out)
	if !c.Bool("compare") {
		return nil
	}

	if res.ReadoutWeights().IsZero() {
		log.Print("readout weights are zero, the distance is trivially 0 (try --probe)")
	}
	zeros, _ := reservoir.Zeros(k, T)
	ref, err := baseline.Simulate(zeros)
	if err != nil {
		return errors.Wrap(err, "simulate baseline")
	}
	dist, _, err := dtw.Trajectories(out, ref, nil)
	if err != nil {
		return errors.Wrap(err, "compare")
	}
	fmt.Fprintf(c.App.Writer, "dtw: %g\n", dist)

	return nil
}

// build resolves the flags into a reservoir.
func build(c *cli.Context) (*reservoir.Reservoir, error) {
	k, m, n := c.Int("input"), c.Int("output"), c.Int("latent")
	opts, err := options(c)
	if err != nil {
		return nil, err
	}

	var res *reservoir.Reservoir
	if c.Bool("random") {
		res, err = reservoir.NewRandom(k, m, n, c.Int64("seed"), opts...)
	} else {
		res, err = reservoir.New(k, m, n, opts...)
	}
	if err != nil {
		return nil, errors.Wrap(err, "build")
	}
	if c.Bool("probe") {
		W, err := probeWeights(m, n)
		if err != nil {
			return nil, errors.Wrap(err, "probe")
		}
		if err = res.SetReadoutWeights(W); err != nil {
			return nil, errors.Wrap(err, "probe")
		}
	}

	return res, nil
}

// probeWeights returns the m×n readout [I 0]: the first m rows of I_n,
// padded with zero rows when m > n.
func probeWeights(m, n int) (*matrix.Dense, error) {
	I, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, err
	}
	vals := make([]float64, 0, m*n)
	for i := 0; i < m; i++ {
		if i >= n {
			vals = append(vals, make([]float64, n)...)
			continue
		}
		row, err := I.RawRow(i)
		if err != nil {
			return nil, err
		}
		vals = append(vals, row...)
	}

	return matrix.NewDenseFrom(m, n, vals)
}

// options validates the numeric flags before handing them to the
// option constructors, which panic on bad values.
func options(c *cli.Context) ([]reservoir.Option, error) {
	var opts []reservoir.Option
	for _, f := range []struct {
		name string
		with func(float64) reservoir.Option
	}{
		{"tolerance", reservoir.WithTolerance},
		{"timescale", reservoir.WithGlobalTimescale},
		{"gamma", reservoir.WithGamma},
	} {
		v := c.Float64(f.name)
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return nil, errors.Errorf("--%s must be a positive finite number, got %g", f.name, v)
		}
		opts = append(opts, f.with(v))
	}

	return opts, nil
}
