// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/urfave/cli.v1"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	exiter := cli.OsExiter
	cli.OsExiter = func(int) {}
	t.Cleanup(func() { cli.OsExiter = exiter })

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run(append([]string{"reservoir"}, args...))

	return out.String(), err
}

func TestDefaultRun(t *testing.T) {
	out, err := runApp(t)
	require.NoError(t, err)
	require.Equal(t, "[0 0 0]\n", out)
}

func TestShortFlags(t *testing.T) {
	out, err := runApp(t, "-k", "1", "-m", "2", "-n", "3")
	require.NoError(t, err)
	require.Equal(t, "[0 0]\n", out)
}

func TestRandomDumpSimulate(t *testing.T) {
	out, err := runApp(t, "--random", "--seed", "3", "-n", "8", "--dump", "--simulate", "4")
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(out, "Reservoir Parameters"))
	require.Contains(t, out, "r: [0, 0, 0, 0, 0, 0, 0, 0]\n") // base reservoirs start at zero
	require.Contains(t, out, "converged: true")
	// W is zero for the base reservoir: 3 rows of 4 zero samples
	require.True(t, strings.HasSuffix(out, strings.Repeat("[0, 0, 0, 0]\n", 3)), out)
}

func TestDriveCompare(t *testing.T) {
	out, err := runApp(t, "--random", "-k", "2", "-m", "2", "-n", "6", "--probe",
		"--simulate", "40", "--drive", "highlow", "--level", "0.5", "--compare")
	require.NoError(t, err)

	i := strings.LastIndex(out, "dtw: ")
	require.GreaterOrEqual(t, i, 0, out)
	dist, err := strconv.ParseFloat(strings.TrimSpace(out[i+len("dtw: "):]), 64)
	require.NoError(t, err)
	require.Greater(t, dist, 0.0)

	// the undriven trajectory matches its own baseline
	out, err = runApp(t, "--random", "-n", "6", "--probe", "--simulate", "10", "--compare")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(out, "dtw: 0\n"), out)
}

// The trajectory starts from the initial zero state, not the settled one.
func TestSimulateRelaxes(t *testing.T) {
	out, err := runApp(t, "--random", "-k", "1", "-m", "1", "-n", "2", "--probe", "--simulate", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	traj := lines[len(lines)-1]
	require.True(t, strings.HasPrefix(traj, "[0, "), traj)
	require.NotEqual(t, "[0, 0, 0]", traj)
}

func TestProbeWeights(t *testing.T) {
	W, err := probeWeights(3, 2)
	require.NoError(t, err)
	require.Equal(t, "[1, 0]\n[0, 1]\n[0, 0]\n", W.String())

	W, err = probeWeights(1, 3)
	require.NoError(t, err)
	require.Equal(t, "[1, 0, 0]\n", W.String())

	W, err = probeWeights(0, 2)
	require.NoError(t, err)
	require.Equal(t, 0, W.Rows())
}

func TestBadFlags(t *testing.T) {
	_, err := runApp(t, "--tolerance", "-1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--tolerance")

	_, err = runApp(t, "-n", "-2")
	require.Error(t, err)

	_, err = runApp(t, "--profile", "heap")
	require.Error(t, err)

	_, err = runApp(t, "--simulate", "3", "--drive", "sine")
	require.Error(t, err)
}
