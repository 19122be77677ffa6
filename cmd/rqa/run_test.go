// SPDX-License-Identifier: MIT
// Command rqa: flag-to-request mapping tests.

package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/cartersale/Recurrence-Quantification-Analysis/analysis"
	"github.com/cartersale/Recurrence-Quantification-Analysis/norm"
	"github.com/cartersale/Recurrence-Quantification-Analysis/rqa"
)

// parseRun binds the shared flags to a throwaway command, parses args,
// and maps them onto a Request.
func parseRun(t *testing.T, args ...string) (analysis.Request, error) {
	t.Helper()
	var flags runFlags
	cmd := &cobra.Command{Use: "test"}
	addRunFlags(cmd, &flags)
	addMaxLagFlag(cmd, &flags)
	require.NoError(t, cmd.ParseFlags(args))

	return flags.request("fallback")
}

// TestRunFlags_Defaults verifies the request defaults line up with the
// library defaults.
func TestRunFlags_Defaults(t *testing.T) {
	req, err := parseRun(t)
	require.NoError(t, err)

	// No --name: fallback label; flag defaults mirror the library.
	require.Equal(t, "fallback", req.Name)
	require.Equal(t, rqa.DefaultParams(), req.Params)
	require.Equal(t, norm.ZScore, req.Norm)
	require.True(t, req.ShowMetrics) // metrics log on unless --quiet
	require.Zero(t, req.MaxLag)
}

// TestRunFlags_FullMapping verifies every flag lands in its Request field.
func TestRunFlags_FullMapping(t *testing.T) {
	req, err := parseRun(t,
		"--name", "lorenz-x",
		"--dim", "3", "--lag", "7",
		"--rescale", "max", "--radius", "0.25",
		"--theiler", "2", "--minl", "4",
		"--norm", "minmax", "--workers", "4",
		"--stats-out", "stats.csv", "--profile-out", "drp.csv",
		"--plot-out", "rp.png", "--plot", "timeseries", "--phase-space",
		"--max-lag", "30", "--quiet",
	)
	require.NoError(t, err)

	want := analysis.Request{
		Name: "lorenz-x",
		Norm: norm.MinMax,
		Params: rqa.Params{
			Dim:     3,
			Lag:     7,
			Rescale: rqa.RescaleMax,
			Radius:  0.25,
			Theiler: 2,
			MinLine: 4,
			Workers: 4,
		},
		MaxLag:      30,
		ShowMetrics: false,
		StatsPath:   "stats.csv",
		ProfilePath: "drp.csv",
		PlotPath:    "rp.png",
		PlotMode:    analysis.PlotTimeSeries,
		PhaseSpace:  true,
	}
	require.Equal(t, want, req)
}

// TestRunFlags_NumericEnumCodes verifies the legacy numeric codes parse.
func TestRunFlags_NumericEnumCodes(t *testing.T) {
	req, err := parseRun(t, "--rescale", "1", "--norm", "2")
	require.NoError(t, err)
	require.Equal(t, rqa.RescaleMean, req.Params.Rescale)
	require.Equal(t, norm.ZScore, req.Norm)
}

// TestRunFlags_BadEnums verifies enum typos surface the library errors.
func TestRunFlags_BadEnums(t *testing.T) {
	_, err := parseRun(t, "--rescale", "median")
	require.ErrorIs(t, err, rqa.ErrInvalidRescaleMode)

	_, err = parseRun(t, "--norm", "robust")
	require.ErrorIs(t, err, norm.ErrUnknownMode)

	_, err = parseRun(t, "--plot", "surface")
	require.Error(t, err)
}
