// SPDX-License-Identifier: MIT
// Command rqa: shared analysis flags and their mapping onto a Request.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cartersale/Recurrence-Quantification-Analysis/analysis"
	"github.com/cartersale/Recurrence-Quantification-Analysis/norm"
	"github.com/cartersale/Recurrence-Quantification-Analysis/rqa"
)

// runFlags carries the raw flag values of one analysis subcommand. String
// flags that map onto enums are parsed in request(), so a typo fails with
// the enum's own error instead of a silent default.
type runFlags struct {
	name    string
	dim     int
	lag     int
	rescale string
	radius  float64
	theiler int
	minl    int
	norming string
	workers int

	statsOut   string
	profileOut string
	plotOut    string
	plotMode   string
	phaseSpace bool
	maxLag     int
	quiet      bool
}

// addRunFlags registers the flags every analysis subcommand shares. The
// defaults mirror rqa.DefaultParams and DefaultRequest.
func addRunFlags(cmd *cobra.Command, f *runFlags) {
	def := rqa.DefaultParams()

	cmd.Flags().StringVar(&f.name, "name", "", "run label used in archives and logs (default: input file name)")
	cmd.Flags().IntVar(&f.dim, "dim", def.Dim, "embedding dimension m")
	cmd.Flags().IntVar(&f.lag, "lag", def.Lag, "embedding delay in samples")
	cmd.Flags().StringVar(&f.rescale, "rescale", def.Rescale.String(), "distance rescaling (none|mean|max)")
	cmd.Flags().Float64Var(&f.radius, "radius", def.Radius, "recurrence threshold radius")
	cmd.Flags().IntVar(&f.theiler, "theiler", def.Theiler, "exclusion window half-width")
	cmd.Flags().IntVar(&f.minl, "minl", def.MinLine, "minimum line length")
	cmd.Flags().StringVar(&f.norming, "norm", norm.ZScore.String(), "input normalization (none|minmax|zscore|center)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "distance-row parallelism (<=1 serial)")
	cmd.Flags().StringVar(&f.statsOut, "stats-out", "", "append a statistics row to this file")
	cmd.Flags().StringVar(&f.profileOut, "profile-out", "", "append profile rows to this file")
	cmd.Flags().StringVar(&f.plotOut, "plot-out", "", "write plots with this base path")
	cmd.Flags().StringVar(&f.plotMode, "plot", analysis.PlotRecurrence.String(), "plot panels (recurrence|timeseries)")
	cmd.Flags().BoolVar(&f.phaseSpace, "phase-space", false, "also render the phase-space projection")
	cmd.Flags().BoolVar(&f.quiet, "quiet", false, "suppress the metrics summary log")
}

// addMaxLagFlag is registered only on the drp subcommand.
func addMaxLagFlag(cmd *cobra.Command, f *runFlags) {
	cmd.Flags().IntVar(&f.maxLag, "max-lag", 0, "truncate the profile to |lag| <= max-lag (0 keeps all)")
}

// request validates the enum-valued flags and assembles the Request.
// fallback names the run when --name is absent.
func (f *runFlags) request(fallback string) (analysis.Request, error) {
	var req analysis.Request

	rescale, err := rqa.ParseRescaleMode(f.rescale)
	if err != nil {
		return req, err
	}
	normMode, err := norm.ParseMode(f.norming)
	if err != nil {
		return req, err
	}
	plotMode, err := parsePlotMode(f.plotMode)
	if err != nil {
		return req, err
	}

	name := f.name
	if name == "" {
		name = fallback
	}

	req = analysis.Request{
		Name: name,
		Norm: normMode,
		Params: rqa.Params{
			Dim:     f.dim,
			Lag:     f.lag,
			Rescale: rescale,
			Radius:  f.radius,
			Theiler: f.theiler,
			MinLine: f.minl,
			Workers: f.workers,
		},
		MaxLag:      f.maxLag,
		ShowMetrics: !f.quiet,
		StatsPath:   f.statsOut,
		ProfilePath: f.profileOut,
		PlotPath:    f.plotOut,
		PlotMode:    plotMode,
		PhaseSpace:  f.phaseSpace,
	}

	return req, nil
}

// parsePlotMode maps the --plot flag value onto a PlotMode.
func parsePlotMode(s string) (analysis.PlotMode, error) {
	switch s {
	case analysis.PlotRecurrence.String():
		return analysis.PlotRecurrence, nil
	case analysis.PlotTimeSeries.String():
		return analysis.PlotTimeSeries, nil
	default:
		return analysis.PlotRecurrence, fmt.Errorf("unknown plot mode %q (recurrence|timeseries)", s)
	}
}
