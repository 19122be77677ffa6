// SPDX-License-Identifier: MIT
// Package analysis: run requests and plotting modes.

package analysis

import (
	"github.com/cartersale/Recurrence-Quantification-Analysis/norm"
	"github.com/cartersale/Recurrence-Quantification-Analysis/rqa"
)

// PlotMode selects which panels a plotting run renders next to the
// recurrence plot.
type PlotMode int

const (
	// PlotRecurrence renders the recurrence plot alone.
	PlotRecurrence PlotMode = iota
	// PlotTimeSeries additionally renders the input series panel.
	PlotTimeSeries
)

// String returns the canonical name of the plot mode.
func (m PlotMode) String() string {
	switch m {
	case PlotRecurrence:
		return "recurrence"
	case PlotTimeSeries:
		return "timeseries"
	default:
		return "unknown"
	}
}

// Request bundles everything one analysis run needs. The zero value is
// not useful; start from DefaultRequest and override.
type Request struct {
	// Name labels the run in archives and logs. Empty picks the legacy
	// per-operation label (AutoRQA, CrossRQA, DRP-auto, DRP-cross).
	Name string

	// Norm is applied to every input series before embedding.
	Norm norm.Mode

	// Params drive the embedding, thresholding and line statistics.
	Params rqa.Params

	// MaxLag truncates diagonal profiles to |lag| <= MaxLag; 0 keeps the
	// full profile.
	MaxLag int

	// ShowMetrics logs the quantification summary after a run.
	ShowMetrics bool

	// StatsPath appends a row to the stats archive when non-empty.
	// ProfilePath does the same for diagonal profiles.
	StatsPath   string
	ProfilePath string

	// PlotPath renders plots when non-empty; side panels derive their
	// file names from it. PlotMode and PhaseSpace choose the panels.
	PlotPath   string
	PlotMode   PlotMode
	PhaseSpace bool
}

// DefaultRequest returns a Request with the standard screening setup:
// z-scored input, raw one-dimensional embedding, mean-rescaled radius
// 0.1, one-sample Theiler window, two-point lines.
func DefaultRequest(name string) Request {
	return Request{
		Name:   name,
		Norm:   norm.ZScore,
		Params: rqa.DefaultParams(),
	}
}
