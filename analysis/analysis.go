// SPDX-License-Identifier: MIT

// Package analysis orchestrates complete recurrence analysis runs: it
// normalizes the inputs, builds the distance matrix, quantifies it, and
// fans the outcome out to logs, CSV archives and plots according to the
// Request. The four operations mirror the classic drivers: Auto and
// Cross quantify a recurrence matrix, AutoProfile and CrossProfile
// extract diagonal recurrence profiles.
package analysis

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cartersale/Recurrence-Quantification-Analysis/norm"
	"github.com/cartersale/Recurrence-Quantification-Analysis/rqa"
	"github.com/cartersale/Recurrence-Quantification-Analysis/rqaplot"
	"github.com/cartersale/Recurrence-Quantification-Analysis/statsfile"
)

// Legacy run labels, used when Request.Name is empty.
const (
	labelAuto         = "AutoRQA"
	labelCross        = "CrossRQA"
	labelAutoProfile  = "DRP-auto"
	labelCrossProfile = "DRP-cross"
)

// Analyzer runs recurrence analyses and reports through an injected
// logger.
type Analyzer struct {
	log *logrus.Logger
}

// New returns an Analyzer reporting to log. A nil log falls back to a
// fresh default logger.
func New(log *logrus.Logger) *Analyzer {
	if log == nil {
		log = logrus.New()
	}

	return &Analyzer{log: log}
}

// Auto quantifies the recurrence of a series with itself. The Theiler
// window from the request parameters excludes near-diagonal matches. On
// failure the stats archive still receives a zeroed row, so one row per
// attempted input is preserved.
func (a *Analyzer) Auto(series []float64, req Request) (*rqa.Result, error) {
	name := runName(req.Name, labelAuto)

	xs, err := norm.Series(series, req.Norm)
	if err != nil {
		return nil, a.failStats(name, req, err)
	}
	res, err := a.quantify(xs, xs, req.Params, rqa.ModeAuto)
	if err != nil {
		return nil, a.failStats(name, req, err)
	}

	if req.ShowMetrics {
		a.logMetrics(name, res)
	}
	if req.PlotPath != "" {
		if err = a.plotRun(req, res, xs, nil, false); err != nil {
			return nil, err
		}
	}
	if req.StatsPath != "" {
		w := statsfile.New(req.StatsPath, "")
		if err = w.AppendStats(name, req.Params, res, nil); err != nil {
			return nil, fmt.Errorf("analysis: stats archive: %w", err)
		}
	}

	return res, nil
}

// Cross quantifies the recurrence between two series. No Theiler window
// applies: the main diagonal of a cross-recurrence matrix carries real
// information.
func (a *Analyzer) Cross(x, y []float64, req Request) (*rqa.Result, error) {
	name := runName(req.Name, labelCross)

	xs, err := norm.Series(x, req.Norm)
	if err != nil {
		return nil, a.failStats(name, req, err)
	}
	ys, err := norm.Series(y, req.Norm)
	if err != nil {
		return nil, a.failStats(name, req, err)
	}
	res, err := a.quantify(xs, ys, req.Params, rqa.ModeCross)
	if err != nil {
		return nil, a.failStats(name, req, err)
	}

	if req.ShowMetrics {
		a.logMetrics(name, res)
	}
	if req.PlotPath != "" {
		if err = a.plotRun(req, res, xs, ys, true); err != nil {
			return nil, err
		}
	}
	if req.StatsPath != "" {
		w := statsfile.New(req.StatsPath, "")
		if err = w.AppendStats(name, req.Params, res, nil); err != nil {
			return nil, fmt.Errorf("analysis: stats archive: %w", err)
		}
	}

	return res, nil
}

// AutoProfile extracts the diagonal recurrence profile of a series with
// itself, honoring the Theiler window.
func (a *Analyzer) AutoProfile(series []float64, req Request) (*rqa.DRP, error) {
	return a.profile(series, nil, req, runName(req.Name, labelAutoProfile), req.Params.Theiler)
}

// CrossProfile extracts the diagonal recurrence profile between two
// series; the profile peak locates their lead-lag relation.
func (a *Analyzer) CrossProfile(x, y []float64, req Request) (*rqa.DRP, error) {
	return a.profile(x, y, req, runName(req.Name, labelCrossProfile), 0)
}

// quantify runs distance → stats on already-normalized series.
func (a *Analyzer) quantify(xs, ys []float64, p rqa.Params, mode rqa.Mode) (*rqa.Result, error) {
	d, err := rqa.Distance(xs, ys, p.Dim, p.Lag, rqa.WithWorkers(p.Workers))
	if err != nil {
		return nil, err
	}

	return rqa.Stats(d, p, mode)
}

// profile runs normalize → distance → threshold → profile and fans out
// the peak log, the plot and the archive rows. A nil y means "the same
// series as x".
func (a *Analyzer) profile(x, y []float64, req Request, name string, window int) (*rqa.DRP, error) {
	xs, err := norm.Series(x, req.Norm)
	if err != nil {
		return nil, a.failRun(name, err)
	}
	ys := xs
	if y != nil {
		if ys, err = norm.Series(y, req.Norm); err != nil {
			return nil, a.failRun(name, err)
		}
	}

	d, err := rqa.Distance(xs, ys, req.Params.Dim, req.Params.Lag, rqa.WithWorkers(req.Params.Workers))
	if err != nil {
		return nil, a.failRun(name, err)
	}
	r, err := rqa.Threshold(d, req.Params.Rescale, req.Params.Radius, window)
	if err != nil {
		return nil, a.failRun(name, err)
	}
	p, err := rqa.Profile(r, req.MaxLag)
	if err != nil {
		return nil, a.failRun(name, err)
	}

	if req.ShowMetrics {
		lag, value := p.Peak()
		a.log.WithFields(logrus.Fields{
			"run":        name,
			"peak_lag":   lag,
			"recurrence": value,
		}).Info("profile peak")
	}
	if req.PlotPath != "" {
		plt, perr := rqaplot.Profile(p)
		if perr != nil {
			return nil, fmt.Errorf("analysis: profile plot: %w", perr)
		}
		if perr = rqaplot.Save(plt, req.PlotPath); perr != nil {
			return nil, fmt.Errorf("analysis: profile plot: %w", perr)
		}
	}
	if req.ProfilePath != "" {
		w := statsfile.New("", req.ProfilePath)
		if err = w.AppendProfile(name, req.Params, p); err != nil {
			return nil, fmt.Errorf("analysis: profile archive: %w", err)
		}
	}

	return p, nil
}

// plotRun renders the recurrence plot and any requested side panels next
// to it.
func (a *Analyzer) plotRun(req Request, res *rqa.Result, xs, ys []float64, cross bool) error {
	p, err := rqaplot.Recurrence(res.Recurrence, cross)
	if err != nil {
		return fmt.Errorf("analysis: recurrence plot: %w", err)
	}
	rqaplot.AddMetrics(p, res)
	if err = rqaplot.Save(p, req.PlotPath); err != nil {
		return fmt.Errorf("analysis: recurrence plot: %w", err)
	}

	if req.PlotMode == PlotTimeSeries {
		panel, perr := rqaplot.SeriesPanel(xs, ys)
		if perr != nil {
			return fmt.Errorf("analysis: series panel: %w", perr)
		}
		if perr = rqaplot.Save(panel, sidePath(req.PlotPath, "series")); perr != nil {
			return fmt.Errorf("analysis: series panel: %w", perr)
		}
	}
	if req.PhaseSpace {
		phase, perr := rqaplot.PhaseSpace(xs, req.Params.Lag)
		if perr != nil {
			return fmt.Errorf("analysis: phase space: %w", perr)
		}
		if perr = rqaplot.Save(phase, sidePath(req.PlotPath, "phase")); perr != nil {
			return fmt.Errorf("analysis: phase space: %w", perr)
		}
	}

	return nil
}

// logMetrics reports the full quantification summary as one structured
// entry, fields named after the archive columns.
func (a *Analyzer) logMetrics(name string, res *rqa.Result) {
	a.log.WithFields(logrus.Fields{
		"run":           name,
		"perc_recur":    res.PercentRecurrence,
		"perc_determ":   res.PercentDeterminism,
		"maxl_found":    res.MaxLine,
		"mean_line":     res.MeanLine,
		"std_line":      res.StdLine,
		"count_line":    res.LineCount,
		"entropy":       res.Entropy,
		"laminarity":    res.PercentLaminarity,
		"trapping_time": res.TrappingTime,
		"vmax":          res.MaxVertical,
		"divergence":    res.Divergence,
		"trend_lower":   res.TrendLower,
		"trend_upper":   res.TrendUpper,
	}).Info("recurrence metrics")
}

// failStats logs a failed quantification, archives the zeroed row when an
// archive is configured, and passes the error through.
func (a *Analyzer) failStats(name string, req Request, err error) error {
	a.log.WithError(err).WithFields(logrus.Fields{
		"run":  name,
		"code": rqa.Code(err).String(),
	}).Error("recurrence computation failed")

	if req.StatsPath != "" {
		w := statsfile.New(req.StatsPath, "")
		if werr := w.AppendStats(name, req.Params, nil, err); werr != nil {
			return fmt.Errorf("analysis: stats archive: %w", werr)
		}
	}

	return err
}

// failRun logs a failed profile run and passes the error through.
func (a *Analyzer) failRun(name string, err error) error {
	a.log.WithError(err).WithFields(logrus.Fields{
		"run":  name,
		"code": rqa.Code(err).String(),
	}).Error("profile computation failed")

	return err
}

// runName substitutes the legacy label when the request has no name.
func runName(name, fallback string) string {
	if name == "" {
		return fallback
	}

	return name
}

// sidePath derives a panel file name from the main plot path:
// out.png → out_series.png.
func sidePath(path, suffix string) string {
	ext := filepath.Ext(path)

	return strings.TrimSuffix(path, ext) + "_" + suffix + ext
}
