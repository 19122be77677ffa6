// SPDX-License-Identifier: MIT

// Package rqaplot renders recurrence analysis artifacts with gonum/plot.
//
// The drawing conventions follow the long-standing visual language of
// recurrence plots: the first series index i runs along the X axis, the
// second index j up the Y axis, recurrent points are black on white, and
// the phase portrait connects consecutive delay vectors with a line.
// Every constructor returns a ready *plot.Plot so callers can adjust
// titles or sizes before handing it to Save, which picks the image format
// from the file extension.
package rqaplot

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/cartersale/Recurrence-Quantification-Analysis/rqa"
)

var (
	// ErrNilMatrix signals a plot request without a matrix.
	ErrNilMatrix = errors.New("rqaplot: nil matrix")
	// ErrEmptySeries signals a plot request without samples.
	ErrEmptySeries = errors.New("rqaplot: empty series")
	// ErrInvalidLag signals a phase-space lag outside 1..len(series)-1.
	ErrInvalidLag = errors.New("rqaplot: invalid lag")
	// ErrNilProfile signals a profile plot request without a profile.
	ErrNilProfile = errors.New("rqaplot: nil profile")
	// ErrNilPlot signals a save request without a plot.
	ErrNilPlot = errors.New("rqaplot: nil plot")
)

// Legacy canvas size: 10×8 inches.
const (
	canvasWidth  = 10 * vg.Inch
	canvasHeight = 8 * vg.Inch
)

// dotRadius is the glyph radius for recurrence points.
const dotRadius = vg.Length(1)

// lineGreen approximates the classic series color for the second panel
// trace.
var lineGreen = color.RGBA{G: 128, A: 255}

// lineBlue is the primary trace color.
var lineBlue = color.RGBA{B: 255, A: 255}

// Recurrence renders a binary recurrence matrix as a black-on-white dot
// plot. cross switches the title and Y label to the cross-recurrence
// wording.
func Recurrence(r *mat.Dense, cross bool) (*plot.Plot, error) {
	if r == nil {
		return nil, ErrNilMatrix
	}

	rows, cols := r.Dims()
	pts := make(plotter.XYs, 0, rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if r.At(i, j) != 0 {
				pts = append(pts, plotter.XY{X: float64(i), Y: float64(j)})
			}
		}
	}

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("rqaplot: recurrence scatter: %w", err)
	}
	s.GlyphStyle.Shape = draw.BoxGlyph{}
	s.GlyphStyle.Radius = dotRadius
	s.GlyphStyle.Color = color.Black

	p := plot.New()
	p.Title.Text = "Recurrence Plot"
	p.X.Label.Text = "X(i)"
	p.Y.Label.Text = "X(j)"
	if cross {
		p.Title.Text = "Cross-Recurrence Plot"
		p.Y.Label.Text = "Y(j)"
	}
	p.Add(s)

	// Pin the axes to the matrix extent so sparse and empty matrices
	// render on the same frame.
	p.X.Min, p.X.Max = 0, float64(rows-1)
	p.Y.Min, p.Y.Max = 0, float64(cols-1)

	return p, nil
}

// AddMetrics appends the one-line statistics strip to the plot title, in
// the same order the interactive viewer always showed.
func AddMetrics(p *plot.Plot, res *rqa.Result) {
	if p == nil || res == nil {
		return
	}

	p.Title.Text += fmt.Sprintf(
		"\n%%REC: %.2f | %%DET: %.2f | MAXLINE: %.0f | MEANLINE: %.0f | ENTROPY: %.2f",
		res.PercentRecurrence, res.PercentDeterminism, float64(res.MaxLine),
		res.MeanLine, res.Entropy)
}

// denseGrid adapts a mat.Dense to the heat-map grid interface with the
// first matrix index on X.
type denseGrid struct {
	m *mat.Dense
}

func (g denseGrid) Dims() (c, r int)   { c, r = g.m.Dims(); return c, r }
func (g denseGrid) Z(c, r int) float64 { return g.m.At(c, r) }
func (g denseGrid) X(c int) float64    { return float64(c) }
func (g denseGrid) Y(r int) float64    { return float64(r) }

// DistanceHeat renders an unthresholded distance matrix as a heat map,
// dark for close pairs, which previews how a radius will carve the
// recurrence plot.
func DistanceHeat(d *mat.Dense) (*plot.Plot, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}

	pal := moreland.ExtendedBlackBody().Palette(255)
	h := plotter.NewHeatMap(denseGrid{m: d}, pal)

	p := plot.New()
	p.Title.Text = "Distance Matrix"
	p.X.Label.Text = "X(i)"
	p.Y.Label.Text = "X(j)"
	p.Add(h)

	return p, nil
}

// SeriesPanel renders one or two series as sample-indexed line traces on
// a shared canvas. y may be nil for single-series runs.
func SeriesPanel(x, y []float64) (*plot.Plot, error) {
	if len(x) == 0 {
		return nil, ErrEmptySeries
	}

	p := plot.New()
	p.Title.Text = "Time Series"
	p.X.Label.Text = "Sample"
	p.Y.Label.Text = "Amplitude"

	lineX, err := plotter.NewLine(seriesXYs(x))
	if err != nil {
		return nil, fmt.Errorf("rqaplot: series line: %w", err)
	}
	lineX.Color = lineBlue
	p.Add(lineX)
	p.Legend.Add("X", lineX)

	if y != nil {
		var lineY *plotter.Line
		lineY, err = plotter.NewLine(seriesXYs(y))
		if err != nil {
			return nil, fmt.Errorf("rqaplot: series line: %w", err)
		}
		lineY.Color = lineGreen
		p.Add(lineY)
		p.Legend.Add("Y", lineY)
	}
	p.Legend.Top = true

	return p, nil
}

// PhaseSpace renders the two-dimensional delay portrait x(t) against
// x(t+lag) as a connected trajectory.
func PhaseSpace(series []float64, lag int) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}
	if lag < 1 || lag >= len(series) {
		return nil, fmt.Errorf("rqaplot: lag %d for %d samples: %w", lag, len(series), ErrInvalidLag)
	}

	n := len(series) - lag
	pts := make(plotter.XYs, n)
	for t := 0; t < n; t++ {
		pts[t] = plotter.XY{X: series[t], Y: series[t+lag]}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("rqaplot: phase trajectory: %w", err)
	}
	line.Color = lineBlue

	p := plot.New()
	p.Title.Text = "2D Phase Space Reconstruction"
	p.X.Label.Text = "X(t)"
	p.Y.Label.Text = fmt.Sprintf("X(t + %d)", lag)
	p.Add(line)

	return p, nil
}

// Profile renders a diagonal recurrence profile as a line with point
// markers, lag on X and recurrence percentage on Y.
func Profile(drp *rqa.DRP) (*plot.Plot, error) {
	if drp == nil {
		return nil, ErrNilProfile
	}

	pts := make(plotter.XYs, len(drp.Lags))
	for i, lag := range drp.Lags {
		pts[i] = plotter.XY{X: float64(lag), Y: drp.Recurrence[i]}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("rqaplot: profile line: %w", err)
	}
	line.Color = lineBlue
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("rqaplot: profile points: %w", err)
	}
	scatter.GlyphStyle.Color = lineBlue
	scatter.GlyphStyle.Radius = vg.Points(2)

	p := plot.New()
	p.Title.Text = "Diagonal Recurrence Profile"
	p.X.Label.Text = "Lag"
	p.Y.Label.Text = "%REC"
	p.Add(line, scatter)

	return p, nil
}

// Save writes the plot to path on the legacy 10×8 inch canvas. The image
// format follows the file extension (.png, .svg, .pdf, ...).
func Save(p *plot.Plot, path string) error {
	if p == nil {
		return ErrNilPlot
	}

	return p.Save(canvasWidth, canvasHeight, path)
}

// seriesXYs indexes a series by sample number.
func seriesXYs(xs []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i, v := range xs {
		pts[i] = plotter.XY{X: float64(i), Y: v}
	}

	return pts
}
