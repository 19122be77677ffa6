// SPDX-License-Identifier: MIT
// Package rqaplot_test: constructor and save contracts.

package rqaplot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/cartersale/Recurrence-Quantification-Analysis/rqa"
	"github.com/cartersale/Recurrence-Quantification-Analysis/rqaplot"
)

// binary3x3 is a small recurrence matrix with a main diagonal and one
// off-diagonal point.
func binary3x3() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 0, 1,
		0, 1, 0,
		0, 0, 1,
	})
}

// TestRecurrence_Labels verifies the auto/cross title and axis wording.
func TestRecurrence_Labels(t *testing.T) {
	p, err := rqaplot.Recurrence(binary3x3(), false)
	require.NoError(t, err)
	require.Equal(t, "Recurrence Plot", p.Title.Text)
	require.Equal(t, "X(j)", p.Y.Label.Text)

	p, err = rqaplot.Recurrence(binary3x3(), true)
	require.NoError(t, err)
	require.Equal(t, "Cross-Recurrence Plot", p.Title.Text)
	require.Equal(t, "Y(j)", p.Y.Label.Text)
}

// TestRecurrence_NilMatrix verifies the nil guard.
func TestRecurrence_NilMatrix(t *testing.T) {
	_, err := rqaplot.Recurrence(nil, false)
	require.ErrorIs(t, err, rqaplot.ErrNilMatrix)
}

// TestAddMetrics_AppendsStrip verifies the statistics strip lands in the
// title and that nil arguments are ignored.
func TestAddMetrics_AppendsStrip(t *testing.T) {
	p, err := rqaplot.Recurrence(binary3x3(), false)
	require.NoError(t, err)

	rqaplot.AddMetrics(p, &rqa.Result{PercentRecurrence: 28, PercentDeterminism: 50})
	require.Contains(t, p.Title.Text, "%REC: 28.00")
	require.Contains(t, p.Title.Text, "%DET: 50.00")

	rqaplot.AddMetrics(nil, nil) // must not panic
}

// TestDistanceHeat_Basic verifies the heat map constructor.
func TestDistanceHeat_Basic(t *testing.T) {
	d := mat.NewDense(2, 2, []float64{0, 1, 1, 0})

	p, err := rqaplot.DistanceHeat(d)
	require.NoError(t, err)
	require.Equal(t, "Distance Matrix", p.Title.Text)

	_, err = rqaplot.DistanceHeat(nil)
	require.ErrorIs(t, err, rqaplot.ErrNilMatrix)
}

// TestSeriesPanel_OneAndTwo verifies single- and dual-trace panels and the
// empty-series guard.
func TestSeriesPanel_OneAndTwo(t *testing.T) {
	p, err := rqaplot.SeriesPanel([]float64{1, 2, 3}, nil)
	require.NoError(t, err)
	require.Equal(t, "Time Series", p.Title.Text)

	p, err = rqaplot.SeriesPanel([]float64{1, 2, 3}, []float64{3, 2, 1})
	require.NoError(t, err)
	require.NotNil(t, p)

	_, err = rqaplot.SeriesPanel(nil, nil)
	require.ErrorIs(t, err, rqaplot.ErrEmptySeries)
}

// TestPhaseSpace_LagBounds verifies the lag validation range.
func TestPhaseSpace_LagBounds(t *testing.T) {
	xs := []float64{0, 1, 0, -1, 0, 1}

	p, err := rqaplot.PhaseSpace(xs, 2)
	require.NoError(t, err)
	require.Equal(t, "X(t + 2)", p.Y.Label.Text)

	_, err = rqaplot.PhaseSpace(xs, 0)
	require.ErrorIs(t, err, rqaplot.ErrInvalidLag)
	_, err = rqaplot.PhaseSpace(xs, len(xs))
	require.ErrorIs(t, err, rqaplot.ErrInvalidLag)
	_, err = rqaplot.PhaseSpace(nil, 1)
	require.ErrorIs(t, err, rqaplot.ErrEmptySeries)
}

// TestProfile_Basic verifies the DRP plot constructor and nil guard.
func TestProfile_Basic(t *testing.T) {
	drp := &rqa.DRP{Lags: []int{-1, 0, 1}, Recurrence: []float64{10, 100, 10}}

	p, err := rqaplot.Profile(drp)
	require.NoError(t, err)
	require.Equal(t, "Diagonal Recurrence Profile", p.Title.Text)
	require.Equal(t, "Lag", p.X.Label.Text)

	_, err = rqaplot.Profile(nil)
	require.ErrorIs(t, err, rqaplot.ErrNilProfile)
}

// TestSave_WritesPNG verifies a round trip to disk and the nil guard.
func TestSave_WritesPNG(t *testing.T) {
	p, err := rqaplot.Recurrence(binary3x3(), false)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "rp.png")
	require.NoError(t, rqaplot.Save(p, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, info.Size())

	require.ErrorIs(t, rqaplot.Save(nil, path), rqaplot.ErrNilPlot)
}
