// SPDX-License-Identifier: MIT
// Package rqa: parameter objects, mode/rescale enums, and result records.

package rqa

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// RescaleMode selects the scalar divisor applied uniformly to a distance
// matrix before thresholding.
//
//   - RescaleNone — threshold absolute distances as-is.
//   - RescaleMean — divide every entry by the mean distance; the radius then
//     reads as a fraction of the mean (0.1 ≈ "10% of mean distance").
//   - RescaleMax  — divide every entry by the maximum distance; the radius
//     then reads as a fraction of the largest observed distance.
//
// Numeric values match the legacy stats-file encoding (0/1/2), so rows
// written by this implementation line up with existing downstream tooling.
type RescaleMode int

const (
	// RescaleNone thresholds absolute distances.
	RescaleNone RescaleMode = iota

	// RescaleMean divides by the mean of all distances.
	RescaleMean

	// RescaleMax divides by the maximum of all distances.
	RescaleMax
)

// String returns the lowercase mode name used by flags and logs.
func (m RescaleMode) String() string {
	switch m {
	case RescaleNone:
		return "none"
	case RescaleMean:
		return "mean"
	case RescaleMax:
		return "max"
	default:
		return "invalid"
	}
}

// ParseRescaleMode maps a user-facing name or legacy numeric code to a
// RescaleMode. Matching is case-insensitive: "mean" and "1" both select
// RescaleMean.
func ParseRescaleMode(s string) (RescaleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "0":
		return RescaleNone, nil
	case "mean", "1":
		return RescaleMean, nil
	case "max", "2":
		return RescaleMax, nil
	default:
		return RescaleNone, fmt.Errorf("rqa: rescale mode %q: %w", s, ErrInvalidRescaleMode)
	}
}

// Mode tags an analysis as auto- or cross-recurrence. It decides the
// exclusion-window policy inside Stats: auto-recurrence honors
// Params.Theiler (self-comparisons near the main diagonal are embedding
// artifacts), cross-recurrence always uses window 0 (no self-comparison
// artifact exists between two distinct series).
type Mode int

const (
	// ModeAuto compares a series against itself.
	ModeAuto Mode = iota

	// ModeCross compares two distinct series.
	ModeCross
)

// String returns the lowercase mode name used by flags and logs.
func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeCross:
		return "cross"
	default:
		return "invalid"
	}
}

// Params configures one statistics run.
//
// Fields:
//   - Dim     — embedding dimension m ≥ 1 (1 keeps the raw scalar series).
//   - Lag     — embedding delay τ ≥ 1 in samples.
//   - Rescale — distance-matrix rescaling applied before thresholding.
//   - Radius  — recurrence threshold > 0, in rescaled distance units.
//   - Theiler — exclusion half-width w ≥ 0; |i−j| < w is zeroed for
//     ModeAuto and ignored for ModeCross.
//   - MinLine — minimum line length ≥ 1 entering histograms, determinism,
//     laminarity, and entropy.
//   - Workers — distance-row parallelism hint; ≤ 1 computes serially.
//
// Params is a plain value object: copy it freely, no hidden state.
type Params struct {
	Dim     int
	Lag     int
	Rescale RescaleMode
	Radius  float64
	Theiler int
	MinLine int
	Workers int
}

// DefaultParams returns the conventional starting configuration: no
// embedding (Dim=1, Lag=1), mean-distance rescale with a 10% radius, a
// one-sample Theiler window, and two-point minimum lines.
func DefaultParams() Params {
	return Params{
		Dim:     1,
		Lag:     1,
		Rescale: RescaleMean,
		Radius:  0.1,
		Theiler: 1,
		MinLine: 2,
		Workers: 0,
	}
}

// Result is the aggregate statistics record of one Stats call. It is
// immutable by convention: the engine never retains or revisits it.
//
// Degenerate-but-valid runs are flagged, not failed: when no diagonal line
// reaches MinLine, the line statistics and entropy are zero; when no
// vertical line exists at all, NoVerticalLines is true and Divergence is 0.
type Result struct {
	// Recurrence is the thresholded binary matrix the statistics were
	// computed from, retained for visualization.
	Recurrence *mat.Dense

	// PercentRecurrence is 100 × recurrent points / eligible points.
	PercentRecurrence float64

	// PercentDeterminism is 100 × recurrent points on diagonal lines of at
	// least MinLine / all recurrent points.
	PercentDeterminism float64

	// MaxLine is the longest diagonal line of at least MinLine found; 0 when
	// none qualifies.
	MaxLine int

	// MeanLine and StdLine are the mean and population standard deviation of
	// qualifying diagonal line lengths; LineCount is how many qualified.
	MeanLine  float64
	StdLine   float64
	LineCount int

	// Entropy is the Shannon entropy (bits) of the diagonal line-length
	// histogram; Remaining is log2(states) − Entropy.
	Entropy   float64
	Remaining float64

	// TrendLower and TrendUpper are 1000 × the slope of recurrence density
	// against diagonal offset, toward the lower-left and upper-right corners.
	TrendLower float64
	TrendUpper float64

	// PercentLaminarity is 100 × recurrent points on vertical lines of at
	// least MinLine / all recurrent points in vertical structures.
	PercentLaminarity float64

	// TrappingTime is the mean qualifying vertical line length.
	TrappingTime float64

	// MaxVertical is the longest vertical line found (any length); Divergence
	// is its reciprocal, 0 when no vertical line exists.
	MaxVertical int
	Divergence  float64

	// NoVerticalLines marks the degenerate case MaxVertical == 0.
	NoVerticalLines bool
}
