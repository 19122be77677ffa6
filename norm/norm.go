// SPDX-License-Identifier: MIT
// Package norm: scaling modes and the Series transform.

package norm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"
)

// Mode selects how Series rescales a time series. The numeric values are
// the legacy codes recorded in result files.
type Mode int

const (
	// None leaves the series unchanged.
	None Mode = iota
	// MinMax maps the series onto the unit interval [0, 1].
	MinMax
	// ZScore standardizes to zero mean and unit population deviation.
	ZScore
	// Center subtracts the mean and keeps the original spread.
	Center
)

var (
	// ErrUnknownMode signals a mode outside the supported set.
	ErrUnknownMode = errors.New("norm: unknown mode")
	// ErrEmptySeries signals a series with no samples.
	ErrEmptySeries = errors.New("norm: empty series")
	// ErrZeroRange signals a constant series that MinMax or ZScore cannot scale.
	ErrZeroRange = errors.New("norm: zero range")
)

// String returns the canonical lower-case name of the mode.
func (m Mode) String() string {
	switch m {
	case None:
		return "none"
	case MinMax:
		return "minmax"
	case ZScore:
		return "zscore"
	case Center:
		return "center"
	default:
		return "unknown"
	}
}

// ParseMode maps a user-facing name or legacy numeric code to a Mode.
// Matching is case-insensitive: "zscore" and "2" both select ZScore.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "0":
		return None, nil
	case "minmax", "1":
		return MinMax, nil
	case "zscore", "2":
		return ZScore, nil
	case "center", "3":
		return Center, nil
	default:
		return None, fmt.Errorf("norm: mode %q: %w", s, ErrUnknownMode)
	}
}

// Series returns a rescaled copy of xs according to m. The input slice is
// never modified. A constant series cannot be scaled by MinMax or ZScore
// and yields ErrZeroRange.
//
// Complexity: O(n) time, O(n) memory.
func Series(xs []float64, m Mode) ([]float64, error) {
	if len(xs) == 0 {
		return nil, ErrEmptySeries
	}

	out := make([]float64, len(xs))
	copy(out, xs)

	switch m {
	case None:
		return out, nil

	case MinMax:
		lo, err := stats.Min(out)
		if err != nil {
			return nil, err
		}
		hi, err := stats.Max(out)
		if err != nil {
			return nil, err
		}
		if hi == lo {
			return nil, ErrZeroRange
		}
		span := hi - lo
		for i := range out {
			out[i] = (out[i] - lo) / span
		}

		return out, nil

	case ZScore:
		mean, err := stats.Mean(out)
		if err != nil {
			return nil, err
		}
		sd, err := stats.StandardDeviationPopulation(out)
		if err != nil {
			return nil, err
		}
		if sd == 0 {
			return nil, ErrZeroRange
		}
		for i := range out {
			out[i] = (out[i] - mean) / sd
		}

		return out, nil

	case Center:
		mean, err := stats.Mean(out)
		if err != nil {
			return nil, err
		}
		for i := range out {
			out[i] -= mean
		}

		return out, nil

	default:
		return nil, fmt.Errorf("norm: mode %d: %w", m, ErrUnknownMode)
	}
}
