// SPDX-License-Identifier: MIT

// Package statsfile appends analysis results to the legacy CSV archives
// RQA_Stats.csv and DRP_Profile.csv.
//
// The row layout is inherited from years of archived runs and their
// downstream parsers, so it is reproduced byte for byte: comma-space
// separators after the first column, the radius recorded ×100 in its
// shortest decimal form, and a full row of zeros for failed runs. Headers
// are written only when the target file does not exist yet, which lets
// many runs accumulate in one archive.
package statsfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/cartersale/Recurrence-Quantification-Analysis/rqa"
)

// Default archive names, resolved against the working directory.
const (
	DefaultStatsName   = "RQA_Stats.csv"
	DefaultProfileName = "DRP_Profile.csv"
)

const (
	statsHeader = "filename,eDim,tLag,rescale,radius,perc_recur,perc_determ,maxl_found," +
		"mean_line,std_line,count_line,entropy,laminarity,trapping_time," +
		"vmax,divergence,trend_lower_diag,trend_upper_diag\n"
	profileHeader = "filename,eDim,tLag,rescale,radius,lag,perc_recur\n"
)

// ErrNilProfile signals an AppendProfile call without a profile.
var ErrNilProfile = errors.New("statsfile: nil profile")

// Writer appends rows to a pair of archive files.
type Writer struct {
	statsPath   string
	profilePath string
}

// New returns a Writer bound to the given paths. Empty paths fall back to
// the default archive names in the working directory.
func New(statsPath, profilePath string) *Writer {
	if statsPath == "" {
		statsPath = DefaultStatsName
	}
	if profilePath == "" {
		profilePath = DefaultProfileName
	}

	return &Writer{statsPath: statsPath, profilePath: profilePath}
}

// StatsPath returns the stats archive location.
func (w *Writer) StatsPath() string { return w.statsPath }

// ProfilePath returns the profile archive location.
func (w *Writer) ProfilePath() string { return w.profilePath }

// AppendStats appends one result row. A failed run (non-nil runErr or nil
// result) is archived as the metadata prefix followed by zeros, keeping
// one row per attempted input.
func (w *Writer) AppendStats(name string, p rqa.Params, res *rqa.Result, runErr error) error {
	return appendRows(w.statsPath, statsHeader, func(f io.Writer) error {
		if runErr != nil || res == nil {
			_, err := fmt.Fprintf(f,
				"%s, %d, %d, %d, %s, 0.0, 0.0, 0.0, 0.0, 0.0, 0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0\n",
				name, p.Dim, p.Lag, int(p.Rescale), legacyFloat(p.Radius*100))

			return err
		}

		_, err := fmt.Fprintf(f,
			"%s, %d, %d, %d, %s, %.3f, %.3f, %.2f, %.2f, %.2f, %.0f, %.3f, %.3f, %.3f, %.2f, %.3f, %.3f, %.3f\n",
			name, p.Dim, p.Lag, int(p.Rescale), legacyFloat(p.Radius*100),
			res.PercentRecurrence, res.PercentDeterminism, float64(res.MaxLine),
			res.MeanLine, res.StdLine, float64(res.LineCount),
			res.Entropy, res.PercentLaminarity, res.TrappingTime,
			float64(res.MaxVertical), res.Divergence,
			res.TrendLower, res.TrendUpper)

		return err
	})
}

// AppendProfile appends one row per lag of the diagonal recurrence
// profile, each carrying the full metadata prefix.
func (w *Writer) AppendProfile(name string, p rqa.Params, profile *rqa.DRP) error {
	if profile == nil {
		return ErrNilProfile
	}

	return appendRows(w.profilePath, profileHeader, func(f io.Writer) error {
		for i, lag := range profile.Lags {
			_, err := fmt.Fprintf(f, "%s, %d, %d, %d, %s, %d, %.6f\n",
				name, p.Dim, p.Lag, int(p.Rescale), legacyFloat(p.Radius*100),
				lag, profile.Recurrence[i])
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// appendRows opens path for appending, writes the header first when the
// file did not exist, then hands the stream to write.
func appendRows(path, header string, write func(io.Writer) error) error {
	_, statErr := os.Stat(path)
	needHeader := errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	if needHeader {
		if _, err = io.WriteString(f, header); err != nil {
			f.Close()

			return err
		}
	}
	if err = write(f); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// legacyFloat renders v the way the original tool serialized floats:
// shortest decimal form that round-trips, with a trailing ".0" kept on
// integral values.
func legacyFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}
