// SPDX-License-Identifier: MIT
// Package rqa: sentinel error set and stage error codes.
// This file defines ONLY the package-level sentinel errors and the numeric
// ErrorCode mapping used by persistence-layer consumers. All operations MUST
// return these sentinels (wrapped with fmt.Errorf("ctx: %w", ErrX) where
// context helps) and tests MUST check them via errors.Is. No operation panics
// on user input.

package rqa

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "rqa: ..." so failures grep cleanly across
// logs. Degenerate-but-valid outcomes (empty histogram, no vertical lines)
// are NOT errors: they yield zeroed statistics plus result metadata.

var (
	// ErrInsufficientData is returned when the embedding parameters leave
	// zero or negative usable samples (N − lag·(dim−1) ≤ 0, or dim/lag < 1),
	// or when a distance matrix is too small to threshold (≤ 1 element).
	ErrInsufficientData = errors.New("rqa: not enough data for these embedding parameters")

	// ErrNonSquareMatrix signals that a square matrix was required but the
	// input wasn't.
	ErrNonSquareMatrix = errors.New("rqa: matrix is not square")

	// ErrNotBinaryMatrix signals a recurrence-matrix entry outside {0, 1}.
	ErrNotBinaryMatrix = errors.New("rqa: matrix entries must be 0 or 1")

	// ErrInvalidRadius is returned for a threshold radius that is NaN or ≤ 0.
	ErrInvalidRadius = errors.New("rqa: radius must be a scalar > 0")

	// ErrInvalidRescaleMode is returned for a RescaleMode outside the known set.
	ErrInvalidRescaleMode = errors.New("rqa: unknown rescale mode")

	// ErrInvalidWindow is returned for a negative exclusion window, or one so
	// large that no trend pivot range remains (window ≥ matrix size).
	ErrInvalidWindow = errors.New("rqa: invalid exclusion window")

	// ErrInvalidMinLength is returned when the minimum line length is < 1, or
	// when it exceeds the maximum possible length so that no line-length
	// state remains distinguishable.
	ErrInvalidMinLength = errors.New("rqa: invalid minimum line length")

	// ErrEmptyDistribution is returned when entropy is requested over an
	// all-zero distribution.
	ErrEmptyDistribution = errors.New("rqa: distribution sums to zero")
)

// ErrorCode tags which validation/computation stage failed; 0 means success.
// Persistence consumers use it to decide between a real row and a zeroed
// placeholder row. Codes are derived from the error chain, never from magic
// return values.
type ErrorCode int

const (
	// CodeOK marks a successful computation.
	CodeOK ErrorCode = iota
	// CodeInsufficientData corresponds to ErrInsufficientData.
	CodeInsufficientData
	// CodeNonSquareMatrix corresponds to ErrNonSquareMatrix.
	CodeNonSquareMatrix
	// CodeNotBinaryMatrix corresponds to ErrNotBinaryMatrix.
	CodeNotBinaryMatrix
	// CodeInvalidRadius corresponds to ErrInvalidRadius.
	CodeInvalidRadius
	// CodeInvalidRescaleMode corresponds to ErrInvalidRescaleMode.
	CodeInvalidRescaleMode
	// CodeInvalidWindow corresponds to ErrInvalidWindow.
	CodeInvalidWindow
	// CodeInvalidMinLength corresponds to ErrInvalidMinLength.
	CodeInvalidMinLength
	// CodeEmptyDistribution corresponds to ErrEmptyDistribution.
	CodeEmptyDistribution
	// CodeUnknown marks a non-nil error outside the sentinel set.
	CodeUnknown
)

// codeNames keeps String() allocation-free and greppable.
var codeNames = map[ErrorCode]string{
	CodeOK:                 "ok",
	CodeInsufficientData:   "insufficient_data",
	CodeNonSquareMatrix:    "non_square_matrix",
	CodeNotBinaryMatrix:    "not_binary_matrix",
	CodeInvalidRadius:      "invalid_radius",
	CodeInvalidRescaleMode: "invalid_rescale_mode",
	CodeInvalidWindow:      "invalid_window",
	CodeInvalidMinLength:   "invalid_min_length",
	CodeEmptyDistribution:  "empty_distribution",
	CodeUnknown:            "unknown",
}

// String returns a stable snake_case name for logs and persistence.
func (c ErrorCode) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}

	return "unknown"
}

// Code maps err to its ErrorCode by walking the wrap chain with errors.Is.
// A nil err maps to CodeOK; a non-nil err outside the sentinel set maps to
// CodeUnknown.
func Code(err error) ErrorCode {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, ErrInsufficientData):
		return CodeInsufficientData
	case errors.Is(err, ErrNonSquareMatrix):
		return CodeNonSquareMatrix
	case errors.Is(err, ErrNotBinaryMatrix):
		return CodeNotBinaryMatrix
	case errors.Is(err, ErrInvalidRadius):
		return CodeInvalidRadius
	case errors.Is(err, ErrInvalidRescaleMode):
		return CodeInvalidRescaleMode
	case errors.Is(err, ErrInvalidWindow):
		return CodeInvalidWindow
	case errors.Is(err, ErrInvalidMinLength):
		return CodeInvalidMinLength
	case errors.Is(err, ErrEmptyDistribution):
		return CodeEmptyDistribution
	default:
		return CodeUnknown
	}
}
