// SPDX-License-Identifier: MIT

// Package norm prepares raw time series for recurrence analysis.
//
// Distances are only meaningful when both series live on comparable
// scales, so every analysis run starts by passing its inputs through
// Series with one of four modes:
//
//   - None:   leave the series untouched.
//   - MinMax: map the series onto [0, 1].
//   - ZScore: subtract the mean, divide by the population deviation.
//   - Center: subtract the mean, keep the spread.
//
// The numeric values of the modes match the codes written into result
// files, so archived runs stay reproducible. Series always returns a
// fresh slice and never modifies its input; degenerate inputs (empty
// series, zero spread) surface as sentinel errors instead of NaNs.
package norm
