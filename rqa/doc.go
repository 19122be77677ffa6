// Package rqa performs Recurrence Quantification Analysis (RQA) on
// numeric time series: delay embedding, recurrence thresholding, and
// line-structure statistics.
//
// 🚀 What is RQA?
//
//	RQA quantifies how often and how regularly a dynamical system
//	revisits states in its reconstructed phase space.  It is widely
//	used in:
//	  • Physiology & motor coordination (postural sway, gait, HRV)
//	  • Conversation & interpersonal synchrony research
//	  • Nonlinear dynamics & chaos detection
//	  • Signal regime-change and drift analysis
//
// ✨ Key measures:
//   - %REC  — percent recurrence: density of recurrent points
//   - %DET  — percent determinism: recurrences forming diagonal lines
//   - MaxLine, MeanLine, Entropy — diagonal line-length structure
//   - %LAM, TrappingTime, Vmax, Divergence — vertical (laminar) structure
//   - TrendLower/TrendUpper — drift of recurrence density away from the
//     main diagonal (non-stationarity)
//   - DRP — diagonal recurrence profile: %REC as a function of lag
//
// ⚙️ Usage:
//
//	import "github.com/cartersale/Recurrence-Quantification-Analysis/rqa"
//
//	p := rqa.DefaultParams()
//	p.Dim, p.Lag = 3, 2
//	p.Radius = 0.2
//
//	d, err := rqa.Distance(series, series, p.Dim, p.Lag)
//	if err != nil { ... }
//	res, err := rqa.Stats(d, p, rqa.ModeAuto)
//	if err != nil { ... }
//	fmt.Println(res.PercentRecurrence, res.PercentDeterminism)
//
// Pipeline: Distance → Threshold → (DiagonalLines, VerticalLines) →
// Histogram → Entropy → Stats, or Threshold → Profile for a DRP.
// Every stage validates its own inputs and returns a sentinel error on
// violation; degenerate-but-valid outcomes (no lines above the minimum
// length, no vertical lines) produce zeroed statistics, never errors.
//
// Performance:
//
//   - Distance: O(n²·m) time, O(n²) memory; rows may be computed on a
//     bounded worker pool (WithWorkers) with bit-identical results.
//   - Threshold and line scans: O(n²) time.
//   - All calls are stateless and safe to run concurrently.
package rqa
