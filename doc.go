// Package recurrence is the umbrella for a recurrence quantification
// analysis (RQA) toolkit: reconstruct a delay-embedded phase space from
// one or two time series, threshold the pairwise distances into a binary
// recurrence matrix, and quantify its line structure.
//
// 🚀 What does it do?
//
//	A pure-computation engine plus thin collaborators:
//		• Embedding & distances: time-delay embedding → n2×n2 distance matrix
//		• Thresholding: rescale (none/mean/max), radius, Theiler window
//		• Quantification: %REC, %DET, Lmax, entropy, trends, %LAM, TT, Vmax
//		• Profiles: diagonal recurrence profile (recurrence rate per lag)
//		• Normalization, plotting, CSV archives, deterministic demo signals
//
// ✨ Why this layout?
//
//   - The engine (rqa/) is stateless and synchronous — safe to call from
//     any number of goroutines, each call owns its matrices
//   - Collaborators are narrow: norm/ scales input, rqaplot/ renders,
//     statsfile/ archives, analysis/ sequences them, cmd/rqa fronts them
//   - Sentinel errors everywhere — no magic numeric returns, no panics
//     on user input
//
// Package map:
//
//	rqa/       — the quantification engine (distance, threshold, stats, DRP)
//	norm/      — series normalization (none, minmax, zscore, center)
//	synth/     — deterministic test/demo signal generators
//	statsfile/ — legacy-compatible CSV persistence
//	rqaplot/   — recurrence/distance/profile plots (gonum/plot)
//	analysis/  — auto/cross orchestration wrappers
//	cmd/rqa    — the command-line front end
//
// Quick sketch — a recurrence plot of a periodic series shows diagonal
// stripes; the spacing between stripes is the period:
//
//	j ↑   ╲  ╲  ╲
//	  │  ╲  ╲  ╲
//	  │ ╲  ╲  ╲
//	  └──────────→ i
//
// Start with analysis.DefaultRequest, or go straight to rqa.Distance →
// rqa.Stats for the raw engine.
//
//	go get github.com/cartersale/Recurrence-Quantification-Analysis
package recurrence
