// Package results derives the analyzer's reports from a resolved circuit:
//
//   - LAT        — per-signal mean and standard deviation, sorted by name
//   - Correlation — the full (or subset) pairwise correlation matrix,
//     backed by a symmetric dense store
//   - CriticalPaths — the top-N paths by expected delay, reconstructed by
//     backtracking the max-mean input at every instance
//   - Sensitivity — gate-delay impact ranking: reverse-mode gradients of
//     a smooth log-sum-exp objective over the worst endpoints
//
// All computations are read-only over the circuit graph; moment and
// covariance evaluation is delegated to the rv layer and therefore
// memoized across reports. Formatters render each report onto an
// io.Writer in the analyzer's plain-text layout (see format.go).
package results
