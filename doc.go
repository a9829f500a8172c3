// Package chaindiag answers one question about MCMC output: can these
// samples be trusted yet?
//
// 🚀 What is chaindiag?
//
//	A small, focused convergence-diagnostics toolkit:
//		• Effective sample size: autocorrelation, truncation lag, ESS per parameter
//		• Split-chain rhat: warm-up trim, half-chain split, between/within variance
//		• Summary: pooled moments, quantiles, rhat & ESS in one plain-text table
//		• Chain IO: strict CSV loading and saving, one file per chain
//		• CLI: the same diagnostics over CSV files, scriptable
//
// ✨ Why chaindiag?
//
//   - Honest failure modes – sentinel errors for degenerate input, never NaN
//   - Deterministic – pure functions over your samples, no hidden state
//   - Concurrent-safe – estimators never mutate input; summaries cache internally
//
// Everything is organized under five subpackages:
//
//	ess/     — autocorrelation, truncation lag, effective sample size
//	rhat/    — split-chain potential scale reduction diagnostic
//	summary/ — per-parameter aggregation and the report table
//	chainio/ — CSV chain reading and writing
//	cmd/     — the chaindiag command-line tool
//
// A typical session:
//
//	values, err := rhat.AllParams(chains, rhat.WithWarmUp(0.25))
//	// values[j] near 1.0 → parameter j has converged
//
// Dive into examples/convergence for a complete run from dispersed
// starting points to the final report table.
//
//	go get github.com/larkvale/chaindiag
package chaindiag
