// Package summary aggregates MCMC chains into a per-parameter diagnostic
// report: moments, quantiles, split-chain rhat and effective sample size,
// renderable as an aligned plain-text table.
//
// What
//
//   - Summary: holds one or more (n x p) sample chains, validated and
//     copied at construction. Diagnostics are computed once, on first
//     request, and cached.
//   - Results: the computed values per parameter. Mean and population
//     standard deviation plus the 2.5%, 25%, 50%, 75% and 97.5% quantiles
//     are taken over the pooled chains (stacked row-wise in input order);
//     rhat compares the chains as given; ESS is the effective sample size
//     of the pooled samples, optionally divided by the sampling run time.
//   - Table, WriteTable: the report as aligned plain text, column order
//     param, mean, std., 2.5%, 25%, 50%, 75%, 97.5%, rhat, ess, and
//     "ess per sec." when a run time was supplied.
//   - Extract, ExtractAll, Chains: copies of the pooled column, the pooled
//     matrix, and the chains themselves, for callers doing their own math.
//
// Why
//
//	The estimator packages answer one question each. After a sampling run
//	the practitioner wants all of them, for every parameter, in one table
//	that can be printed, logged, or parsed. This package is that join: one
//	validation pass, one computation pass, consistent column order.
//
// Concurrency
//
//	The cached computation is guarded internally, so a single Summary may
//	be shared by concurrent readers without external locking.
//
// Usage
//
//	s, err := summary.New(chains,
//	    summary.WithNames("mu", "sigma"),
//	    summary.WithRunTime(elapsed))
//	if err != nil {
//	    // ErrNoChains, ErrShapeMismatch, ErrNameCount, ErrInvalidRunTime
//	}
//	if err := s.WriteTable(os.Stdout); err != nil {
//	    // estimator errors surface here, e.g. ess.ErrDegenerateInput
//	}
//
// Errors
//
//   - ErrNoChains, ErrShapeMismatch, ErrNameCount, ErrInvalidRunTime
//     reject bad construction input.
//   - ErrRhatNotApplicable  from Rhat when only one chain was given; the
//     table renders "NA" in that column instead.
//   - ErrNoRunTime          from ESSPerSecond when no run time was given.
//   - ErrUnknownParameter   from Extract for an out-of-range index.
//   - Estimator failures (degenerate or insufficient data) surface
//     unchanged from the ess and rhat packages, parameter context included.
//
// Nothing here panics on user input and no NaN or Inf is ever returned in
// place of an error.
package summary
