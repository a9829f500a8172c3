// Package ess estimates the effective sample size (ESS) of MCMC output
// from its empirical autocorrelation.
//
// What
//
//   - Autocorrelation: the normalized lag-wise self-correlation of one
//     parameter's sample sequence. The sequence is centered by its mean and
//     scaled by its population standard deviation and by sqrt(n), so the
//     lag-0 value is 1 and values are comparable across inputs.
//   - TruncationLag: the number of leading lags whose autocorrelation has not
//     yet turned negative. A value of exactly 0 keeps the run alive; only a
//     strictly negative value ends it. Summing noisy negative tail
//     correlations into the ESS estimate would bias it upward, so the sum
//     stops at the first sign change.
//   - Single: ESS of one parameter sequence,
//     ESS = n / (1 + 2*sum(rho[0:T])),
//     where rho is the autocorrelation and T the truncation lag. Note the sum
//     includes lag 0, so ESS never exceeds n/3; an independent white-noise
//     sequence lands near that ceiling.
//   - ESS: Single applied to every column of an (n x p) sample matrix,
//     returning one value per parameter in column order.
//
// Why
//
//	Correlated chains carry less information than their raw length suggests.
//	ESS estimates how many independent draws a chain is worth, which is the
//	quantity that governs Monte Carlo standard errors and drives "have we
//	sampled enough" decisions.
//
// Complexity
//
//   - Autocorrelation: O(n^2) time, O(n) space (direct lag loop).
//   - Single: O(n^2) time dominated by autocorrelation.
//   - ESS: O(n^2 * p) time, O(n) scratch space.
//
// Usage
//
//	draws := []float64{ /* one parameter's samples */ }
//	e, err := ess.Single(draws)
//	if err != nil {
//	    // ErrInsufficientData, ErrDegenerateInput
//	}
//
//	// Per-parameter over a sample matrix (rows = draws, cols = parameters):
//	values, err := ess.ESS(samples)
//
// Errors
//
//   - ErrInvalidShape      if the sample matrix is nil.
//   - ErrInsufficientData  if a sequence is empty or the matrix has fewer
//     than two rows.
//   - ErrDegenerateInput   if a sequence has zero variance, or the truncated
//     autocorrelation sum drives the ESS denominator to zero or below.
//
// All failures are reported as sentinel errors; nothing here panics on user
// input and no NaN or Inf is ever returned in place of an error.
package ess
