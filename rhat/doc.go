// Package rhat computes the split-chain potential scale reduction
// diagnostic for MCMC output.
//
// What
//
//   - Rhat: the scalar diagnostic for a collection of single-parameter
//     chains, one row per chain.
//   - AllParams: the per-parameter diagnostic for multi-parameter chains,
//     one (n x p) sample matrix per chain, applying the scalar pipeline to
//     every parameter column independently.
//
// Both run the same sequence of steps:
//
//  1. Validate: at least two chains, equal shapes, warm-up in [0, 1].
//  2. Trim: drop the first floor(warm_up * n) samples of every chain.
//  3. Split: with n' = floor(remaining/2), stack the first n' and last n'
//     samples of each chain as separate chains. Splitting doubles the chain
//     count and exposes within-chain drift: a chain whose two halves live in
//     different regions counts against convergence just like two disagreeing
//     chains would.
//  4. W: the mean over chains of the unbiased per-chain sample variance.
//  5. B: the unbiased variance of the chain means, scaled by n'.
//  6. Combine: rhat = sqrt((n'-1)/n' + B/(W*n')).
//
// Values near 1 indicate the chains are mixing over the same distribution;
// values well above 1 indicate disagreement between chains (or drift inside
// one) and mean the samples cannot yet be trusted.
//
// Why
//
//	Comparing several independently started chains is the standard way to
//	detect when a sampler is stuck in one mode or still drifting away from
//	its starting point. Within-chain autocorrelation alone cannot reveal
//	either failure.
//
// Complexity
//
//   - Rhat: O(m*n) time, O(m) extra space (half-chains alias the input).
//   - AllParams: O(m*n*p) time, O(m*n) scratch space for column extraction.
//
// Usage
//
//	r, err := rhat.Rhat(chains)
//	if err != nil {
//	    // ErrInsufficientChains, ErrInvalidShape, ErrInsufficientData,
//	    // ErrInvalidWarmUp, ErrDegenerateVariance
//	}
//
//	// Discard the first quarter of every chain first:
//	r, err = rhat.Rhat(chains, rhat.WithWarmUp(0.25))
//
//	// Per-parameter over multi-parameter chains:
//	values, err := rhat.AllParams(chainMatrices, rhat.WithWarmUp(0.25))
//
// Errors
//
//   - ErrInsufficientChains  if fewer than two chains are supplied.
//   - ErrInvalidShape        if chains disagree in shape or one is nil.
//   - ErrInsufficientData    if fewer than two samples per half-chain remain
//     after trimming and splitting (warm-up 1.0 always trips this).
//   - ErrInvalidWarmUp       if the warm-up fraction is outside [0, 1].
//   - ErrDegenerateVariance  if the mean within-chain variance is zero; the
//     ratio is undefined and no NaN or Inf is ever returned in its place.
//
// The input is never mutated and no state is kept between calls, so
// concurrent use on any data is safe.
package rhat
