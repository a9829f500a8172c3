package rhat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Rhat computes the scalar split-chain diagnostic for a collection of
// single-parameter chains, one row per chain.
//
// Every chain is trimmed by the configured warm-up fraction and split in
// half; the diagnostic then compares between-chain and within-chain
// variance over the resulting half-chains:
//
//	rhat = sqrt((n'-1)/n' + B/(W*n'))
//
// Example:
//
//	r, err := rhat.Rhat(chains, rhat.WithWarmUp(0.25))
func Rhat(chains [][]float64, opts ...Option) (float64, error) {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	if len(chains) < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrInsufficientChains, len(chains))
	}
	n := len(chains[0])
	for i, c := range chains[1:] {
		if len(c) != n {
			return 0, fmt.Errorf("%w: chain 0 has %d samples, chain %d has %d",
				ErrInvalidShape, n, i+1, len(c))
		}
	}

	return compute(chains, o.WarmUp)
}

// AllParams computes the diagnostic for every parameter of multi-parameter
// chains, one (n x p) sample matrix per chain. The scalar pipeline runs on
// each parameter column independently; the result holds one value per
// parameter, in column order.
//
// Example:
//
//	values, err := rhat.AllParams(chainMatrices, rhat.WithWarmUp(0.25))
func AllParams(chains []mat.Matrix, opts ...Option) ([]float64, error) {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if len(chains) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientChains, len(chains))
	}
	for i, ch := range chains {
		if ch == nil {
			return nil, fmt.Errorf("%w: chain %d is nil", ErrInvalidShape, i)
		}
	}
	n, p := chains[0].Dims()
	for i, ch := range chains[1:] {
		ni, pi := ch.Dims()
		if ni != n || pi != p {
			return nil, fmt.Errorf("%w: chain 0 is %dx%d, chain %d is %dx%d",
				ErrInvalidShape, n, p, i+1, ni, pi)
		}
	}

	// One reusable column buffer per chain; refilled for every parameter.
	cols := make([][]float64, len(chains))
	for i := range cols {
		cols[i] = make([]float64, n)
	}

	out := make([]float64, p)
	for j := 0; j < p; j++ {
		for i, ch := range chains {
			mat.Col(cols[i], j, ch)
		}
		r, err := compute(cols, o.WarmUp)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", j, err)
		}
		out[j] = r
	}

	return out, nil
}

// compute trims, splits, and combines rectangular chains into the scalar
// diagnostic. Callers have already validated the chain count and shapes.
func compute(chains [][]float64, warmUp float64) (float64, error) {
	n := len(chains[0])
	drop := int(warmUp * float64(n))
	half := (n - drop) / 2
	if half < 2 {
		return 0, fmt.Errorf("%w: %d per half-chain after trimming", ErrInsufficientData, half)
	}

	// First and last half of every trimmed chain become separate chains.
	// The halves alias the caller's slices; nothing below mutates them.
	halves := make([][]float64, 0, 2*len(chains))
	for _, c := range chains {
		trimmed := c[drop:]
		halves = append(halves, trimmed[:half], trimmed[len(trimmed)-half:])
	}

	w := within(halves)
	b := between(halves)
	if w == 0 {
		return 0, ErrDegenerateVariance
	}

	nf := float64(half)

	return math.Sqrt((nf-1)/nf + b/(w*nf)), nil
}

// within returns the mean over chains of the unbiased per-chain sample
// variance.
func within(chains [][]float64) float64 {
	var sum float64
	for _, c := range chains {
		sum += stat.Variance(c, nil)
	}

	return sum / float64(len(chains))
}

// between returns the unbiased variance of the per-chain means, scaled by
// the number of samples per chain.
func between(chains [][]float64) float64 {
	means := make([]float64, len(chains))
	for i, c := range chains {
		means[i] = stat.Mean(c, nil)
	}

	return float64(len(chains[0])) * stat.Variance(means, nil)
}
