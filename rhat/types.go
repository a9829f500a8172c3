// Package rhat defines options and error sentinels for the split-chain
// potential-scale-reduction diagnostic.
package rhat

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for rhat computation.
var (
	// ErrInsufficientChains is returned when fewer than two chains are
	// supplied. Rhat compares chains against each other and is undefined
	// for a single chain.
	ErrInsufficientChains = errors.New("rhat: at least two chains required")

	// ErrInvalidShape is returned when chains disagree in length or
	// dimensions, or a nil chain matrix is passed.
	ErrInvalidShape = errors.New("rhat: chains must share one shape")

	// ErrInsufficientData is returned when fewer than two samples per
	// half-chain remain after warm-up trimming and splitting.
	ErrInsufficientData = errors.New("rhat: too few samples per chain")

	// ErrInvalidWarmUp is returned when the warm-up fraction lies outside
	// [0, 1].
	ErrInvalidWarmUp = errors.New("rhat: warm-up fraction out of range")

	// ErrDegenerateVariance is returned when the mean within-chain variance
	// is zero, which leaves the variance ratio undefined.
	ErrDegenerateVariance = errors.New("rhat: zero within-chain variance")
)

// Option configures rhat computation via functional arguments.
// An invalid value (e.g. a warm-up fraction of 1.5) is recorded internally
// and surfaced as its sentinel when Rhat or AllParams is invoked.
type Option func(*Options)

// Options holds the tunable parameters of the diagnostic.
type Options struct {
	// WarmUp is the fraction of leading samples dropped from every chain
	// before splitting, in [0, 1]. The number of dropped samples is
	// floor(WarmUp * n).
	WarmUp float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no warm-up trimming.
func DefaultOptions() Options {
	return Options{WarmUp: 0, err: nil}
}

// WithWarmUp discards the leading fraction f of every chain.
//
//	0 <= f <= 1: drop floor(f*n) samples per chain
//	anything else (including NaN): ErrInvalidWarmUp
func WithWarmUp(f float64) Option {
	return func(o *Options) {
		if math.IsNaN(f) || f < 0 || f > 1 {
			o.err = fmt.Errorf("%w: got %g", ErrInvalidWarmUp, f)
			return
		}
		o.WarmUp = f
	}
}
