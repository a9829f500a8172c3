package summary

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors returned by this package. Callers should match them
// with errors.Is, since every returned error wraps one of these with
// the offending values.
var (
	// ErrNoChains is returned by New when the chain slice is empty.
	ErrNoChains = errors.New("summary: at least one chain required")

	// ErrShapeMismatch is returned by New when a chain is nil, empty,
	// or sized differently from the first chain.
	ErrShapeMismatch = errors.New("summary: chains must share one non-empty shape")

	// ErrNameCount is returned by New when the number of supplied names
	// differs from the number of parameters.
	ErrNameCount = errors.New("summary: name count must match parameter count")

	// ErrInvalidRunTime is returned when a non-positive run time is supplied.
	ErrInvalidRunTime = errors.New("summary: run time must be positive")

	// ErrRhatNotApplicable is returned by Rhat when only one chain was
	// given, so between-chain comparison is undefined.
	ErrRhatNotApplicable = errors.New("summary: rhat needs at least two chains")

	// ErrNoRunTime is returned by ESSPerSecond when no run time was supplied.
	ErrNoRunTime = errors.New("summary: no run time provided")

	// ErrUnknownParameter is returned by Extract for an out-of-range index.
	ErrUnknownParameter = errors.New("summary: parameter index out of range")
)

// Options configures a Summary. Use the With* helpers; the zero value of
// each field means "not supplied".
type Options struct {
	// Names labels the parameters, in column order. When empty, parameters
	// are named "param 1".."param p".
	Names []string

	// RunTime is the wall-clock duration of the sampling run. When set,
	// the report gains an "ess per sec." column.
	RunTime time.Duration

	// err records the first invalid option, surfaced by New.
	err error
}

// DefaultOptions returns the baseline configuration: generated parameter
// names and no run time.
func DefaultOptions() Options {
	return Options{}
}

// Option mutates Options inside New.
type Option func(*Options)

// WithNames labels the parameters in column order. The count must match
// the parameter count of the chains handed to New.
func WithNames(names ...string) Option {
	return func(o *Options) {
		o.Names = names
	}
}

// WithRunTime records the wall-clock duration of the sampling run,
// enabling the effective-samples-per-second column.
//
//	d > 0: valid
//	otherwise: New reports ErrInvalidRunTime
func WithRunTime(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: got %v", ErrInvalidRunTime, d)
			return
		}
		o.RunTime = d
	}
}
