package ess

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Sentinel errors for ESS estimation.
var (
	// ErrInvalidShape is returned when a nil sample matrix is passed.
	ErrInvalidShape = errors.New("ess: sample matrix is nil")

	// ErrInsufficientData is returned when too few samples are supplied
	// (an empty sequence, or a matrix with fewer than two rows).
	ErrInsufficientData = errors.New("ess: at least two samples required")

	// ErrDegenerateInput is returned when a sequence has zero variance or
	// the ESS denominator is driven to zero or below.
	ErrDegenerateInput = errors.New("ess: degenerate input")
)

// Autocorrelation computes the normalized autocorrelation of x for lags
// 0..n-1, where n = len(x).
//
// The sequence is centered by its mean and scaled by its population standard
// deviation times sqrt(n), so the lag-0 value is 1. The returned slice holds
// the non-negative-lag half of the full self-correlation of the scaled
// sequence.
//
// Errors:
//   - ErrInsufficientData if x is empty.
//   - ErrDegenerateInput  if x has zero variance (constant input; n == 1 is
//     a special case of this).
func Autocorrelation(x []float64) ([]float64, error) {
	n := len(x)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty sequence", ErrInsufficientData)
	}

	mean := stat.Mean(x, nil)
	sd := stat.PopStdDev(x, nil)
	if sd == 0 {
		return nil, fmt.Errorf("%w: sequence has zero variance", ErrDegenerateInput)
	}

	// Scale so that the lag-0 term of the self-correlation is exactly the
	// normalized variance: z[i] = (x[i] - mean) / (sd * sqrt(n)).
	scale := sd * math.Sqrt(float64(n))
	z := make([]float64, n)
	for i, v := range x {
		z[i] = (v - mean) / scale
	}

	rho := make([]float64, n)
	for lag := 0; lag < n; lag++ {
		var s float64
		for i := 0; i+lag < n; i++ {
			s += z[i] * z[i+lag]
		}
		rho[lag] = s
	}

	return rho, nil
}

// TruncationLag returns the number of consecutive leading lags of rho that
// have not yet turned negative. A lag with autocorrelation exactly 0 keeps
// the run alive; the first strictly negative value ends it. If rho never
// goes negative, the full length is returned.
func TruncationLag(rho []float64) int {
	for lag, r := range rho {
		if r < 0 {
			return lag
		}
	}

	return len(rho)
}

// Single computes the effective sample size of one parameter sequence:
//
//	ESS = n / (1 + 2*sum(rho[0:T]))
//
// where rho is the autocorrelation of x and T its truncation lag. The sum
// includes lag 0.
//
// Errors: those of Autocorrelation, plus ErrDegenerateInput if the
// denominator is zero or negative.
func Single(x []float64) (float64, error) {
	rho, err := Autocorrelation(x)
	if err != nil {
		return 0, err
	}

	t := TruncationLag(rho)
	denom := 1 + 2*floats.Sum(rho[:t])
	if denom <= 0 {
		return 0, fmt.Errorf("%w: non-positive ESS denominator %g", ErrDegenerateInput, denom)
	}

	return float64(len(x)) / denom, nil
}

// ESS computes the effective sample size of every parameter in a sample
// matrix (rows = draws, columns = parameters), applying Single to each
// column independently. The result holds one value per parameter, in
// column order.
//
// Errors:
//   - ErrInvalidShape      if samples is nil.
//   - ErrInsufficientData  if the matrix has fewer than two rows.
//   - Per-column failures from Single, wrapped with the parameter index.
func ESS(samples mat.Matrix) ([]float64, error) {
	if samples == nil {
		return nil, ErrInvalidShape
	}
	n, p := samples.Dims()
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientData, n)
	}

	out := make([]float64, p)
	col := make([]float64, n)
	for j := 0; j < p; j++ {
		mat.Col(col, j, samples)
		e, err := Single(col)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", j, err)
		}
		out[j] = e
	}

	return out, nil
}
