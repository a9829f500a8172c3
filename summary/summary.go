package summary

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/larkvale/chaindiag/ess"
	"github.com/larkvale/chaindiag/rhat"
)

// quantileProbs are the report probabilities, in column order.
var quantileProbs = [...]float64{0.025, 0.25, 0.5, 0.75, 0.975}

// Summary aggregates one or more chains of posterior samples into a
// per-parameter diagnostic report. Each chain is an (n x p) matrix with
// one sample per row and one parameter per column.
//
// New copies the chain data, so later writes by the caller do not reach
// the report. All diagnostics are computed once, on first request, and
// cached; a Summary is safe for concurrent use.
type Summary struct {
	chains  []*mat.Dense
	pooled  *mat.Dense
	names   []string
	runTime time.Duration
	rows    int
	params  int

	once sync.Once
	res  *Results
	err  error
}

// Results holds the computed diagnostics, one entry per parameter.
// Compute returns a fresh copy each call, so callers may modify it freely.
type Results struct {
	// Names labels the parameters, in column order.
	Names []string

	// Mean and Std are the moments of the pooled samples. Std is the
	// population standard deviation (divisor n, not n-1).
	Mean []float64
	Std  []float64

	// Quantiles holds, per parameter, the pooled 2.5%, 25%, 50%, 75%
	// and 97.5% quantiles under linear interpolation of order statistics.
	Quantiles [][]float64

	// Rhat holds the split-chain convergence diagnostic, nil when a
	// single chain was given.
	Rhat []float64

	// ESS holds the effective sample size of the pooled chains.
	ESS []float64

	// ESSPerSec is ESS divided by the run time in seconds, nil when no
	// run time was supplied.
	ESSPerSec []float64
}

// New validates the chains and prepares a lazy Summary over them. Every
// chain must be non-nil with the same non-empty (n x p) shape. The chain
// data is copied.
func New(chains []mat.Matrix, opts ...Option) (*Summary, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if len(chains) == 0 {
		return nil, fmt.Errorf("%w: got none", ErrNoChains)
	}
	for i, c := range chains {
		if c == nil {
			return nil, fmt.Errorf("%w: chain %d is nil", ErrShapeMismatch, i)
		}
	}
	rows, params := chains[0].Dims()
	if rows < 1 || params < 1 {
		return nil, fmt.Errorf("%w: chain 0 is %dx%d", ErrShapeMismatch, rows, params)
	}
	for i, c := range chains[1:] {
		r, p := c.Dims()
		if r != rows || p != params {
			return nil, fmt.Errorf("%w: chain 0 is %dx%d, chain %d is %dx%d",
				ErrShapeMismatch, rows, params, i+1, r, p)
		}
	}

	names := o.Names
	if len(names) == 0 {
		names = make([]string, params)
		for j := range names {
			names[j] = fmt.Sprintf("param %d", j+1)
		}
	} else if len(names) != params {
		return nil, fmt.Errorf("%w: got %d names for %d parameters",
			ErrNameCount, len(names), params)
	}

	s := &Summary{
		chains:  make([]*mat.Dense, len(chains)),
		pooled:  mat.NewDense(len(chains)*rows, params, nil),
		names:   append([]string(nil), names...),
		runTime: o.RunTime,
		rows:    rows,
		params:  params,
	}
	for i, c := range chains {
		s.chains[i] = mat.DenseCopyOf(c)
		s.pooled.Slice(i*rows, (i+1)*rows, 0, params).(*mat.Dense).Copy(c)
	}

	return s, nil
}

// Compute runs every diagnostic once and returns a copy of the cached
// results. Repeated calls are cheap.
func (s *Summary) Compute() (*Results, error) {
	s.ensure()
	if s.err != nil {
		return nil, s.err
	}

	return s.res.clone(), nil
}

// Mean returns the pooled per-parameter means.
func (s *Summary) Mean() ([]float64, error) {
	s.ensure()
	if s.err != nil {
		return nil, s.err
	}

	return append([]float64(nil), s.res.Mean...), nil
}

// Std returns the pooled per-parameter population standard deviations.
func (s *Summary) Std() ([]float64, error) {
	s.ensure()
	if s.err != nil {
		return nil, s.err
	}

	return append([]float64(nil), s.res.Std...), nil
}

// Quantiles returns, per parameter, the pooled 2.5%, 25%, 50%, 75% and
// 97.5% quantiles.
func (s *Summary) Quantiles() ([][]float64, error) {
	s.ensure()
	if s.err != nil {
		return nil, s.err
	}

	return cloneRows(s.res.Quantiles), nil
}

// Rhat returns the per-parameter split-chain diagnostic. With a single
// chain there is nothing to compare, so it reports ErrRhatNotApplicable
// rather than a number.
func (s *Summary) Rhat() ([]float64, error) {
	if len(s.chains) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrRhatNotApplicable, len(s.chains))
	}
	s.ensure()
	if s.err != nil {
		return nil, s.err
	}

	return append([]float64(nil), s.res.Rhat...), nil
}

// ESS returns the per-parameter effective sample size of the pooled chains.
func (s *Summary) ESS() ([]float64, error) {
	s.ensure()
	if s.err != nil {
		return nil, s.err
	}

	return append([]float64(nil), s.res.ESS...), nil
}

// ESSPerSecond returns the effective sampling rate. It reports
// ErrNoRunTime unless New was given WithRunTime.
func (s *Summary) ESSPerSecond() ([]float64, error) {
	if s.runTime == 0 {
		return nil, ErrNoRunTime
	}
	s.ensure()
	if s.err != nil {
		return nil, s.err
	}

	return append([]float64(nil), s.res.ESSPerSec...), nil
}

// Extract returns a copy of the pooled samples of one parameter, chains
// stacked in input order. It needs no diagnostics, so it works even on
// data the estimators reject.
func (s *Summary) Extract(param int) ([]float64, error) {
	if param < 0 || param >= s.params {
		return nil, fmt.Errorf("%w: got %d with %d parameters",
			ErrUnknownParameter, param, s.params)
	}

	col := make([]float64, len(s.chains)*s.rows)
	mat.Col(col, param, s.pooled)

	return col, nil
}

// ExtractAll returns a copy of the pooled sample matrix, chains stacked
// in input order.
func (s *Summary) ExtractAll() *mat.Dense {
	return mat.DenseCopyOf(s.pooled)
}

// Chains returns copies of the stored chains.
func (s *Summary) Chains() []*mat.Dense {
	out := make([]*mat.Dense, len(s.chains))
	for i, c := range s.chains {
		out[i] = mat.DenseCopyOf(c)
	}

	return out
}

// ParameterNames returns the parameter labels, in column order.
func (s *Summary) ParameterNames() []string {
	return append([]string(nil), s.names...)
}

// RunTime returns the sampling duration supplied to New, zero when none was.
func (s *Summary) RunTime() time.Duration { return s.runTime }

// NumChains returns the number of chains.
func (s *Summary) NumChains() int { return len(s.chains) }

// NumParameters returns the number of parameters per chain.
func (s *Summary) NumParameters() int { return s.params }

// ensure computes the diagnostics exactly once.
func (s *Summary) ensure() {
	s.once.Do(func() {
		s.res, s.err = s.compute()
	})
}

func (s *Summary) compute() (*Results, error) {
	total, params := s.pooled.Dims()

	res := &Results{
		Names:     append([]string(nil), s.names...),
		Mean:      make([]float64, params),
		Std:       make([]float64, params),
		Quantiles: make([][]float64, params),
	}

	col := make([]float64, total)
	for j := 0; j < params; j++ {
		mat.Col(col, j, s.pooled)
		res.Mean[j] = stat.Mean(col, nil)
		res.Std[j] = stat.PopStdDev(col, nil)
		sort.Float64s(col)
		res.Quantiles[j] = quantiles(col)
	}

	if len(s.chains) > 1 {
		ms := make([]mat.Matrix, len(s.chains))
		for i, c := range s.chains {
			ms[i] = c
		}
		rh, err := rhat.AllParams(ms)
		if err != nil {
			return nil, err
		}
		res.Rhat = rh
	}

	es, err := ess.ESS(s.pooled)
	if err != nil {
		return nil, err
	}
	res.ESS = es

	if s.runTime > 0 {
		res.ESSPerSec = make([]float64, params)
		for j, e := range res.ESS {
			res.ESSPerSec[j] = e / s.runTime.Seconds()
		}
	}

	return res, nil
}

// quantiles interpolates the report probabilities on one sorted column,
// matching numpy's default linear (type 7) rule: h = p*(n-1), blending
// the order statistics at floor(h) and floor(h)+1.
func quantiles(sorted []float64) []float64 {
	out := make([]float64, len(quantileProbs))
	for k, p := range quantileProbs {
		h := p * float64(len(sorted)-1)
		lo := int(h)
		frac := h - float64(lo)
		q := sorted[lo]
		if frac > 0 {
			q += frac * (sorted[lo+1] - sorted[lo])
		}
		out[k] = q
	}

	return out
}

func (r *Results) clone() *Results {
	out := &Results{
		Names:     append([]string(nil), r.Names...),
		Mean:      append([]float64(nil), r.Mean...),
		Std:       append([]float64(nil), r.Std...),
		Quantiles: cloneRows(r.Quantiles),
	}
	if r.Rhat != nil {
		out.Rhat = append([]float64(nil), r.Rhat...)
	}
	if r.ESS != nil {
		out.ESS = append([]float64(nil), r.ESS...)
	}
	if r.ESSPerSec != nil {
		out.ESSPerSec = append([]float64(nil), r.ESSPerSec...)
	}

	return out
}

func cloneRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = append([]float64(nil), row...)
	}

	return out
}
