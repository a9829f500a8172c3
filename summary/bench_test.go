package summary_test

import (
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/larkvale/chaindiag/summary"
)

// BenchmarkCompute measures one full aggregation pass (construction,
// pooling, moments, quantiles, rhat, ESS) over four N x P chains.
func BenchmarkCompute(b *testing.B) {
	const (
		M = 4
		N = 2000
		P = 4
	)
	chains := make([]mat.Matrix, M)
	for c := range chains {
		norm := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(uint64(200+c), 0)}
		data := make([]float64, N*P)
		for i := range data {
			data[i] = norm.Rand()
		}
		chains[c] = mat.NewDense(N, P, data)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s, err := summary.New(chains)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := s.Compute(); err != nil {
			b.Fatal(err)
		}
	}
}
