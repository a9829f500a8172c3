package summary_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/larkvale/chaindiag/summary"
)

// ExampleSummary_Compute aggregates two short, perfectly mixing chains.
// Both chains repeat the same pattern, so rhat sits at its finite-sample
// floor sqrt((n'-1)/n'), while the alternating samples are anticorrelated
// and cap the effective sample size at a third of the pooled count.
func ExampleSummary_Compute() {
	chain := func() mat.Matrix {
		return mat.NewDense(4, 1, []float64{1, 2, 1, 2})
	}

	s, err := summary.New([]mat.Matrix{chain(), chain()})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := s.Compute()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("mean %.4f\n", res.Mean[0])
	fmt.Printf("std. %.4f\n", res.Std[0])
	fmt.Printf("rhat %.4f\n", res.Rhat[0])
	fmt.Printf("ess  %.4f\n", res.ESS[0])
	// Output:
	// mean 1.5000
	// std. 0.5000
	// rhat 0.7071
	// ess  2.6667
}

// ExampleSummary_Extract pools one parameter's samples, chains stacked in
// input order.
func ExampleSummary_Extract() {
	a := mat.NewDense(3, 1, []float64{1, 2, 3})
	b := mat.NewDense(3, 1, []float64{4, 5, 6})

	s, err := summary.New([]mat.Matrix{a, b})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	col, err := s.Extract(0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(col)
	// Output:
	// [1 2 3 4 5 6]
}
