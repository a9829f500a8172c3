package rhat_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/larkvale/chaindiag/rhat"
)

// ExampleRhat runs the diagnostic on two copies of one chain whose second
// half repeats its first half. All four half-chains then share one mean,
// so only the finite-sample floor sqrt((n'-1)/n') remains, just below 1.
func ExampleRhat() {
	chain := make([]float64, 100)
	for i := range chain {
		chain[i] = float64(i % 50)
	}

	r, err := rhat.Rhat([][]float64{chain, chain})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.4f\n", r)
	// Output:
	// 0.9899
}

// ExampleAllParams judges every parameter of multi-parameter chains at
// once. Column 1 is an affine copy of column 0, and the diagnostic is
// invariant under affine maps, so both parameters report the same value.
func ExampleAllParams() {
	build := func() mat.Matrix {
		m := mat.NewDense(8, 2, nil)
		for i := 0; i < 8; i++ {
			v := float64(i%4 + 1)
			m.Set(i, 0, v)
			m.Set(i, 1, 2*v+10)
		}

		return m
	}

	values, err := rhat.AllParams([]mat.Matrix{build(), build()})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.4f %.4f\n", values[0], values[1])
	// Output:
	// 0.8660 0.8660
}
