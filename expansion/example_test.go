// SPDX-License-Identifier: MIT

package expansion_test

import (
	"fmt"

	"github.com/katalvlaran/multipole/charges"
	"github.com/katalvlaran/multipole/expansion"
	"github.com/katalvlaran/multipole/vector"
)

// ExamplePotential evaluates the square of unit charges from both regimes.
func ExamplePotential() {
	set, _ := charges.Square(1, 1)

	for _, rs := range []vector.Vec{{2, 0}, {0.01, 0}} {
		v, regime, err := expansion.Potential(rs, set)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%v %s %.6f\n", rs, regime, v)
	}
	// Output:
	// [2 0] outside 2.046669
	// [0.01 0] inside 2.828462
}

// ExampleEvaluate shows the metadata returned alongside the value.
func ExampleEvaluate() {
	set := charges.Set{
		{Q: 1, Pos: vector.Vec{1, 0}},
		{Q: 1, Pos: vector.Vec{0, 3}},
	}

	res, _ := expansion.Evaluate(vector.Vec{0, 1.5}, set, expansion.WithOrder(20))
	fmt.Printf("regime=%s ambiguous=%t rmin=%.1f rmax=%.1f\n",
		res.Regime, res.Ambiguous, res.Bounds.RMin, res.Bounds.RMax)
	// Output:
	// regime=inside ambiguous=true rmin=1.0 rmax=3.0
}

// ExampleConvergence prints the first truncations of the outside series.
func ExampleConvergence() {
	set, _ := charges.Square(1, 1)

	points, regime, _ := expansion.Convergence(vector.Vec{2, 0}, set, []int{0, 2, 4})
	fmt.Println(regime)
	for _, p := range points {
		fmt.Printf("n=%d V=%.4f exact=%.4f\n", p.Order, p.Value, p.Exact)
	}
	// Output:
	// outside
	// n=0 V=2.0000 exact=2.0467
	// n=2 V=2.2500 exact=2.0467
	// n=4 V=2.0469 exact=2.0467
}

// ExampleSeries reuses one set of coefficients along a ray.
func ExampleSeries() {
	set, _ := charges.Square(1, 1)
	ser, _ := expansion.NewSeries(vector.Vec{1, 0}, set, expansion.Outside, expansion.WithOrder(0))

	for _, r := range []float64{2, 4, 8} {
		v, _ := ser.At(r)
		fmt.Printf("V(%g) = %g\n", r, v)
	}
	// Output:
	// V(2) = 2
	// V(4) = 1
	// V(8) = 0.5
}
