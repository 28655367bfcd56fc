// SPDX-License-Identifier: MIT

package expansion

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/multipole/charges"
	"github.com/katalvlaran/multipole/vector"
)

// ConvergencePoint compares the multipole potential truncated at Order with
// the exact potential.
type ConvergencePoint struct {
	Order    int     `json:"order"`
	Value    float64 `json:"value"`
	Exact    float64 `json:"exact"`
	AbsError float64 `json:"abs_error"`
	// RelError is AbsError/|Exact|, or AbsError when Exact is 0.
	RelError float64 `json:"rel_error"`
}

// Convergence evaluates the expansion of set at rs truncated at each of the
// given orders and measures it against charges.Potential.
//
// The regime is selected once (as in Evaluate) and the coefficients are
// built once up to the largest order; truncation at order n sums the first
// n+1 of them, which is bit-identical to Evaluate with WithOrder(n).
// WithOrder is ignored.
//
// Errors:
//   - ErrNegativeOrder for any negative order;
//   - charges.ErrCoincident when rs sits on a charge;
//   - ErrNonFinite when a truncation overflows (see Evaluate);
//   - Set and vector validation errors.
func Convergence(rs vector.Vec, set charges.Set, orders []int, opts ...Option) ([]ConvergencePoint, Regime, error) {
	if err := validate(rs, set); err != nil {
		return nil, nil, fmt.Errorf("Convergence: %w", err)
	}
	for _, n := range orders {
		if n < 0 {
			return nil, nil, fmt.Errorf("Convergence: order=%d: %w", n, ErrNegativeOrder)
		}
	}
	if len(orders) == 0 {
		return nil, nil, nil
	}
	exact, err := charges.Potential(set, rs)
	if err != nil {
		return nil, nil, fmt.Errorf("Convergence: %w", err)
	}
	o := gatherOptions(opts...)

	b, _ := set.Bounds()
	rmag := vector.Mag(rs)
	regime, _ := Select(rmag, b, o.eps)
	k := unit(set, regime, o.eps)
	coes := coefficients(rs, set, slices.Max(orders), regime, o.eps, k)

	points := make([]ConvergencePoint, len(orders))
	for i, n := range orders {
		v := assemble(coes[:n+1], rmag, regime, o.eps, k)
		if err := checkFinite(v); err != nil {
			return nil, nil, fmt.Errorf("Convergence: order=%d: %w", n, err)
		}
		abs := math.Abs(v - exact)
		rel := abs
		if exact != 0 {
			rel = abs / math.Abs(exact)
		}
		points[i] = ConvergencePoint{Order: n, Value: v, Exact: exact, AbsError: abs, RelError: rel}
	}

	return points, regime, nil
}
