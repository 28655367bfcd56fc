// SPDX-License-Identifier: MIT

package expansion

import (
	"fmt"
	"math"

	"github.com/katalvlaran/multipole/charges"
	"github.com/katalvlaran/multipole/kahan"
	"github.com/katalvlaran/multipole/vector"
)

// Result is the outcome of one multipole evaluation.
type Result struct {
	Value  float64        // multipole potential
	Regime Regime         // expansion used
	Order  int            // highest order summed
	RMag   float64        // |rs|
	Bounds charges.Bounds // charge annulus

	// Ambiguous is true when |rs| fell inside [Rmin−eps, Rmax+eps] and the
	// midpoint heuristic chose the regime. Neither series is guaranteed to
	// converge there; treat Value as a best-effort approximation.
	Ambiguous bool
}

// Select chooses the expansion for an observation radius rmag:
//
//	rmag > RMax+eps → Outside
//	rmag < RMin−eps → Inside
//	otherwise       → Outside if rmag >= (RMin+RMax)/2, else Inside
//
// The second result reports the last branch. That midpoint rule is a
// heuristic with no convergence guarantee; ties go to Outside.
func Select(rmag float64, b charges.Bounds, eps float64) (Regime, bool) {
	switch {
	case rmag > b.RMax+eps:
		return Outside, false
	case rmag < b.RMin-eps:
		return Inside, false
	}

	mid := 0.5 * (b.RMin + b.RMax)
	if rmag >= mid {
		return Outside, true
	}

	return Inside, true
}

// Assemble sums the per-order terms of coes at radius rmag with compensated
// summation, building the powers of rmag by repeated multiplication:
//
//	Outside: Σ_n coes[n] / rmag^(n+1)   (0 when rmag < eps)
//	Inside:  Σ_n coes[n] · rmag^n
//
// Errors: ErrNilRegime.
//
// Complexity: O(len(coes)).
func Assemble(coes []float64, rmag float64, regime Regime, eps float64) (float64, error) {
	if regime == nil {
		return 0, fmt.Errorf("Assemble: %w", ErrNilRegime)
	}

	return assemble(coes, rmag, regime, eps, 0), nil
}

// assemble sums coefficients built in units of 2^k at the plain radius
// rmag; the unit is removed with one exact Ldexp.
func assemble(coes []float64, rmag float64, regime Regime, eps float64, k int) float64 {
	if regime.degenerate(rmag, eps) {
		return 0
	}

	terms := make([]float64, len(coes))
	regime.observerPowers(math.Ldexp(rmag, -k), terms)
	for n, c := range coes {
		terms[n] *= c
	}

	return math.Ldexp(kahan.Sum(terms), -k)
}

// Evaluate computes the multipole potential of set at rs and reports how it
// was obtained.
//
// Implementation:
//   - Stage 1: validate rs and set; resolve options (order, eps, logger).
//   - Stage 2: Bounds of set, |rs|, Select the regime (once).
//   - Stage 3: Coefficients for that regime up to the configured order.
//   - Stage 4: Assemble.
//
// Radii are measured in a power-of-two unit near Rmax (Outside) or Rmin
// (Inside) so the powers up to the default order stay finite at any length
// scale.
//
// Errors:
//   - Set and vector validation errors, wrapped with "Evaluate";
//   - ErrNonFinite when the series overflows, which only happens deep in
//     the ambiguous annulus where neither expansion converges.
//
// Complexity: O(len(set) · order).
func Evaluate(rs vector.Vec, set charges.Set, opts ...Option) (Result, error) {
	if err := validate(rs, set); err != nil {
		return Result{}, fmt.Errorf("Evaluate: %w", err)
	}
	o := gatherOptions(opts...)

	b, _ := set.Bounds()
	rmag := vector.Mag(rs)
	regime, ambiguous := Select(rmag, b, o.eps)
	if ambiguous {
		o.logger.Debug("observation radius inside charge annulus, using midpoint heuristic",
			"rmag", rmag, "rmin", b.RMin, "rmax", b.RMax, "regime", regime.String())
	}

	k := unit(set, regime, o.eps)
	coes := coefficients(rs, set, o.order, regime, o.eps, k)
	v := assemble(coes, rmag, regime, o.eps, k)
	if err := checkFinite(v); err != nil {
		return Result{}, fmt.Errorf("Evaluate: rmag=%v regime=%s: %w", rmag, regime, err)
	}

	return Result{
		Value:     v,
		Regime:    regime,
		Order:     o.order,
		RMag:      rmag,
		Bounds:    b,
		Ambiguous: ambiguous,
	}, nil
}

// Potential returns the multipole potential of set at rs and the regime
// used. It is Evaluate without the diagnostics.
func Potential(rs vector.Vec, set charges.Set, opts ...Option) (float64, Regime, error) {
	r, err := Evaluate(rs, set, opts...)
	if err != nil {
		return 0, nil, err
	}

	return r.Value, r.Regime, nil
}

func checkFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNonFinite
	}

	return nil
}
