// SPDX-License-Identifier: MIT

package expansion

import (
	"fmt"
	"math"

	"github.com/katalvlaran/multipole/charges"
	"github.com/katalvlaran/multipole/legendre"
	"github.com/katalvlaran/multipole/vector"
)

// Coefficients returns the nmax+1 multipole coefficients of set, seen from
// the direction of rs, in the given regime:
//
//	Outside: c_n = Σ_i q_i · r_i^n · P_n(cos θ_i)
//	Inside:  c_n = Σ_i q_i · P_n(cos θ_i) / r_i^(n+1)   (0 for r_i <= eps)
//
// Powers of r_i are built by repeated multiplication in order of n. At
// high orders the plain coefficients leave the float64 range unless the
// radii are close to 1; Evaluate and Series work in scaled units instead.
//
// Only the direction of rs matters; its length does not enter the
// coefficients. Charges are visited in Set order and orders in 0..nmax,
// so the output is bit-reproducible for fixed inputs.
//
// nmax is explicit here; WithOrder is ignored. WithEpsilon sets the
// origin-charge threshold of the Inside formula.
//
// Errors:
//   - ErrNilRegime, ErrNegativeOrder;
//   - Set and vector validation errors (charges.ErrEmptySet,
//     vector.ErrDimensionMismatch, ...).
//
// Complexity: O(len(set) · (dim + nmax)) time, O(nmax) memory.
func Coefficients(rs vector.Vec, set charges.Set, nmax int, regime Regime, opts ...Option) ([]float64, error) {
	if regime == nil {
		return nil, fmt.Errorf("Coefficients: %w", ErrNilRegime)
	}
	if nmax < 0 {
		return nil, fmt.Errorf("Coefficients: nmax=%d: %w", nmax, ErrNegativeOrder)
	}
	if err := validate(rs, set); err != nil {
		return nil, fmt.Errorf("Coefficients: %w", err)
	}
	o := gatherOptions(opts...)

	return coefficients(rs, set, nmax, regime, o.eps, 0), nil
}

// coefficients is the unchecked builder behind Coefficients, Evaluate,
// NewSeries and Convergence. Radii are measured in units of 2^k; k = 0
// gives the plain coefficients.
func coefficients(rs vector.Vec, set charges.Set, nmax int, regime Regime, eps float64, k int) []float64 {
	coes := make([]float64, nmax+1)
	pn := make([]float64, nmax+1)
	pw := make([]float64, nmax+1)

	for _, c := range set {
		g := decompose(rs, c.Pos)
		if regime.skips(g.RiMag, eps) {
			continue
		}
		// CosTheta is clamped and nmax >= 0, so Values cannot fail.
		pn, _ = legendre.Values(nmax, g.CosTheta, pn)
		regime.chargePowers(math.Ldexp(g.RiMag, -k), pw)
		for n := range coes {
			coes[n] += c.Q * pw[n] * pn[n]
		}
	}

	return coes
}

// unit returns the exponent of the length unit used for set in regime.
func unit(set charges.Set, regime Regime, eps float64) int {
	return regime.unitExp(set.Magnitudes(), eps)
}

// validate checks the observation point, the Set and their common dimension.
func validate(rs vector.Vec, set charges.Set) error {
	if err := vector.Validate(rs); err != nil {
		return err
	}
	if err := set.Validate(); err != nil {
		return err
	}

	return vector.SameDim(rs, set[0].Pos)
}
