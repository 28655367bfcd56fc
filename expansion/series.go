// SPDX-License-Identifier: MIT

package expansion

import (
	"fmt"

	"github.com/katalvlaran/multipole/charges"
	"github.com/katalvlaran/multipole/vector"
)

// Series is a multipole expansion frozen along one direction: the
// coefficients depend only on the direction of the observation point, so
// they are built once and re-assembled for any radius along the ray.
//
// A Series is immutable and safe for concurrent use.
type Series struct {
	dir    vector.Vec
	regime Regime
	coes   []float64 // in units of 2^unit
	unit   int
	eps    float64
}

// NewSeries builds the coefficients of set along dir in the given regime,
// up to the order set by WithOrder (DefaultOrder otherwise).
//
// The caller chooses the regime; At does not re-check that a radius lies in
// the region where that regime converges.
//
// Errors: ErrNilRegime, ErrZeroDirection, Set and vector validation errors.
func NewSeries(dir vector.Vec, set charges.Set, regime Regime, opts ...Option) (*Series, error) {
	if regime == nil {
		return nil, fmt.Errorf("NewSeries: %w", ErrNilRegime)
	}
	if err := validate(dir, set); err != nil {
		return nil, fmt.Errorf("NewSeries: %w", err)
	}
	if vector.Mag(dir) == 0 {
		return nil, fmt.Errorf("NewSeries: %w", ErrZeroDirection)
	}
	o := gatherOptions(opts...)
	k := unit(set, regime, o.eps)

	return &Series{
		dir:    dir.Clone(),
		regime: regime,
		coes:   coefficients(dir, set, o.order, regime, o.eps, k),
		unit:   k,
		eps:    o.eps,
	}, nil
}

// At returns the potential at distance r from the origin along the direction.
//
// Errors: ErrNegativeRadius for r < 0; ErrNonFinite when r lies so far
// outside the convergence region that the series overflows.
func (s *Series) At(r float64) (float64, error) {
	if r < 0 {
		return 0, fmt.Errorf("Series.At: r=%v: %w", r, ErrNegativeRadius)
	}
	v := assemble(s.coes, r, s.regime, s.eps, s.unit)
	if err := checkFinite(v); err != nil {
		return 0, fmt.Errorf("Series.At: r=%v: %w", r, err)
	}

	return v, nil
}

// Regime returns the expansion the Series was built for.
func (s *Series) Regime() Regime { return s.regime }

// Order returns the highest order of the Series.
func (s *Series) Order() int { return len(s.coes) - 1 }

// Direction returns a copy of the direction vector.
func (s *Series) Direction() vector.Vec { return s.dir.Clone() }

// Coefficients returns the coefficient vector in plain length units, as
// Coefficients would build it. High orders may be 0 or ±Inf when the radii
// are far from 1.
func (s *Series) Coefficients() []float64 {
	out := make([]float64, len(s.coes))
	for n, c := range s.coes {
		out[n] = s.regime.unscale(c, n, s.unit)
	}

	return out
}
