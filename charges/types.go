// SPDX-License-Identifier: MIT

package charges

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/multipole/kahan"
	"github.com/katalvlaran/multipole/vector"
)

// Charge is a point charge of magnitude Q at position Pos.
type Charge struct {
	Q   float64    `json:"q" yaml:"q"`
	Pos vector.Vec `json:"pos" yaml:"pos"`
}

// Set is an ordered collection of point charges. Algorithms iterate it in
// slice order and never mutate it.
type Set []Charge

// Bounds is the annulus spanned by a Set: the smallest and largest
// distance from the origin over all charge positions.
type Bounds struct {
	RMin float64 `json:"rmin"`
	RMax float64 `json:"rmax"`
}

// Validate checks the Set contract:
//   - at least one charge (ErrEmptySet);
//   - every magnitude finite (ErrNonFiniteCharge);
//   - every position valid and of the same dimension as the first
//     (vector.ErrEmptyVector, vector.ErrNonFinite, vector.ErrDimensionMismatch).
//
// Errors name the offending charge index.
func (s Set) Validate() error {
	if len(s) == 0 {
		return ErrEmptySet
	}
	dim := len(s[0].Pos)
	for i, c := range s {
		if math.IsNaN(c.Q) || math.IsInf(c.Q, 0) {
			return fmt.Errorf("charge %d: q=%v: %w", i, c.Q, ErrNonFiniteCharge)
		}
		if err := vector.Validate(c.Pos); err != nil {
			return fmt.Errorf("charge %d: %w", i, err)
		}
		if len(c.Pos) != dim {
			return fmt.Errorf("charge %d: dim %d vs %d: %w", i, len(c.Pos), dim, vector.ErrDimensionMismatch)
		}
	}

	return nil
}

// Dim returns the spatial dimension of the Set, or 0 when empty.
func (s Set) Dim() int {
	if len(s) == 0 {
		return 0
	}

	return len(s[0].Pos)
}

// Total returns the compensated sum of all charge magnitudes (the monopole moment).
func (s Set) Total() float64 {
	var acc kahan.Accumulator
	for _, c := range s {
		acc.Add(c.Q)
	}

	return acc.Sum()
}

// Magnitudes returns |Pos| for every charge, in Set order.
func (s Set) Magnitudes() []float64 {
	mags := make([]float64, len(s))
	for i, c := range s {
		mags[i] = vector.Mag(c.Pos)
	}

	return mags
}

// Bounds returns the Rmin/Rmax annulus of the Set.
//
// Errors: ErrEmptySet for an empty Set.
func (s Set) Bounds() (Bounds, error) {
	if len(s) == 0 {
		return Bounds{}, ErrEmptySet
	}
	mags := s.Magnitudes()

	return Bounds{RMin: floats.Min(mags), RMax: floats.Max(mags)}, nil
}

// Clone returns a deep copy of the Set.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	for i, c := range s {
		out[i] = Charge{Q: c.Q, Pos: c.Pos.Clone()}
	}

	return out
}
