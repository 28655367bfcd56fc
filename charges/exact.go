// SPDX-License-Identifier: MIT

package charges

import (
	"fmt"

	"github.com/katalvlaran/multipole/kahan"
	"github.com/katalvlaran/multipole/vector"
)

// FieldCutoff is the distance below which a charge is skipped by Field.
const FieldCutoff = 1e-9

// Potential returns the exact potential of s at the point at:
//
//	V(at) = Σ_i q_i / |at − r_i|
//
// accumulated with compensated summation in Set order.
//
// Errors:
//   - Set and vector validation errors (see Set.Validate);
//   - ErrCoincident when at equals a charge position.
func Potential(s Set, at vector.Vec) (float64, error) {
	if err := checkPoint(s, at); err != nil {
		return 0, fmt.Errorf("Potential: %w", err)
	}

	var acc kahan.Accumulator
	for i, c := range s {
		d, _ := vector.Dist(at, c.Pos)
		if d == 0 {
			return 0, fmt.Errorf("Potential: charge %d: %w", i, ErrCoincident)
		}
		acc.Add(c.Q / d)
	}

	return acc.Sum(), nil
}

// Field returns the exact electric field of s at the point at:
//
//	E(at) = Σ_i q_i (at − r_i) / |at − r_i|³
//
// Charges closer than FieldCutoff to at are skipped, so the field is finite
// everywhere, including on top of a charge.
func Field(s Set, at vector.Vec) (vector.Vec, error) {
	if err := checkPoint(s, at); err != nil {
		return nil, fmt.Errorf("Field: %w", err)
	}

	accs := make([]kahan.Accumulator, len(at))
	for _, c := range s {
		diff, _ := vector.Sub(at, c.Pos)
		r := vector.Mag(diff)
		if r < FieldCutoff {
			continue
		}
		k := c.Q / (r * r * r)
		for d, x := range diff {
			accs[d].Add(k * x)
		}
	}

	e := make(vector.Vec, len(at))
	for d := range accs {
		e[d] = accs[d].Sum()
	}

	return e, nil
}

// checkPoint validates s and at and their common dimension.
func checkPoint(s Set, at vector.Vec) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := vector.Validate(at); err != nil {
		return err
	}

	return vector.SameDim(at, s[0].Pos)
}
