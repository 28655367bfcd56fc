// SPDX-License-Identifier: MIT

package expansion

import (
	"fmt"

	"github.com/katalvlaran/multipole/kahan"
	"github.com/katalvlaran/multipole/vector"
)

// Geometry is the scalar decomposition of an (observation point, charge) pair.
//
// Invariants: RMag, RiMag >= 0 and -1 <= CosTheta <= 1.
type Geometry struct {
	RMag     float64 // |rs|
	RiMag    float64 // |ri|
	CosTheta float64 // cosine of the angle between rs and ri
}

// Decompose splits the pair (rs, ri) into |rs|, |ri| and the cosine of the
// angle between them.
//
// Behavior highlights:
//   - the dot product is a compensated sum of element-wise products;
//   - CosTheta = 0 when |rs|·|ri| is exactly 0 (no defined angle);
//   - CosTheta is clamped to [-1, 1] to absorb round-off.
//
// Errors: vector.ErrEmptyVector or vector.ErrDimensionMismatch for malformed input.
//
// Complexity: O(dim).
func Decompose(rs, ri vector.Vec) (Geometry, error) {
	if err := vector.SameDim(rs, ri); err != nil {
		return Geometry{}, fmt.Errorf("Decompose: %w", err)
	}

	return decompose(rs, ri), nil
}

// decompose is Decompose without validation, for pre-validated inputs.
func decompose(rs, ri vector.Vec) Geometry {
	rmag := vector.Mag(rs)
	rimag := vector.Mag(ri)
	dot := kahan.Dot(rs, ri)

	cos := 0.0
	if den := rmag * rimag; den != 0 {
		cos = dot / den
	}

	return Geometry{RMag: rmag, RiMag: rimag, CosTheta: clampUnit(cos)}
}

// clampUnit clips x to [-1, 1].
func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}

	return x
}
