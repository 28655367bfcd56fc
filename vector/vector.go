// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/multipole/kahan"
)

// Vec is a point or displacement in n-dimensional Euclidean space.
type Vec []float64

// Mag returns the Euclidean norm |v|. The empty vector has magnitude 0.
//
// The norm is computed with gonum's scaled sum of squares, so large or tiny
// coordinates do not overflow or underflow the intermediate squares.
func Mag(v Vec) float64 {
	if len(v) == 0 {
		return 0
	}

	return floats.Norm(v, 2)
}

// Validate reports whether v is usable as a coordinate vector:
// non-empty with every coordinate finite.
func Validate(v Vec) error {
	if len(v) == 0 {
		return ErrEmptyVector
	}
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("coordinate %d=%v: %w", i, x, ErrNonFinite)
		}
	}

	return nil
}

// SameDim returns ErrDimensionMismatch unless a and b have equal, non-zero length.
func SameDim(a, b Vec) error {
	if len(a) == 0 || len(b) == 0 {
		return ErrEmptyVector
	}
	if len(a) != len(b) {
		return fmt.Errorf("len %d vs %d: %w", len(a), len(b), ErrDimensionMismatch)
	}

	return nil
}

// Dot returns the compensated dot product a·b.
func Dot(a, b Vec) (float64, error) {
	if err := SameDim(a, b); err != nil {
		return 0, err
	}

	return kahan.Dot(a, b), nil
}

// Sub returns a − b as a new vector.
func Sub(a, b Vec) (Vec, error) {
	if err := SameDim(a, b); err != nil {
		return nil, err
	}
	out := make(Vec, len(a))
	floats.SubTo(out, a, b)

	return out, nil
}

// Dist returns |a − b|.
func Dist(a, b Vec) (float64, error) {
	d, err := Sub(a, b)
	if err != nil {
		return 0, err
	}

	return Mag(d), nil
}

// Scale returns k·v as a new vector.
func Scale(k float64, v Vec) Vec {
	out := make(Vec, len(v))
	copy(out, v)
	floats.Scale(k, out)

	return out
}

// Clone returns an independent copy of v.
func (v Vec) Clone() Vec {
	if v == nil {
		return nil
	}
	out := make(Vec, len(v))
	copy(out, v)

	return out
}
