// SPDX-License-Identifier: MIT

package charges_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multipole/charges"
	"github.com/katalvlaran/multipole/vector"
)

// TestPotential_SingleCharge checks q/r for one charge.
func TestPotential_SingleCharge(t *testing.T) {
	s := charges.Set{{Q: 2, Pos: vector.Vec{1, 0}}}
	v, err := charges.Potential(s, vector.Vec{5, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)
}

// TestPotential_Square compares against the hand-derived value
// 2/√2 + 2/√10 at (2, 0) and checks the fourfold symmetry.
func TestPotential_Square(t *testing.T) {
	s := mustSquare(t)
	want := 2/math.Sqrt2 + 2/math.Sqrt(10)

	for _, at := range []vector.Vec{{2, 0}, {-2, 0}, {0, 2}, {0, -2}} {
		v, err := charges.Potential(s, at)
		require.NoError(t, err)
		assert.InDelta(t, want, v, 1e-14, "potential at %v", at)
	}
}

// TestPotential_Errors covers coincident points and contract violations.
func TestPotential_Errors(t *testing.T) {
	s := mustSquare(t)

	_, err := charges.Potential(s, vector.Vec{1, 1})
	assert.ErrorIs(t, err, charges.ErrCoincident)

	_, err = charges.Potential(s, vector.Vec{1, 1, 1})
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)

	_, err = charges.Potential(nil, vector.Vec{1, 1})
	assert.ErrorIs(t, err, charges.ErrEmptySet)

	_, err = charges.Potential(s, vector.Vec{math.NaN(), 0})
	assert.ErrorIs(t, err, vector.ErrNonFinite)
}

// TestField checks the Coulomb field of one charge, the null field at the
// centre of the square and the cutoff on top of a charge.
func TestField(t *testing.T) {
	one := charges.Set{{Q: 2, Pos: vector.Vec{0, 0}}}
	e, err := charges.Field(one, vector.Vec{2, 0})
	require.NoError(t, err)
	assert.Equal(t, vector.Vec{0.5, 0}, e)

	s := mustSquare(t)
	e, err = charges.Field(s, vector.Vec{0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0, e[0], 1e-15)
	assert.InDelta(t, 0, e[1], 1e-15)

	// On top of (1,1) only the other three charges contribute; the result
	// is finite and points away from the centre.
	e, err = charges.Field(s, vector.Vec{1, 1})
	require.NoError(t, err)
	assert.False(t, math.IsInf(e[0], 0) || math.IsNaN(e[0]))
	assert.Greater(t, e[0], 0.0)
	assert.Greater(t, e[1], 0.0)
	assert.InDelta(t, e[0], e[1], 1e-15, "diagonal symmetry")

	_, err = charges.Field(s, vector.Vec{1})
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}
