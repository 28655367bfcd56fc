// SPDX-License-Identifier: MIT

package expansion_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multipole/expansion"
	"github.com/katalvlaran/multipole/vector"
)

// TestDecompose_Clamp checks parallel and antiparallel pairs land exactly on ±1.
func TestDecompose_Clamp(t *testing.T) {
	g, err := expansion.Decompose(vector.Vec{3, 4}, vector.Vec{6, 8})
	require.NoError(t, err)
	assert.Equal(t, 5.0, g.RMag)
	assert.Equal(t, 10.0, g.RiMag)
	assert.Equal(t, 1.0, g.CosTheta, "identical direction gives exactly 1")

	g, err = expansion.Decompose(vector.Vec{3, 4}, vector.Vec{-6, -8})
	require.NoError(t, err)
	assert.Equal(t, -1.0, g.CosTheta, "opposite direction gives exactly -1")

	g, err = expansion.Decompose(vector.Vec{2, 0}, vector.Vec{0.5, 0})
	require.NoError(t, err)
	assert.Equal(t, 1.0, g.CosTheta)
}

// TestDecompose_AlwaysInRange sweeps many directions and checks the invariant.
func TestDecompose_AlwaysInRange(t *testing.T) {
	for i := 0; i < 360; i++ {
		phi := float64(i) * math.Pi / 180
		rs := vector.Vec{1.3 * math.Cos(phi), 1.3 * math.Sin(phi)}
		for _, ri := range []vector.Vec{rs, vector.Scale(-7, rs), vector.Scale(1e-9, rs), {1, 1}} {
			g, err := expansion.Decompose(rs, ri)
			require.NoError(t, err)
			assert.LessOrEqual(t, g.CosTheta, 1.0)
			assert.GreaterOrEqual(t, g.CosTheta, -1.0)
		}
	}
}

// TestDecompose_Degenerate checks the 0/0 convention.
func TestDecompose_Degenerate(t *testing.T) {
	g, err := expansion.Decompose(vector.Vec{0, 0}, vector.Vec{1, 1})
	require.NoError(t, err)
	assert.Equal(t, expansion.Geometry{RMag: 0, RiMag: math.Sqrt2, CosTheta: 0}, g)

	g, err = expansion.Decompose(vector.Vec{2, 0}, vector.Vec{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, g.CosTheta)
	assert.Equal(t, 0.0, g.RiMag)

	g, err = expansion.Decompose(vector.Vec{1, 0}, vector.Vec{0, 5})
	require.NoError(t, err)
	assert.Equal(t, 0.0, g.CosTheta, "orthogonal vectors")
}

// TestDecompose_Errors covers malformed pairs.
func TestDecompose_Errors(t *testing.T) {
	_, err := expansion.Decompose(vector.Vec{1, 0}, vector.Vec{1, 0, 0})
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)

	_, err = expansion.Decompose(nil, vector.Vec{1})
	assert.ErrorIs(t, err, vector.ErrEmptyVector)
}

// TestClampUnit covers the clamp directly, including values just past ±1.
func TestClampUnit(t *testing.T) {
	assert.Equal(t, 1.0, expansion.ClampUnit(math.Nextafter(1, 2)))
	assert.Equal(t, -1.0, expansion.ClampUnit(math.Nextafter(-1, -2)))
	assert.Equal(t, 0.25, expansion.ClampUnit(0.25))
	assert.Equal(t, 1.0, expansion.ClampUnit(1))
	assert.Equal(t, -1.0, expansion.ClampUnit(-1))
}
