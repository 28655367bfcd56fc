// SPDX-License-Identifier: MIT

package expansion_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multipole/charges"
	"github.com/katalvlaran/multipole/vector"
)

// Fixtures shared by the expansion tests.
var (
	rsOut = vector.Vec{2.0, 0.0}
	rsIn  = vector.Vec{0.01, 0.0}
)

// square returns four unit charges at (±1, ±1).
func square(t testing.TB) charges.Set {
	t.Helper()
	s, err := charges.Square(1, 1)
	require.NoError(t, err)
	return s
}

// exact returns the closed-form potential or fails the test.
func exact(t testing.TB, s charges.Set, at vector.Vec) float64 {
	t.Helper()
	v, err := charges.Potential(s, at)
	require.NoError(t, err)
	return v
}

// relErr is |got − want| / |want|.
func relErr(got, want float64) float64 {
	return math.Abs(got-want) / math.Abs(want)
}
