// SPDX-License-Identifier: MIT

package expansion_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multipole/charges"
	"github.com/katalvlaran/multipole/expansion"
	"github.com/katalvlaran/multipole/vector"
)

// benchmarkPotential evaluates a random set of n charges at a fixed point.
func benchmarkPotential(b *testing.B, n, order int) {
	set, err := charges.Random(n, 1, 42)
	require.NoError(b, err)
	rs := vector.Vec{3, 1}
	opt := expansion.WithOrder(order)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := expansion.Potential(rs, set, opt); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPotential_N10_Order60(b *testing.B)  { benchmarkPotential(b, 10, 60) }
func BenchmarkPotential_N100_Order60(b *testing.B) { benchmarkPotential(b, 100, 60) }
func BenchmarkPotential_N100_Order10(b *testing.B) { benchmarkPotential(b, 100, 10) }

// BenchmarkSeries_At measures re-assembly alone.
func BenchmarkSeries_At(b *testing.B) {
	set, err := charges.Random(100, 1, 42)
	require.NoError(b, err)
	ser, err := expansion.NewSeries(vector.Vec{1, 0}, set, expansion.Outside)
	require.NoError(b, err)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ser.At(3)
	}
}
