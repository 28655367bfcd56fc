// SPDX-License-Identifier: MIT

package expansion

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Regime is the two-variant tagged union {Outside, Inside}. Each variant
// owns its coefficient formula and the assembly formula that pairs with it.
// The interface is sealed: only this package can implement it.
//
// Lengths reach the variants already divided by a power-of-two unit 2^k
// (see unitExp), so the radial powers stay near 1 whatever the length scale
// of the charges; assemble undoes the unit with one exact Ldexp.
type Regime interface {
	fmt.Stringer

	// chargePowers fills dst[n] with the radial factor of a charge at
	// scaled radius x: x^n (Outside) or x^-(n+1) (Inside).
	chargePowers(x float64, dst []float64)

	// observerPowers fills dst[n] with the radial factor of the observer at
	// scaled radius x: x^-(n+1) (Outside) or x^n (Inside).
	observerPowers(x float64, dst []float64)

	// skips reports charges that contribute nothing to any coefficient.
	skips(rimag, eps float64) bool

	// degenerate reports radii where the assembly formula is undefined and
	// the potential is defined as 0.
	degenerate(rmag, eps float64) bool

	// unitExp returns k such that the magnitudes measured in units of 2^k
	// keep chargePowers within [0, 1].
	unitExp(mags []float64, eps float64) int

	// unscale converts a coefficient of order n built in units of 2^k back
	// to plain lengths.
	unscale(c float64, n, k int) float64
}

type outside struct{}

type inside struct{}

// The two regimes. Compare with ==.
var (
	// Outside is the exterior expansion Σ c_n / r^(n+1), valid for r > Rmax.
	Outside Regime = outside{}

	// Inside is the interior expansion Σ c_n r^n, valid for r < Rmin.
	Inside Regime = inside{}
)

// ascending fills dst with x^0, x^1, ... by repeated multiplication.
func ascending(x float64, dst []float64) {
	p := 1.0
	for n := range dst {
		dst[n] = p
		p *= x
	}
}

// descending fills dst with x^-1, x^-2, ... by repeated multiplication.
func descending(x float64, dst []float64) {
	inv := 1 / x
	p := inv
	for n := range dst {
		dst[n] = p
		p *= inv
	}
}

func (outside) String() string { return "outside" }

func (outside) chargePowers(x float64, dst []float64)   { ascending(x, dst) }
func (outside) observerPowers(x float64, dst []float64) { descending(x, dst) }
func (outside) skips(float64, float64) bool             { return false }

// An observer at the origin cannot be outside a set of charges; this only
// happens for sets whose Rmax is within eps of zero.
func (outside) degenerate(rmag, eps float64) bool { return rmag < eps }

// The unit is the power of two just above Rmax.
func (outside) unitExp(mags []float64, _ float64) int {
	m := slices.Max(mags)
	if m <= 0 {
		return 0
	}
	_, k := math.Frexp(m)

	return k
}

func (outside) unscale(c float64, n, k int) float64 { return math.Ldexp(c, n*k) }

func (inside) String() string { return "inside" }

func (inside) chargePowers(x float64, dst []float64)   { descending(x, dst) }
func (inside) observerPowers(x float64, dst []float64) { ascending(x, dst) }

// A charge within eps of the origin has no interior expansion about the
// origin: its denominator is treated as infinite.
func (inside) skips(rimag, eps float64) bool { return rimag <= eps }

func (inside) degenerate(float64, float64) bool { return false }

// The unit is the power of two at or below the smallest radius that is not
// skipped.
func (inside) unitExp(mags []float64, eps float64) int {
	m := math.Inf(1)
	for _, r := range mags {
		if r > eps && r < m {
			m = r
		}
	}
	if math.IsInf(m, 1) {
		return 0
	}
	_, k := math.Frexp(m)

	return k - 1
}

func (inside) unscale(c float64, n, k int) float64 { return math.Ldexp(c, -(n+1)*k) }

// ParseRegime maps "outside" / "inside" (case-insensitive, trimmed) to a Regime.
func ParseRegime(s string) (Regime, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "outside":
		return Outside, nil
	case "inside":
		return Inside, nil
	default:
		return nil, fmt.Errorf("%q: %w", s, ErrUnknownRegime)
	}
}
