// SPDX-License-Identifier: MIT

package legendre

import (
	"fmt"
	"math"
)

// Eval returns P_n(x) and its derivative P_n'(x).
//
// Algorithm:
//  1. P_0 = 1, P_1 = x.
//  2. Bonnet: (k+1)·P_{k+1} = (2k+1)·x·P_k − k·P_{k−1}, for k = 1..n−1.
//  3. Derivative: P_n' = n·(P_{n−1} − x·P_n) / (1 − x²) for |x| < 1;
//     at the endpoints P_n'(±1) = (±1)^(n−1) · n(n+1)/2.
//
// Errors:
//   - ErrNegativeOrder if n < 0.
//   - ErrOutOfDomain if x is NaN or |x| > 1.
//
// Complexity: O(n) time, O(1) memory.
func Eval(n int, x float64) (p, dp float64, err error) {
	if err = check(n, x); err != nil {
		return 0, 0, err
	}
	if n == 0 {
		return 1, 0, nil
	}

	prev, cur := 1.0, x
	for k := 1; k < n; k++ {
		prev, cur = cur, step(k, x, prev, cur)
	}

	return cur, derivative(n, x, prev, cur), nil
}

// Values fills P_0(x)..P_nmax(x) into dst and returns it. dst is reused when
// its capacity is at least nmax+1, otherwise a new slice is allocated.
//
// Errors: as for Eval.
func Values(nmax int, x float64, dst []float64) ([]float64, error) {
	if err := check(nmax, x); err != nil {
		return nil, err
	}
	if cap(dst) < nmax+1 {
		dst = make([]float64, nmax+1)
	}
	dst = dst[:nmax+1]

	dst[0] = 1
	if nmax == 0 {
		return dst, nil
	}
	dst[1] = x
	for k := 1; k < nmax; k++ {
		dst[k+1] = step(k, x, dst[k-1], dst[k])
	}

	return dst, nil
}

// step advances the recurrence from (P_{k−1}, P_k) to P_{k+1}.
func step(k int, x, prev, cur float64) float64 {
	return (float64(2*k+1)*x*cur - float64(k)*prev) / float64(k+1)
}

// derivative returns P_n'(x) given P_{n−1} and P_n, n ≥ 1.
func derivative(n int, x, prev, cur float64) float64 {
	if x == 1 || x == -1 {
		d := float64(n) * float64(n+1) / 2
		if x < 0 && n%2 == 0 {
			d = -d
		}
		return d
	}

	return float64(n) * (prev - x*cur) / (1 - x*x)
}

func check(n int, x float64) error {
	if n < 0 {
		return fmt.Errorf("n=%d: %w", n, ErrNegativeOrder)
	}
	if math.IsNaN(x) || x < -1 || x > 1 {
		return fmt.Errorf("x=%v: %w", x, ErrOutOfDomain)
	}

	return nil
}
