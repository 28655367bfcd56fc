// SPDX-License-Identifier: MIT

// Package kahan provides compensated (Kahan) summation for float64 data.
//
// 🚀 What is compensated summation?
//
//	Adding many floating-point numbers left to right loses the low-order
//	bits of every small addend that meets a large running total. Kahan's
//	algorithm carries those lost bits in a correction term and feeds them
//	back into the next addition, so the error stays O(ε) instead of O(n·ε).
//
// ✨ Key features:
//   - Sum:         one-shot compensated sum of a slice
//   - Accumulator: streaming form, zero value ready to use
//   - Dot:         compensated dot product of two equal-length slices
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/multipole/kahan"
//
//	total := kahan.Sum([]float64{1, 1e-16, 1e-16})
//
//	var acc kahan.Accumulator
//	for _, x := range terms {
//	  acc.Add(x)
//	}
//	fmt.Println(acc.Sum())
//
// Performance:
//
//   - Time:   O(n), four flops per addend
//   - Memory: O(1) for Sum/Accumulator, O(n) scratch for Dot
package kahan
