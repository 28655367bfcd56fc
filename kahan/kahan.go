// SPDX-License-Identifier: MIT

package kahan

import "gonum.org/v1/gonum/floats"

// Accumulator is a running compensated sum.
// The zero value is an empty sum. Not safe for concurrent use.
type Accumulator struct {
	sum float64 // running total
	c   float64 // negated low-order bits lost by the last addition
}

// Add folds x into the running sum.
//
// Algorithm:
//  1. y = x − c          (re-inject what the previous step lost)
//  2. t = sum + y        (low bits of y may be lost here)
//  3. c = (t − sum) − y  (recover them, with the sign flipped)
//  4. sum = t
//
// Complexity: O(1).
func (a *Accumulator) Add(x float64) {
	y := x - a.c
	t := a.sum + y
	a.c = (t - a.sum) - y
	a.sum = t
}

// Sum returns the compensated total of every value added so far.
func (a *Accumulator) Sum() float64 {
	return a.sum
}

// Reset empties the accumulator.
func (a *Accumulator) Reset() {
	a.sum, a.c = 0, 0
}

// Sum returns the compensated sum of xs.
// An empty slice sums to 0; a single element is returned unchanged.
//
// Complexity: O(len(xs)) time, O(1) memory.
func Sum(xs []float64) float64 {
	var acc Accumulator
	for _, x := range xs {
		acc.Add(x)
	}

	return acc.Sum()
}

// Dot returns the compensated dot product of a and b: the element-wise
// products are formed first and then reduced with Sum.
//
// Dot panics if len(a) != len(b), like the gonum floats routines it is
// built on; callers that accept user input validate lengths first.
//
// Complexity: O(n) time, O(n) scratch memory.
func Dot(a, b []float64) float64 {
	prods := make([]float64, len(a))
	floats.MulTo(prods, a, b)

	return Sum(prods)
}
