// SPDX-License-Identifier: MIT

// Package vector holds the coordinate-vector primitives used across
// multipole: Euclidean magnitude, compensated dot product, differences and
// distances over plain float64 slices of any dimension.
//
// All functions are pure. Dimension checks return sentinel errors
// (ErrEmptyVector, ErrDimensionMismatch, ErrNonFinite); Mag never fails.
package vector
