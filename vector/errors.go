// SPDX-License-Identifier: MIT

package vector

import "errors"

var (
	// ErrEmptyVector indicates a zero-length coordinate vector.
	ErrEmptyVector = errors.New("vector: empty vector")

	// ErrDimensionMismatch indicates two vectors of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrNonFinite indicates a NaN or ±Inf coordinate.
	ErrNonFinite = errors.New("vector: NaN or Inf coordinate")
)
