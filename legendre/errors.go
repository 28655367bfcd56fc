// SPDX-License-Identifier: MIT

package legendre

import "errors"

var (
	// ErrNegativeOrder indicates a polynomial order n < 0.
	ErrNegativeOrder = errors.New("legendre: order must be non-negative")

	// ErrOutOfDomain indicates x outside [-1, 1] or NaN.
	ErrOutOfDomain = errors.New("legendre: x must lie in [-1, 1]")
)
