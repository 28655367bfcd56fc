// SPDX-License-Identifier: MIT

package charges

import "errors"

var (
	// ErrEmptySet indicates a charge set with no charges.
	ErrEmptySet = errors.New("charges: empty charge set")

	// ErrNonFiniteCharge indicates a NaN or ±Inf charge magnitude.
	ErrNonFiniteCharge = errors.New("charges: NaN or Inf charge magnitude")

	// ErrCoincident indicates an observation point sitting exactly on a charge,
	// where the exact potential diverges.
	ErrCoincident = errors.New("charges: observation point coincides with a charge")

	// ErrTooFewCharges indicates a generator asked for fewer than one charge.
	ErrTooFewCharges = errors.New("charges: count must be >= 1")

	// ErrInvalidRadius indicates a non-positive or non-finite generator radius.
	ErrInvalidRadius = errors.New("charges: radius must be finite and > 0")
)
