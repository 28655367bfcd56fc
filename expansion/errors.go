// SPDX-License-Identifier: MIT

package expansion

import "errors"

// Validation of points and charge sets reports the vector and charges
// sentinels (vector.ErrDimensionMismatch, charges.ErrEmptySet, ...) wrapped
// with the operation name; the errors below are specific to expansion.
var (
	// ErrNilRegime indicates a nil Regime passed where Outside or Inside is required.
	ErrNilRegime = errors.New("expansion: regime is nil")

	// ErrNegativeOrder indicates nmax < 0.
	ErrNegativeOrder = errors.New("expansion: order must be non-negative")

	// ErrUnknownRegime indicates a regime name other than "outside" or "inside".
	ErrUnknownRegime = errors.New("expansion: unknown regime")

	// ErrZeroDirection indicates a Series direction of zero length.
	ErrZeroDirection = errors.New("expansion: direction has zero length")

	// ErrNonFinite indicates a series that overflowed to ±Inf or NaN.
	ErrNonFinite = errors.New("expansion: series value is not finite")

	// ErrNegativeRadius indicates a negative radius passed to Series.At.
	ErrNegativeRadius = errors.New("expansion: radius must be non-negative")
)
