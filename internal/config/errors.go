// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrNoCharges indicates a scenario with neither charges nor a generator.
	ErrNoCharges = errors.New("config: scenario has no charges and no generator")

	// ErrBothSources indicates a scenario listing charges and a generator.
	ErrBothSources = errors.New("config: scenario has both charges and a generator")

	// ErrUnknownGenerator indicates a generator kind other than square, ring, array or random.
	ErrUnknownGenerator = errors.New("config: unknown generator")

	// ErrInvalidOrder indicates a negative expansion order.
	ErrInvalidOrder = errors.New("config: order must be >= 0")

	// ErrInvalidEpsilon indicates a negative or non-finite epsilon.
	ErrInvalidEpsilon = errors.New("config: epsilon must be finite and >= 0")
)
