// SPDX-License-Identifier: MIT

// Package expansion: functional configuration for potential evaluation.
// This file defines:
//   - documented defaults (constants),
//   - Option / Options with WithX constructors (panic on nonsensical values),
//   - gatherOptions, which resolves a ...Option list.
//
// No global state: the epsilon that drives regime selection and the
// origin guards is always an explicit, per-call value.

package expansion

import (
	"log/slog"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultOrder is the highest expansion order used by Potential/Evaluate.
	DefaultOrder = 60

	// DefaultEpsilon is the margin around the charge annulus and the threshold
	// below which a radius counts as the origin.
	DefaultEpsilon = 1e-12
)

const (
	panicOrderInvalid   = "expansion: WithOrder: order must be >= 0"
	panicEpsilonInvalid = "expansion: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; public
// entry points accept ...Option.
type Options struct {
	order  int          // >= 0; DefaultOrder
	eps    float64      // >= 0; DefaultEpsilon
	logger *slog.Logger // never nil after gatherOptions
}

// WithOrder sets the highest expansion order nmax.
// Panics if n < 0.
func WithOrder(n int) Option {
	if n < 0 {
		panic(panicOrderInvalid)
	}

	return func(o *Options) { o.order = n }
}

// WithEpsilon sets the numeric tolerance used by regime selection
// (rmag > Rmax+eps, rmag < Rmin−eps) and by the origin guards.
// Panics if eps is NaN, ±Inf or negative.
//
// Notes:
//   - eps = 0 makes the annulus boundaries exact; tests use larger values to
//     probe the boundary behaviour.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithLogger routes diagnostic records (Debug level only) to l.
// A nil logger restores slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// DefaultOptions returns the zero-argument configuration.
func DefaultOptions() Options {
	return Options{
		order:  DefaultOrder,
		eps:    DefaultEpsilon,
		logger: slog.Default(),
	}
}

// Order returns the configured expansion order.
func (o Options) Order() int { return o.order }

// Epsilon returns the configured tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// gatherOptions applies opts over DefaultOptions in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}

// NewOptions resolves opts into an Options value, for callers that want to
// inspect the effective configuration.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}
