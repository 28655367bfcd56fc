// SPDX-License-Identifier: MIT

package plotting

import "errors"

var (
	// ErrNothingToPlot indicates input with no plottable data.
	ErrNothingToPlot = errors.New("plotting: nothing to plot")

	// ErrNotPlanar indicates a charge Set that is not two-dimensional.
	ErrNotPlanar = errors.New("plotting: potential map requires planar charges")

	// ErrInvalidOptions indicates MapOptions outside their documented ranges.
	ErrInvalidOptions = errors.New("plotting: invalid map options")
)
