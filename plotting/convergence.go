// SPDX-License-Identifier: MIT

package plotting

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/multipole/expansion"
)

// ConvergencePlot builds a relative-error-vs-order figure from the output of
// expansion.Convergence. Points with zero error cannot sit on a log axis and
// are dropped.
//
// Errors: ErrNothingToPlot when no point has a positive error.
func ConvergencePlot(points []expansion.ConvergencePoint, regime expansion.Regime) (*plot.Plot, error) {
	xys := make(plotter.XYs, 0, len(points))
	for _, pt := range points {
		if pt.RelError > 0 {
			xys = append(xys, plotter.XY{X: float64(pt.Order), Y: pt.RelError})
		}
	}
	if len(xys) == 0 {
		return nil, fmt.Errorf("ConvergencePlot: %w", ErrNothingToPlot)
	}

	p := plot.New()
	p.Title.Text = "Multipole convergence"
	if regime != nil {
		p.Title.Text = fmt.Sprintf("Multipole convergence (%s)", regime)
	}
	p.X.Label.Text = "Order n"
	p.Y.Label.Text = "Relative error"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	line, pts, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, fmt.Errorf("ConvergencePlot: %w", err)
	}
	line.Width = vg.Points(1)
	pts.GlyphStyle.Radius = vg.Points(2)
	p.Add(line, pts)

	return p, nil
}

// Convergence saves ConvergencePlot(points, regime) to path at the default size.
func Convergence(points []expansion.ConvergencePoint, regime expansion.Regime, path string) error {
	p, err := ConvergencePlot(points, regime)
	if err != nil {
		return err
	}

	return Save(p, DefaultWidth, DefaultHeight, path)
}
