// SPDX-License-Identifier: MIT

package plotting

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/multipole/charges"
	"github.com/katalvlaran/multipole/expansion"
	"github.com/katalvlaran/multipole/vector"
)

// MapOptions configures PotentialMap.
type MapOptions struct {
	Half    float64 // window is [-Half, Half]²; > 0
	Cells   int     // heat-map cells per axis; >= 2
	Arrows  int     // field arrows per axis; 0 disables, otherwise >= 2
	Order   int     // expansion order; >= 0
	Epsilon float64 // expansion tolerance; >= 0

	// Clip is the fraction of cells trimmed from each end of the colour
	// range, so the divergence at the charges does not wash out the map.
	// Must lie in [0, 0.5).
	Clip float64

	Width, Height vg.Length

	// Logger receives a Debug summary of the evaluation; nil means slog.Default().
	Logger *slog.Logger
}

// DefaultMapOptions returns a 120×120 map of [-2, 2]² with 16×16 arrows.
func DefaultMapOptions() MapOptions {
	return MapOptions{
		Half:    2,
		Cells:   120,
		Arrows:  16,
		Order:   expansion.DefaultOrder,
		Epsilon: expansion.DefaultEpsilon,
		Clip:    0.05,
		Width:   7 * vg.Inch,
		Height:  6 * vg.Inch,
	}
}

func (o MapOptions) validate() error {
	switch {
	case math.IsNaN(o.Half) || math.IsInf(o.Half, 0) || o.Half <= 0:
		return fmt.Errorf("half=%v: %w", o.Half, ErrInvalidOptions)
	case o.Cells < 2:
		return fmt.Errorf("cells=%d: %w", o.Cells, ErrInvalidOptions)
	case o.Arrows == 1 || o.Arrows < 0:
		return fmt.Errorf("arrows=%d: %w", o.Arrows, ErrInvalidOptions)
	case o.Order < 0:
		return fmt.Errorf("order=%d: %w", o.Order, ErrInvalidOptions)
	case math.IsNaN(o.Epsilon) || math.IsInf(o.Epsilon, 0) || o.Epsilon < 0:
		return fmt.Errorf("epsilon=%v: %w", o.Epsilon, ErrInvalidOptions)
	case math.IsNaN(o.Clip) || o.Clip < 0 || o.Clip >= 0.5:
		return fmt.Errorf("clip=%v: %w", o.Clip, ErrInvalidOptions)
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("size=%vx%v: %w", o.Width, o.Height, ErrInvalidOptions)
	}

	return nil
}

// potentialGrid is a plotter.GridXYZ over cell centres. z is row-major
// (r*cols + c); cells on top of a charge, or where the series overflows,
// hold NaN.
type potentialGrid struct {
	xs, ys    []float64
	z         []float64
	ambiguous int
}

func (g *potentialGrid) Dims() (c, r int)   { return len(g.xs), len(g.ys) }
func (g *potentialGrid) Z(c, r int) float64 { return g.z[r*len(g.xs)+c] }
func (g *potentialGrid) X(c int) float64    { return g.xs[c] }
func (g *potentialGrid) Y(r int) float64    { return g.ys[r] }

// fieldGrid is a plotter.FieldXY of unit vectors along the exact field.
type fieldGrid struct {
	xs, ys []float64
	v      []plotter.XY
}

func (f *fieldGrid) Dims() (c, r int)            { return len(f.xs), len(f.ys) }
func (f *fieldGrid) Vector(c, r int) plotter.XY { return f.v[r*len(f.xs)+c] }
func (f *fieldGrid) X(c int) float64            { return f.xs[c] }
func (f *fieldGrid) Y(r int) float64            { return f.ys[r] }

// centres returns the n cell centres of [-half, half].
func centres(n int, half float64) []float64 {
	step := 2 * half / float64(n)
	return floats.Span(make([]float64, n), -half+step/2, half-step/2)
}

// onCharge reports whether at coincides with a charge position.
func onCharge(set charges.Set, at vector.Vec) bool {
	for _, c := range set {
		if d, _ := vector.Dist(at, c.Pos); d == 0 {
			return true
		}
	}

	return false
}

func buildPotentialGrid(set charges.Set, o MapOptions) (*potentialGrid, error) {
	g := &potentialGrid{xs: centres(o.Cells, o.Half), ys: centres(o.Cells, o.Half)}
	g.z = make([]float64, 0, o.Cells*o.Cells)
	// Per-cell heuristic records are summarised once by the caller.
	quiet := expansion.WithLogger(slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})))
	order, eps := expansion.WithOrder(o.Order), expansion.WithEpsilon(o.Epsilon)

	for _, y := range g.ys {
		for _, x := range g.xs {
			at := vector.Vec{x, y}
			if onCharge(set, at) {
				g.z = append(g.z, math.NaN())
				continue
			}
			res, err := expansion.Evaluate(at, set, order, eps, quiet)
			if errors.Is(err, expansion.ErrNonFinite) {
				g.z = append(g.z, math.NaN())
				g.ambiguous++
				continue
			}
			if err != nil {
				return nil, err
			}
			if res.Ambiguous {
				g.ambiguous++
			}
			g.z = append(g.z, res.Value)
		}
	}

	return g, nil
}

func buildFieldGrid(set charges.Set, o MapOptions) (*fieldGrid, error) {
	f := &fieldGrid{xs: centres(o.Arrows, o.Half), ys: centres(o.Arrows, o.Half)}
	f.v = make([]plotter.XY, 0, o.Arrows*o.Arrows)
	for _, y := range f.ys {
		for _, x := range f.xs {
			e, err := charges.Field(set, vector.Vec{x, y})
			if err != nil {
				return nil, err
			}
			if m := vector.Mag(e); m > 0 {
				e = vector.Scale(1/m, e)
			}
			f.v = append(f.v, plotter.XY{X: e[0], Y: e[1]})
		}
	}

	return f, nil
}

// colourRange returns the [clip, 1−clip] empirical quantiles of the finite
// grid values, widened when all values coincide.
func colourRange(z []float64, clip float64) (lo, hi float64, ok bool) {
	finite := make([]float64, 0, len(z))
	for _, v := range z {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return 0, 0, false
	}
	slices.Sort(finite)
	lo = stat.Quantile(clip, stat.Empirical, finite, nil)
	hi = stat.Quantile(1-clip, stat.Empirical, finite, nil)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	return lo, hi, true
}

// PotentialMapPlot builds the heat map described in the package doc.
//
// Errors:
//   - ErrInvalidOptions for out-of-range options;
//   - ErrNotPlanar when the Set is not two-dimensional;
//   - ErrNothingToPlot when every cell sits on a charge;
//   - Set validation errors.
func PotentialMapPlot(set charges.Set, o MapOptions) (*plot.Plot, error) {
	if err := o.validate(); err != nil {
		return nil, fmt.Errorf("PotentialMap: %w", err)
	}
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("PotentialMap: %w", err)
	}
	if d := set.Dim(); d != 2 {
		return nil, fmt.Errorf("PotentialMap: dim=%d: %w", d, ErrNotPlanar)
	}
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}

	grid, err := buildPotentialGrid(set, o)
	if err != nil {
		return nil, fmt.Errorf("PotentialMap: %w", err)
	}
	lo, hi, ok := colourRange(grid.z, o.Clip)
	if !ok {
		return nil, fmt.Errorf("PotentialMap: %w", ErrNothingToPlot)
	}
	logger.Debug("potential map evaluated",
		"cells", o.Cells*o.Cells,
		"ambiguous", grid.ambiguous,
		"min", lo,
		"max", hi)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Multipole potential, order %d", o.Order)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	pal := palette.Heat(12, 1)
	colors := pal.Colors()
	hm := plotter.NewHeatMap(grid, pal)
	hm.Min, hm.Max = lo, hi
	hm.Underflow = colors[0]
	hm.Overflow = colors[len(colors)-1]
	hm.NaN = color.Black
	p.Add(hm)

	if o.Arrows > 0 {
		field, err := buildFieldGrid(set, o)
		if err != nil {
			return nil, fmt.Errorf("PotentialMap: %w", err)
		}
		arrows := plotter.NewField(field)
		arrows.LineStyle.Width = vg.Points(0.5)
		arrows.LineStyle.Color = color.Gray{Y: 64}
		p.Add(arrows)
	}

	if err := addCharges(p, set); err != nil {
		return nil, fmt.Errorf("PotentialMap: %w", err)
	}

	p.X.Min, p.X.Max = -o.Half, o.Half
	p.Y.Min, p.Y.Max = -o.Half, o.Half

	return p, nil
}

// addCharges overlays positive and negative charges as two scatters.
func addCharges(p *plot.Plot, set charges.Set) error {
	var pos, neg plotter.XYs
	for _, c := range set {
		xy := plotter.XY{X: c.Pos[0], Y: c.Pos[1]}
		if c.Q >= 0 {
			pos = append(pos, xy)
		} else {
			neg = append(neg, xy)
		}
	}

	for _, grp := range []struct {
		label string
		xys   plotter.XYs
		col   color.Color
	}{
		{"q > 0", pos, color.RGBA{R: 220, A: 255}},
		{"q < 0", neg, color.RGBA{B: 220, A: 255}},
	} {
		if len(grp.xys) == 0 {
			continue
		}
		s, err := plotter.NewScatter(grp.xys)
		if err != nil {
			return err
		}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(4)
		s.GlyphStyle.Color = grp.col
		p.Add(s)
		p.Legend.Add(grp.label, s)
	}
	p.Legend.Top = true

	return nil
}

// PotentialMap saves PotentialMapPlot(set, o) to path at o.Width × o.Height.
func PotentialMap(set charges.Set, o MapOptions, path string) error {
	p, err := PotentialMapPlot(set, o)
	if err != nil {
		return err
	}

	return Save(p, o.Width, o.Height, path)
}
