// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/multipole/charges"
	"github.com/katalvlaran/multipole/expansion"
	"github.com/katalvlaran/multipole/vector"
)

type evalReport struct {
	At        vector.Vec     `json:"at"`
	Regime    string         `json:"regime"`
	Ambiguous bool           `json:"ambiguous"`
	Order     int            `json:"order"`
	RMag      float64        `json:"rmag"`
	Bounds    charges.Bounds `json:"bounds"`
	Multipole float64        `json:"multipole"`
	// Exact, RelError and Field are omitted when at sits on a charge.
	Exact    *float64   `json:"exact,omitempty"`
	RelError *float64   `json:"rel_error,omitempty"`
	Field    vector.Vec `json:"field,omitempty"`
}

func newEvalCmd(a *app) *cobra.Command {
	var at []float64

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate the multipole potential at a point",
		Example: `  multipole eval --at 2,0
  multipole eval --at 0.01,0 --order 20 --json
  multipole eval --scenario dipole.yaml --at 0,3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rs := vector.Vec(at)
			res, err := expansion.Evaluate(rs, a.set, a.options()...)
			if err != nil {
				return err
			}

			rep := evalReport{
				At:        rs,
				Regime:    res.Regime.String(),
				Ambiguous: res.Ambiguous,
				Order:     res.Order,
				RMag:      res.RMag,
				Bounds:    res.Bounds,
				Multipole: res.Value,
			}
			exact, err := charges.Potential(a.set, rs)
			switch {
			case errors.Is(err, charges.ErrCoincident):
				a.logger.Info("observation point sits on a charge, exact potential undefined")
			case err != nil:
				return err
			default:
				rel := math.Abs(res.Value - exact)
				if exact != 0 {
					rel /= math.Abs(exact)
				}
				field, err := charges.Field(a.set, rs)
				if err != nil {
					return err
				}
				rep.Exact, rep.RelError, rep.Field = &exact, &rel, field
			}

			w := cmd.OutOrStdout()
			if a.jsonOut {
				return writeJSON(w, rep)
			}
			row(w, "regime", rep.Regime)
			row(w, "ambiguous", rep.Ambiguous)
			row(w, "order", rep.Order)
			row(w, "|r|", num(rep.RMag))
			row(w, "annulus", "["+num(rep.Bounds.RMin)+", "+num(rep.Bounds.RMax)+"]")
			row(w, "multipole", num(rep.Multipole))
			if rep.Exact != nil {
				row(w, "exact", num(*rep.Exact))
				row(w, "rel error", num(*rep.RelError))
				row(w, "field", rep.Field)
			}

			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&at, "at", nil, "observation point, comma separated (e.g. 2,0)")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}
