// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/multipole/expansion"
	"github.com/katalvlaran/multipole/vector"
)

type coeffsReport struct {
	Regime       string    `json:"regime"`
	Coefficients []float64 `json:"coefficients"`
}

func newCoeffsCmd(a *app) *cobra.Command {
	var (
		at         []float64
		regimeName string
	)

	cmd := &cobra.Command{
		Use:   "coeffs",
		Short: "Print the multipole coefficients c_0..c_n along a direction",
		Long: `coeffs prints the coefficient vector of the expansion in the direction of
--at. Without --regime the regime is selected from |at| exactly as eval does.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rs := vector.Vec(at)

			var regime expansion.Regime
			if regimeName != "" {
				r, err := expansion.ParseRegime(regimeName)
				if err != nil {
					return err
				}
				regime = r
			} else {
				b, err := a.set.Bounds()
				if err != nil {
					return err
				}
				regime, _ = expansion.Select(vector.Mag(rs), b, a.cfg.Epsilon)
			}

			coes, err := expansion.Coefficients(rs, a.set, a.cfg.Order, regime, a.options()...)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if a.jsonOut {
				return writeJSON(w, coeffsReport{Regime: regime.String(), Coefficients: coes})
			}
			fmt.Fprintf(w, "# regime %s\n", regime)
			for n, c := range coes {
				fmt.Fprintf(w, "%d\t%s\n", n, num(c))
			}

			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&at, "at", nil, "direction / observation point, comma separated")
	cmd.Flags().StringVar(&regimeName, "regime", "", "outside or inside (default: selected from |at|)")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}
