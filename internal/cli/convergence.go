// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/multipole/expansion"
	"github.com/katalvlaran/multipole/plotting"
	"github.com/katalvlaran/multipole/vector"
)

var defaultOrders = []int{0, 1, 2, 4, 8, 16, 32, 60}

type convergenceReport struct {
	Regime string                       `json:"regime"`
	Points []expansion.ConvergencePoint `json:"points"`
}

func newConvergenceCmd(a *app) *cobra.Command {
	var (
		at       []float64
		orders   []int
		plotPath string
	)

	cmd := &cobra.Command{
		Use:   "convergence",
		Short: "Compare truncated expansions with the exact potential",
		Example: `  multipole convergence --at 2,0
  multipole convergence --at 0.5,0.5 --orders 0,10,20,40 --plot conv.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			points, regime, err := expansion.Convergence(vector.Vec(at), a.set, orders, a.options()...)
			if err != nil {
				return err
			}
			if plotPath != "" {
				if err := plotting.Convergence(points, regime, plotPath); err != nil {
					return err
				}
				a.logger.Info("wrote convergence plot", "path", plotPath)
			}

			w := cmd.OutOrStdout()
			if a.jsonOut {
				name := ""
				if regime != nil {
					name = regime.String()
				}
				return writeJSON(w, convergenceReport{Regime: name, Points: points})
			}
			if regime != nil {
				fmt.Fprintf(w, "# regime %s, exact %s\n", regime, num(points[0].Exact))
			}
			fmt.Fprintln(w, "order\tvalue\tabs_error\trel_error")
			for _, p := range points {
				fmt.Fprintf(w, "%d\t%s\t%.3e\t%.3e\n", p.Order, num(p.Value), p.AbsError, p.RelError)
			}

			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&at, "at", nil, "observation point, comma separated")
	cmd.Flags().IntSliceVar(&orders, "orders", defaultOrders, "truncation orders to compare")
	cmd.Flags().StringVar(&plotPath, "plot", "", "also write a relative-error plot to this file")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}
