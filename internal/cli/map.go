// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/multipole/plotting"
)

func newMapCmd(a *app) *cobra.Command {
	var (
		out  string
		opts = plotting.DefaultMapOptions()
	)

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Render a heat map of the multipole potential",
		Example: `  multipole map --out square.png
  multipole map --scenario ring.yaml --half 3 --cells 200 --out ring.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Order = a.cfg.Order
			opts.Epsilon = a.cfg.Epsilon
			opts.Logger = a.logger
			if err := plotting.PotentialMap(a.set, opts, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&out, "out", "", "output image (format from extension: png, svg, pdf)")
	f.Float64Var(&opts.Half, "half", opts.Half, "half width of the square window")
	f.IntVar(&opts.Cells, "cells", opts.Cells, "heat-map cells per axis")
	f.IntVar(&opts.Arrows, "arrows", opts.Arrows, "field arrows per axis (0 disables)")
	f.Float64Var(&opts.Clip, "clip", opts.Clip, "quantile trimmed from each end of the colour range")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
