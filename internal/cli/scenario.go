// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/multipole/internal/config"
)

func newScenarioCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scenario",
		Short: "Show the effective scenario",
		Long: `scenario prints the scenario after merging defaults, the scenario file,
the environment and flags, with generators expanded into explicit charges.
The output is itself a valid scenario file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			order, eps := a.cfg.Order, a.cfg.Epsilon
			eff := config.Scenario{
				Name:    a.cfg.Scenario.Name,
				Order:   &order,
				Epsilon: &eps,
				Charges: a.set,
			}
			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), eff)
			}

			return writeYAML(cmd.OutOrStdout(), eff)
		},
	}
}
