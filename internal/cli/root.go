// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/multipole/charges"
	"github.com/katalvlaran/multipole/expansion"
	"github.com/katalvlaran/multipole/internal/config"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	// flags
	scenario string
	order    int
	eps      float64
	debug    bool
	jsonOut  bool

	// resolved in PersistentPreRunE
	logger *slog.Logger
	cfg    config.Config
	set    charges.Set
}

// NewRootCmd returns a fresh command tree. Output goes to cmd.OutOrStdout,
// logs to cmd.ErrOrStderr.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "multipole",
		Short: "Multipole expansion of point-charge potentials",
		Long: `multipole evaluates the electrostatic potential of a set of point charges
with a truncated Legendre (multipole) series and compares it with the
exact Coulomb sum.

The charge set comes from a YAML scenario (--scenario or MULTIPOLE_SCENARIO)
and defaults to four unit charges at (±1, ±1).`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.scenario, "scenario", "", "scenario YAML file")
	pf.IntVar(&a.order, "order", expansion.DefaultOrder, "highest expansion order (env MULTIPOLE_ORDER)")
	pf.Float64Var(&a.eps, "eps", expansion.DefaultEpsilon, "regime selection tolerance (env MULTIPOLE_EPSILON)")
	pf.BoolVar(&a.debug, "debug", false, "enable debug logging")
	pf.BoolVar(&a.jsonOut, "json", false, "write JSON output and JSON logs")

	root.AddCommand(
		newEvalCmd(a),
		newCoeffsCmd(a),
		newConvergenceCmd(a),
		newMapCmd(a),
		newScenarioCmd(a),
	)

	return root
}

// Execute runs the command tree against the process arguments and returns
// the exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		return 1
	}

	return 0
}

// setup configures logging and resolves flags > env > file > defaults.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.logger = newLogger(cmd.ErrOrStderr(), a.debug, a.jsonOut)

	e, err := config.ParseEnv()
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(a.scenario, e)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("order") {
		cfg.Order = a.order
	}
	if cmd.Flags().Changed("eps") {
		cfg.Epsilon = a.eps
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	set, err := cfg.Scenario.Set()
	if err != nil {
		return fmt.Errorf("scenario: %w", err)
	}
	a.cfg, a.set = cfg, set

	a.logger.Debug("configuration resolved",
		"scenario", cfg.Scenario.Name,
		"path", cfg.Path,
		"charges", len(set),
		"order", cfg.Order,
		"eps", cfg.Epsilon)

	return nil
}

// options returns the expansion options of the resolved configuration.
func (a *app) options() []expansion.Option {
	return append(a.cfg.Options(), expansion.WithLogger(a.logger))
}

func newLogger(w io.Writer, debug, asJSON bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if debug {
		opts.Level = slog.LevelDebug
	}
	if asJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
