// Package cli implements the coinpack command: load a purse, run the
// solver, report the most valuable carryable combination.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/coinpack/config"
	"github.com/katalvlaran/coinpack/knapsack"
)

// errNothingFits drives the non-zero exit status when the optimal
// combination is empty (every coin outweighs the budget).
var errNothingFits = errors.New("no coin fits under this budget")

// Execute runs the root command; process exit status is 0 on success and
// 1 when solving failed or nothing fits.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		budget     int
		configPath string
		debug      bool
		plain      bool
	)

	cmd := &cobra.Command{
		Use:           "coinpack",
		Short:         "coinpack — carry the most valuable coins your pocket can hold",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			setupLogger(debug)

			purse, err := loadPurse(configPath, budget, cmd.Flags().Changed("budget"))
			if err != nil {
				return err
			}

			solver, err := knapsack.New(purse.Denominations)
			if err != nil {
				return err
			}
			slog.Debug("purse ready",
				"denominations", len(purse.Denominations),
				"budget", purse.Budget)

			start := time.Now()
			res, err := solver.Solve(purse.Budget)
			if err != nil {
				return err
			}
			slog.Debug("solve finished",
				"value", res.Value,
				"weight", res.Weight,
				"coins", len(res.Coins),
				"elapsed", time.Since(start))

			th := defaultTheme()
			if plain {
				th = plainTheme()
			}
			renderReport(cmd.OutOrStdout(), th, solver.Denominations(), res)

			if len(res.Coins) == 0 {
				return errNothingFits
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&budget, "budget", config.Default().Budget,
		"carrying weight budget (overrides the config file)")
	cmd.Flags().StringVar(&configPath, "config", "",
		"path to a TOML purse file; built-in Australian coins when empty")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable styled output")

	return cmd
}

// loadPurse resolves the solver input: the TOML file when given, the
// built-in table otherwise. An explicitly set --budget wins over the
// file's budget.
func loadPurse(path string, budget int, budgetSet bool) (config.Purse, error) {
	purse := config.Default()
	if path != "" {
		var err error
		if purse, err = config.Load(path); err != nil {
			return config.Purse{}, err
		}
	}
	if budgetSet {
		purse.Budget = budget
		if err := purse.Validate(); err != nil {
			return config.Purse{}, fmt.Errorf("--budget %d: %w", budget, err)
		}
	}

	return purse, nil
}

// setupLogger routes slog to stderr; debug flips the level and adds source
// locations.
func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})))
}
