package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantalab/tauviz/cmd/tauviz/commands"
	"github.com/quantalab/tauviz/config"
	"github.com/quantalab/tauviz/errors"
	"github.com/quantalab/tauviz/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tauviz",
	Short: "tauviz - Diagnostic plots for transport calculations",
	Long: `tauviz - Diagnostic plots for transport-calculation output.

Reads the JSON documents written by a transport calculation (per-state
relaxation times, linewidths, band energies) and renders diagnostic charts
next to the input files.

Available commands:
  lifetimes - Scatter plots of relaxation time and linewidth versus energy
  path      - Per-band relaxation times and band structure along a path
  inspect   - Summarize a lifetimes document (calculations, units)
  config    - Show or initialize tauviz configuration

Examples:
  tauviz lifetimes epa_relaxation_times.json 0     # plot first calculation
  tauviz path relaxation_times.json bands.json     # path plots
  tauviz inspect relaxation_times.json             # list calculations
  tauviz config init                               # write a starter config`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")

		jsonLogs := false
		if cfg, err := config.Load(); err == nil {
			jsonLogs = cfg.Log.JSON
		}
		if err := logger.InitializeWithLevel(jsonLogs, logger.VerbosityToLevel(verbosity)); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		logger.Debugf("Verbosity: %s", logger.LevelName(verbosity))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")

	rootCmd.AddCommand(commands.LifetimesCmd)
	rootCmd.AddCommand(commands.PathCmd)
	rootCmd.AddCommand(commands.InspectCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if hints := errors.FlattenHints(err); hints != "" {
			fmt.Fprintln(os.Stderr, "Hint:", hints)
		}
		os.Exit(1)
	}
}
