package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/quantalab/tauviz/config"
	"github.com/quantalab/tauviz/display"
)

var configInitPath string

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize tauviz configuration",
	Long: `config — Manage tauviz configuration.

Configuration is merged from /etc/tauviz/config.toml, ~/.tauviz/config.toml,
a tauviz.toml found by walking up from the working directory, and TAUVIZ_*
environment variables.

Examples:
  tauviz config show                   # effective configuration as JSON
  tauviz config init                   # write ~/.tauviz/config.toml
  tauviz config init --path ./tauviz.toml`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return display.OutputJSON(cfg)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file with the defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configInitPath
		if path == "" {
			var err error
			path, err = config.DefaultUserConfigPath()
			if err != nil {
				return err
			}
		}

		if err := config.WriteDefault(path); err != nil {
			return err
		}
		pterm.Success.Printf("Wrote %s", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().StringVar(&configInitPath, "path", "", "Config file location (default ~/.tauviz/config.toml)")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configInitCmd)
}
