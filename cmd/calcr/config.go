package main

import (
	"fmt"

	"github.com/mark3labs/calcr/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the effective configuration as YAML.

Configuration is loaded with the following precedence:
  Environment variables (CALCR_*) > Project config > Global config > Defaults

Project config: ./calcr.yml
Global config: ~/.config/calcr/calcr.yml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		out, err := config.Render(cfg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}
