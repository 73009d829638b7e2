package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/calcr/internal/config"
	"github.com/mark3labs/calcr/internal/demo"
	"github.com/mark3labs/calcr/internal/logger"
	"github.com/mark3labs/calcr/internal/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█▀▀ ▄▀█ █   █▀▀ █▀█"
	logoText2 = "█▄▄ █▀█ █▄▄ █▄▄ █▀▄"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		_ = logger.Close()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "calcr",
	Short:             "Sum and multiply numbers",
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              runDemo,
}

func renderLogo() string {
	p := theme.Mocha()
	line1 := theme.ApplyGradient(logoText1, p.Primary, p.Secondary)
	line2 := theme.ApplyGradient(logoText2, p.Primary, p.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

calcr reduces lists of numbers by addition or multiplication.

Run without arguments to print the built-in checks:
  Sum test: 1 + 2 + 3 + 4 = 10
  Multiplication test: 2 * 3 * 4 = 24`

	rootCmd.AddCommand(sumCmd)
	rootCmd.AddCommand(multiplyCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging points the default logger at the configured level and file.
func setupLogging(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Configure(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile}); err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}
	logger.Debug("running %s", cmd.CommandPath())
	return nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	return demo.Run(cmd.OutOrStdout())
}
