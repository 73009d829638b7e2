package main

import (
	"fmt"
	"slices"

	"github.com/mark3labs/calcr/internal/logger"
	"github.com/mark3labs/calcr/pkg/calculator"
	"github.com/spf13/cobra"
)

// Flag parsing is disabled on the reducers so negative operands such as -1
// reach ParseOperands instead of being read as shorthand flags.
var sumCmd = &cobra.Command{
	Use:   "sum [numbers...]",
	Short: "Print the sum of the given numbers (0 when none are given)",
	Example: `  calcr sum 1 2 3 4
  calcr sum -1.5 2`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return reduce(cmd, args, "sum", calculator.SumNumbers[float64])
	},
}

var multiplyCmd = &cobra.Command{
	Use:                "multiply [numbers...]",
	Aliases:            []string{"mul"},
	Short:              "Print the product of the given numbers (1 when none are given)",
	Example:            `  calcr multiply 2 3 -4`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return reduce(cmd, args, "product", calculator.MultiplyNumbers[float64])
	},
}

func reduce(cmd *cobra.Command, args []string, label string, fn func(...float64) float64) error {
	if slices.Contains(args, "-h") || slices.Contains(args, "--help") {
		return cmd.Help()
	}
	args = slices.DeleteFunc(slices.Clone(args), func(a string) bool { return a == "--" })

	values, err := calculator.ParseOperands(args)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Name(), err)
	}

	result := fn(values...)
	logger.Debug("%s of %v = %v", label, values, result)

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), result); err != nil {
		return fmt.Errorf("writing %s: %w", label, err)
	}
	return nil
}
