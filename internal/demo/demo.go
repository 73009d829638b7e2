// Package demo exercises the calculator with fixed inputs.
package demo

import (
	"fmt"
	"io"

	"github.com/mark3labs/calcr/internal/logger"
	"github.com/mark3labs/calcr/pkg/calculator"
)

// Run writes the sum and multiplication checks to w, one line each.
func Run(w io.Writer) error {
	sum := calculator.SumNumbers(1, 2, 3, 4)
	logger.Debug("sum of 1..4 = %d", sum)
	if _, err := fmt.Fprintln(w, "Sum test: 1 + 2 + 3 + 4 =", sum); err != nil {
		return fmt.Errorf("writing sum result: %w", err)
	}

	product := calculator.MultiplyNumbers(2, 3, 4)
	logger.Debug("product of 2,3,4 = %d", product)
	if _, err := fmt.Fprintln(w, "Multiplication test: 2 * 3 * 4 =", product); err != nil {
		return fmt.Errorf("writing multiplication result: %w", err)
	}

	return nil
}
