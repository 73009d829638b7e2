package calculator

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidOperand is returned when a command-line operand is not a
// finite decimal number.
var ErrInvalidOperand = errors.New("invalid operand")

// decimal matches plain and exponent-form base-10 numbers. Hex floats,
// digit separators, NaN and Inf are excluded.
var decimal = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseOperands converts textual operands into float64 values.
// The first bad operand stops parsing; its position is 1-based.
func ParseOperands(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for i, arg := range args {
		s := strings.TrimSpace(arg)
		if !decimal.MatchString(s) {
			return nil, fmt.Errorf("%w %q at position %d", ErrInvalidOperand, arg, i+1)
		}
		// Out-of-range input such as 1e400 fails here.
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q at position %d", ErrInvalidOperand, arg, i+1)
		}
		values = append(values, v)
	}
	return values, nil
}
