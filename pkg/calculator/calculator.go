// Package calculator provides variadic arithmetic reductions over any
// built-in numeric type.
package calculator

import "golang.org/x/exp/constraints"

// Number is satisfied by every integer and floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// SumNumbers returns the sum of values. An empty call returns 0.
func SumNumbers[T Number](values ...T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// MultiplyNumbers returns the product of values. An empty call returns 1.
func MultiplyNumbers[T Number](values ...T) T {
	product := T(1)
	for _, v := range values {
		product *= v
	}
	return product
}
