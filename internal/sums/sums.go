// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sums computes the divisible/non-divisible sum difference over an
// integer range: every integer in 0..n inclusive is added, except those
// divisible by m, which are subtracted.
package sums

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDivisor is returned when the divisor is zero or negative.
	ErrInvalidDivisor = errors.New("divisor must be positive")

	// ErrNegativeBound is returned when the upper bound is below zero.
	ErrNegativeBound = errors.New("upper bound must not be negative")
)

func validate(n, m int) error {
	if m <= 0 {
		return fmt.Errorf("m=%d: %w", m, ErrInvalidDivisor)
	}
	if n < 0 {
		return fmt.Errorf("n=%d: %w", n, ErrNegativeBound)
	}
	return nil
}

// DifferenceOfSums walks 0..n and returns the sum of the terms not divisible
// by m minus the sum of the terms that are.
func DifferenceOfSums(n, m int) (int, error) {
	if err := validate(n, m); err != nil {
		return 0, err
	}

	result := 0
	for i := 0; i <= n; i++ {
		if i%m == 0 {
			result -= i
		} else {
			result += i
		}
	}
	return result, nil
}

// DifferenceOfSumsFormula computes the same value in constant time. The
// multiples of m in 0..n are m, 2m, ..., km with k = n/m, so they sum to
// m*k(k+1)/2; they are counted once in the full range sum and must be
// taken away twice. The result is exact whenever it fits in an int, even
// if n(n+1) alone would not.
func DifferenceOfSumsFormula(n, m int) (int, error) {
	if err := validate(n, m); err != nil {
		return 0, err
	}

	total := triangular(n)
	divisible := m * triangular(n/m)
	return total - 2*divisible, nil
}

// triangular returns x(x+1)/2, halving the even factor first so no product
// loses its low bits to wraparound.
func triangular(x int) int {
	if x%2 == 0 {
		return (x / 2) * (x + 1)
	}
	return x * ((x + 1) / 2)
}
