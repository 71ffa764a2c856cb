// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package twosum finds two positions in a slice whose values add up to a
// target. Two strategies are provided: an exhaustive quadratic scan and a
// single pass over the slice backed by a value-to-index map. Both report a
// missing pair the same way, with ErrNoPair.
package twosum

import (
	"errors"
	"fmt"
)

// ErrNoPair is returned when no two distinct positions sum to the target.
var ErrNoPair = errors.New("no pair sums to target")

// Pair holds two distinct indices with First < Second.
type Pair struct {
	First  int `json:"first" yaml:"first"`
	Second int `json:"second" yaml:"second"`
}

// Slice returns the pair as a two-element slice.
func (p Pair) Slice() []int {
	return []int{p.First, p.Second}
}

func (p Pair) String() string {
	return fmt.Sprintf("[%d %d]", p.First, p.Second)
}

// BruteForce checks every pair (i, j) with i < j, ordered by i and then j,
// and returns the first one whose values sum to target.
func BruteForce(nums []int, target int) (Pair, error) {
	for i := 0; i < len(nums)-1; i++ {
		for j := i + 1; j < len(nums); j++ {
			if nums[i]+nums[j] == target {
				return Pair{First: i, Second: j}, nil
			}
		}
	}
	return Pair{}, fmt.Errorf("target %d over %d values: %w", target, len(nums), ErrNoPair)
}

// HashMap scans nums once. At each position it looks up the complement
// target-nums[i] among the values already seen and returns as soon as one
// is found. A value that appears more than once keeps the index where it
// was first seen. The pair is reported as (earlier index, current index),
// so First < Second as for BruteForce.
func HashMap(nums []int, target int) (Pair, error) {
	seen := make(map[int]int, len(nums))
	for i, v := range nums {
		if j, ok := seen[target-v]; ok {
			return Pair{First: j, Second: i}, nil
		}
		if _, ok := seen[v]; !ok {
			seen[v] = i
		}
	}
	return Pair{}, fmt.Errorf("target %d over %d values: %w", target, len(nums), ErrNoPair)
}
