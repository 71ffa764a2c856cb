// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"errors"

	"github.com/pdiddy/solutions/internal/sums"
	"github.com/pdiddy/solutions/internal/twosum"
	"github.com/pdiddy/solutions/pkg/types"
)

// Solver evaluates one variant of a problem. Failures the routine itself
// reports are carried in CaseOutput.Error rather than returned.
type Solver func(in types.CaseInput) types.CaseOutput

// builtin binds problem and variant IDs from catalog.yaml to code.
var builtin = map[string]map[string]Solver{
	"two-sum": {
		"brute": pairSolver(twosum.BruteForce),
		"hash":  pairSolver(twosum.HashMap),
	},
	"difference-of-sums": {
		"loop":    valueSolver(sums.DifferenceOfSums),
		"formula": valueSolver(sums.DifferenceOfSumsFormula),
	},
}

func pairSolver(find func([]int, int) (twosum.Pair, error)) Solver {
	return func(in types.CaseInput) types.CaseOutput {
		p, err := find(in.Nums, in.Target)
		if err != nil {
			return types.ErrorOutput(errorKind(err))
		}
		return types.CaseOutput{Pair: p.Slice()}
	}
}

func valueSolver(compute func(n, m int) (int, error)) Solver {
	return func(in types.CaseInput) types.CaseOutput {
		v, err := compute(in.N, in.M)
		if err != nil {
			return types.ErrorOutput(errorKind(err))
		}
		return types.ValueOutput(v)
	}
}

func errorKind(err error) types.ErrorKind {
	switch {
	case errors.Is(err, twosum.ErrNoPair):
		return types.ErrorNoPair
	case errors.Is(err, sums.ErrInvalidDivisor):
		return types.ErrorInvalidDivisor
	case errors.Is(err, sums.ErrNegativeBound):
		return types.ErrorNegativeBound
	}
	return types.ErrorInvalidInput
}
