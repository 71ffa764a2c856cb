// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/solutions/pkg/types"
)

func loadCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load()
	require.NoError(t, err)
	return c
}

func TestLoad(t *testing.T) {
	c := loadCatalog(t)

	assert.Equal(t, []string{"difference-of-sums", "two-sum"}, c.IDs())

	p, err := c.Get("two-sum")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, types.DifficultyEasy, p.Difficulty)
	assert.Equal(t, []string{"brute", "hash"}, p.VariantIDs())
}

func TestGet_Unknown(t *testing.T) {
	c := loadCatalog(t)
	_, err := c.Get("three-sum")
	assert.ErrorIs(t, err, ErrUnknownProblem)
}

func TestList(t *testing.T) {
	c := loadCatalog(t)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "all ordered by number", filter: Filter{}, want: []string{"two-sum", "difference-of-sums"}},
		{name: "by topic", filter: Filter{Topic: "math"}, want: []string{"difference-of-sums"}},
		{name: "by difficulty", filter: Filter{Difficulty: types.DifficultyEasy}, want: []string{"two-sum", "difference-of-sums"}},
		{name: "no hard problems", filter: Filter{Difficulty: types.DifficultyHard}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, p := range c.List(tt.filter) {
				got = append(got, p.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSolvers(t *testing.T) {
	c := loadCatalog(t)

	tests := []struct {
		problem string
		variant string
		input   types.CaseInput
		want    types.CaseOutput
	}{
		{"two-sum", "brute", types.CaseInput{Nums: []int{2, 7, 11, 15}, Target: 9}, types.PairOutput(0, 1)},
		{"two-sum", "hash", types.CaseInput{Nums: []int{2, 7, 11, 15}, Target: 9}, types.PairOutput(0, 1)},
		{"two-sum", "brute", types.CaseInput{Nums: []int{1, 2}, Target: 100}, types.ErrorOutput(types.ErrorNoPair)},
		{"two-sum", "hash", types.CaseInput{Nums: []int{1, 2}, Target: 100}, types.ErrorOutput(types.ErrorNoPair)},
		{"difference-of-sums", "loop", types.CaseInput{N: 10, M: 3}, types.ValueOutput(19)},
		{"difference-of-sums", "formula", types.CaseInput{N: 10, M: 3}, types.ValueOutput(19)},
		{"difference-of-sums", "loop", types.CaseInput{N: 10, M: 0}, types.ErrorOutput(types.ErrorInvalidDivisor)},
		{"difference-of-sums", "formula", types.CaseInput{N: -2, M: 3}, types.ErrorOutput(types.ErrorNegativeBound)},
	}

	for _, tt := range tests {
		t.Run(tt.problem+"/"+tt.variant, func(t *testing.T) {
			solve, err := c.Solver(tt.problem, tt.variant)
			require.NoError(t, err)
			got := solve(tt.input)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestSolver_UnknownVariant(t *testing.T) {
	c := loadCatalog(t)
	_, err := c.Solver("two-sum", "sorted")
	assert.ErrorIs(t, err, ErrUnknownVariant)

	_, err = c.Solver("nope", "brute")
	assert.ErrorIs(t, err, ErrUnknownProblem)
}

func TestResolveVariants(t *testing.T) {
	c := loadCatalog(t)

	got, err := c.ResolveVariants("difference-of-sums", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"loop", "formula"}, got)

	got, err = c.ResolveVariants("two-sum", []string{"all"})
	require.NoError(t, err)
	assert.Equal(t, []string{"brute", "hash"}, got)

	got, err = c.ResolveVariants("two-sum", []string{"hash"})
	require.NoError(t, err)
	assert.Equal(t, []string{"hash"}, got)

	_, err = c.ResolveVariants("two-sum", []string{"hash", "loop"})
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "bad difficulty",
			yaml: "problems:\n  - id: two-sum\n    difficulty: trivial\n    variants: [{id: brute}]\n",
		},
		{
			name: "variant without solver",
			yaml: "problems:\n  - id: two-sum\n    difficulty: easy\n    variants: [{id: sorted}]\n",
		},
		{
			name: "no variants",
			yaml: "problems:\n  - id: two-sum\n    difficulty: easy\n",
		},
		{
			name: "duplicate",
			yaml: "problems:\n  - id: two-sum\n    difficulty: easy\n    variants: [{id: brute}]\n  - id: two-sum\n    difficulty: easy\n    variants: [{id: hash}]\n",
		},
		{
			name: "missing id",
			yaml: "problems:\n  - title: Anonymous\n    difficulty: easy\n    variants: [{id: brute}]\n",
		},
		{
			name: "malformed",
			yaml: "problems: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}
