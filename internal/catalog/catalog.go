// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog lists the exercises this repository solves and binds each
// solution variant to its implementation. The listing lives in an embedded
// catalog.yaml; every variant named there must have a solver registered in
// solvers.go.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/solutions/pkg/types"
)

//go:embed catalog.yaml
var catalogYAML []byte

var (
	ErrUnknownProblem = errors.New("unknown problem")
	ErrUnknownVariant = errors.New("unknown variant")
)

type catalogFile struct {
	Problems []types.Problem `yaml:"problems"`
}

// Catalog is the validated set of problems with their solvers.
type Catalog struct {
	problems []types.Problem
	index    map[string]int
	solvers  map[string]map[string]Solver
}

// Filter narrows List. Zero fields match everything.
type Filter struct {
	Difficulty types.Difficulty
	Topic      string
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(catalogYAML)
}

// Parse builds a catalog from YAML and checks that every problem has a
// valid difficulty, at least one variant, and a solver for each variant.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	c := &Catalog{
		index:   make(map[string]int, len(f.Problems)),
		solvers: builtin,
	}

	for _, p := range f.Problems {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog entry %q has no id", p.Title)
		}
		if _, dup := c.index[p.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog entry %q", p.ID)
		}
		if !p.Difficulty.Valid() {
			return nil, fmt.Errorf("problem %s: invalid difficulty %q", p.ID, p.Difficulty)
		}
		if len(p.Variants) == 0 {
			return nil, fmt.Errorf("problem %s: no variants", p.ID)
		}
		for _, v := range p.Variants {
			if _, ok := builtin[p.ID][v.ID]; !ok {
				return nil, fmt.Errorf("problem %s: variant %q has no solver", p.ID, v.ID)
			}
		}
		c.index[p.ID] = len(c.problems)
		c.problems = append(c.problems, p)
	}

	return c, nil
}

// Get returns the problem with the given ID.
func (c *Catalog) Get(id string) (types.Problem, error) {
	i, ok := c.index[id]
	if !ok {
		return types.Problem{}, fmt.Errorf("%w: %q (known: %v)", ErrUnknownProblem, id, c.IDs())
	}
	return c.problems[i], nil
}

// IDs returns all problem IDs in sorted order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.problems))
	for _, p := range c.problems {
		ids = append(ids, p.ID)
	}
	sort.Strings(ids)
	return ids
}

// List returns problems matching f, ordered by problem number.
func (c *Catalog) List(f Filter) []types.Problem {
	var out []types.Problem
	for _, p := range c.problems {
		if f.Difficulty != "" && p.Difficulty != f.Difficulty {
			continue
		}
		if f.Topic != "" && !p.HasTopic(f.Topic) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// Solver returns the implementation of one variant.
func (c *Catalog) Solver(problemID, variantID string) (Solver, error) {
	p, err := c.Get(problemID)
	if err != nil {
		return nil, err
	}
	for _, v := range p.Variants {
		if v.ID == variantID {
			return c.solvers[problemID][variantID], nil
		}
	}
	return nil, fmt.Errorf("%w: %s/%s (known: %v)", ErrUnknownVariant, problemID, variantID, p.VariantIDs())
}

// ResolveVariants expands a variant selection for a problem. An empty list
// or the single entry "all" selects every variant; otherwise each entry
// must name a variant of the problem.
func (c *Catalog) ResolveVariants(problemID string, selected []string) ([]string, error) {
	p, err := c.Get(problemID)
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 || (len(selected) == 1 && selected[0] == "all") {
		return p.VariantIDs(), nil
	}
	for _, id := range selected {
		if _, err := c.Solver(problemID, id); err != nil {
			return nil, err
		}
	}
	return selected, nil
}
