// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the solutions harness:
// problems and their variants, case inputs and expectations, run records,
// and configuration.
package types

// Difficulty is the difficulty tier a problem is filed under.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Problem describes one exercise and the solution variants available for it.
type Problem struct {
	// ID is the stable slug used on the command line (e.g. "two-sum").
	ID string `json:"id" yaml:"id"`

	// Number is the exercise number on the judge it was taken from.
	Number int `json:"number" yaml:"number"`

	// Title is the human-readable problem title.
	Title string `json:"title" yaml:"title"`

	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`

	// Topics lists the categories the problem is filed under (e.g. "arrays").
	Topics []string `json:"topics" yaml:"topics"`

	// Summary is a one-paragraph statement of the contract.
	Summary string `json:"summary" yaml:"summary"`

	// Variants lists the implementations in catalog order. The first one is
	// the default.
	Variants []Variant `json:"variants" yaml:"variants"`
}

// Variant is one implementation strategy for a problem.
type Variant struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`

	// Time and Space are the asymptotic costs, e.g. "O(n^2)" and "O(1)".
	Time  string `json:"time" yaml:"time"`
	Space string `json:"space" yaml:"space"`
}

// HasTopic reports whether the problem is filed under topic.
func (p Problem) HasTopic(topic string) bool {
	for _, t := range p.Topics {
		if t == topic {
			return true
		}
	}
	return false
}

// VariantIDs returns the variant identifiers in catalog order.
func (p Problem) VariantIDs() []string {
	ids := make([]string, len(p.Variants))
	for i, v := range p.Variants {
		ids[i] = v.ID
	}
	return ids
}
