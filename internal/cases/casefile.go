// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cases reads and writes YAML case files and evaluates them against
// the solvers in the catalog.
package cases

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/solutions/internal/catalog"
	"github.com/pdiddy/solutions/pkg/types"
)

// CaseFile is the on-disk representation of a set of cases for one problem.
type CaseFile struct {
	Problem string `yaml:"problem"`

	// Variants restricts the run to these variant IDs. Empty means all.
	Variants []string `yaml:"variants,omitempty"`

	Cases []types.Case `yaml:"cases"`

	// path is where the file was read from, for error messages.
	path string
}

// Source returns the path the file was read from, or "<memory>".
func (f *CaseFile) Source() string {
	if f.path == "" {
		return "<memory>"
	}
	return f.path
}

// ReadCaseFile loads and parses a case file from disk.
func ReadCaseFile(path string) (*CaseFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading case file: %w", err)
	}
	cf, err := ParseCaseFile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cf.path = path
	return cf, nil
}

// ParseCaseFile parses case file YAML.
func ParseCaseFile(data []byte) (*CaseFile, error) {
	var cf CaseFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing case file: %w", err)
	}
	return &cf, nil
}

// WriteCaseFile saves a case file as YAML.
func WriteCaseFile(path string, cf *CaseFile) error {
	data, err := yaml.Marshal(cf)
	if err != nil {
		return fmt.Errorf("marshaling case file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks the file against the catalog: the problem and any listed
// variants must exist, case names must be unique, and an expectation may
// set at most one of value, pair and error. Unnamed cases are given
// positional names.
func (f *CaseFile) Validate(cat *catalog.Catalog) error {
	if f.Problem == "" {
		return &CaseError{File: f.Source(), Err: ErrInvalidCaseFile, Msg: "problem is required"}
	}
	if _, err := cat.ResolveVariants(f.Problem, f.Variants); err != nil {
		return &CaseError{File: f.Source(), Err: err}
	}
	if len(f.Cases) == 0 {
		return &CaseError{File: f.Source(), Err: ErrInvalidCaseFile, Msg: "no cases"}
	}

	seen := make(map[string]bool, len(f.Cases))
	for i := range f.Cases {
		c := &f.Cases[i]
		if c.Name == "" {
			c.Name = fmt.Sprintf("case-%d", i+1)
		}
		if seen[c.Name] {
			return invalidCase(f.Source(), c.Name, "duplicate case name")
		}
		seen[c.Name] = true

		set := 0
		if c.Expect.Value != nil {
			set++
		}
		if c.Expect.Pair != nil {
			set++
			if len(c.Expect.Pair) != 2 {
				return invalidCase(f.Source(), c.Name, "expected pair must have two indices")
			}
		}
		if c.Expect.Error != "" {
			set++
		}
		if set > 1 {
			return invalidCase(f.Source(), c.Name, "expect sets more than one of value, pair, error")
		}
	}
	return nil
}

// hasExpectation reports whether the case states an expected output.
func hasExpectation(c types.Case) bool {
	return c.Expect.Value != nil || c.Expect.Pair != nil || c.Expect.Error != ""
}
