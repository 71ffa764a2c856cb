// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Run is a single evaluation of one variant against one input, as recorded
// in the history database.
type Run struct {
	// ID is a random UUID assigned when the run is recorded.
	ID string `json:"id" yaml:"id"`

	Problem string `json:"problem" yaml:"problem"`
	Variant string `json:"variant" yaml:"variant"`

	// CaseName is empty for ad-hoc solves from the command line.
	CaseName string `json:"case_name,omitempty" yaml:"case_name,omitempty"`

	Input  CaseInput  `json:"input" yaml:"input"`
	Output CaseOutput `json:"output" yaml:"output"`

	// Expect is nil when the run had no expectation to check against.
	Expect *CaseOutput `json:"expect,omitempty" yaml:"expect,omitempty"`

	// Passed is true when Output matched Expect, or when there was no
	// expectation and the solver did not fail.
	Passed bool `json:"passed" yaml:"passed"`

	StartedAt time.Time     `json:"started_at" yaml:"started_at"`
	Elapsed   time.Duration `json:"elapsed" yaml:"elapsed"`
}
