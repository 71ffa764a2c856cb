// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// ErrorKind names a failure a solver can report, in a form that survives
// being written to a case file or the history database.
type ErrorKind string

const (
	ErrorInvalidDivisor ErrorKind = "invalid_divisor"
	ErrorNegativeBound  ErrorKind = "negative_bound"
	ErrorNoPair         ErrorKind = "no_pair"
	ErrorInvalidInput   ErrorKind = "invalid_input"
)

// CaseInput carries the arguments for any solver. Each problem reads only
// the fields it needs: N and M for the sum-difference, Nums and Target for
// the pair finder.
type CaseInput struct {
	N      int   `json:"n,omitempty" yaml:"n,omitempty"`
	M      int   `json:"m,omitempty" yaml:"m,omitempty"`
	Nums   []int `json:"nums,omitempty" yaml:"nums,omitempty"`
	Target int   `json:"target,omitempty" yaml:"target,omitempty"`
}

// CaseOutput is what a solver produced. Exactly one of Value, Pair or Error
// is set.
type CaseOutput struct {
	Value *int      `json:"value,omitempty" yaml:"value,omitempty"`
	Pair  []int     `json:"pair,omitempty" yaml:"pair,omitempty"`
	Error ErrorKind `json:"error,omitempty" yaml:"error,omitempty"`
}

// ValueOutput wraps a scalar result.
func ValueOutput(v int) CaseOutput {
	return CaseOutput{Value: &v}
}

// PairOutput wraps an index pair result.
func PairOutput(i, j int) CaseOutput {
	return CaseOutput{Pair: []int{i, j}}
}

// ErrorOutput wraps a solver failure.
func ErrorOutput(kind ErrorKind) CaseOutput {
	return CaseOutput{Error: kind}
}

// Equal reports whether two outputs carry the same result.
func (o CaseOutput) Equal(other CaseOutput) bool {
	if o.Error != other.Error {
		return false
	}
	if (o.Value == nil) != (other.Value == nil) {
		return false
	}
	if o.Value != nil && *o.Value != *other.Value {
		return false
	}
	if len(o.Pair) != len(other.Pair) {
		return false
	}
	for i := range o.Pair {
		if o.Pair[i] != other.Pair[i] {
			return false
		}
	}
	return true
}

// String renders the output for tables and log lines.
func (o CaseOutput) String() string {
	switch {
	case o.Error != "":
		return "error:" + string(o.Error)
	case o.Value != nil:
		return fmt.Sprintf("%d", *o.Value)
	case o.Pair != nil:
		return fmt.Sprintf("%v", o.Pair)
	}
	return "<none>"
}

// Case is one named input with its expected output.
type Case struct {
	Name   string     `json:"name" yaml:"name"`
	Input  CaseInput  `json:"input" yaml:"input"`
	Expect CaseOutput `json:"expect" yaml:"expect"`
}
