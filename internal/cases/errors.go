// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cases

import (
	"errors"
	"fmt"
)

var ErrInvalidCaseFile = errors.New("invalid case file")

// CaseError locates a case file problem by file and, when known, case name.
type CaseError struct {
	File string
	Case string
	Err  error
	Msg  string
}

func (e *CaseError) Error() string {
	if e == nil {
		return ""
	}
	loc := e.File
	if e.Case != "" {
		loc = fmt.Sprintf("%s: case %q", e.File, e.Case)
	}
	if e.Msg == "" {
		return fmt.Sprintf("%s: %v", loc, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", loc, e.Err, e.Msg)
}

func (e *CaseError) Unwrap() error { return e.Err }

func invalidCase(file, name, msg string) error {
	return &CaseError{File: file, Case: name, Err: ErrInvalidCaseFile, Msg: msg}
}
