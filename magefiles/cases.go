//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Cases groups targets that evaluate case files with the built binary.
type Cases mg.Namespace

// Samples runs the built-in case files for every exercise.
func (Cases) Samples() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "run", "--samples")
}

// Local runs every case file under cases/ and records the results.
func (Cases) Local() error {
	mg.Deps(Build)
	files, err := filepath.Glob(filepath.Join("cases", "*.yaml"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return nil
	}
	args := append([]string{"--record", "run"}, files...)
	return sh.RunV(filepath.Join(binDir, binName), args...)
}

// Stats prints per-variant history statistics.
func (Cases) Stats() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "history", "stats")
}
