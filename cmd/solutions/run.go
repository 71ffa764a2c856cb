// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/solutions/internal/cases"
	"github.com/pdiddy/solutions/internal/catalog"
)

var runCmd = &cobra.Command{
	Use:   "run [case-file...]",
	Short: "Check solution variants against YAML case files",
	Long: `Run evaluates every case in each case file under every selected variant
and reports which ones pass. A case with an expect block passes when the
answer matches it; a case without one passes when all variants agree.

Use --samples to run the built-in case files for every exercise.`,
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	useSamples, _ := cmd.Flags().GetBool("samples")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	var files []*cases.CaseFile
	if useSamples {
		samples, err := cases.Samples()
		if err != nil {
			return err
		}
		files = append(files, samples...)
	}
	for _, path := range args {
		cf, err := cases.ReadCaseFile(path)
		if err != nil {
			return err
		}
		files = append(files, cf)
	}
	if len(files) == 0 {
		return fmt.Errorf("no case files: pass one or more paths or use --samples")
	}

	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	runCfg := cfg.Runner
	runner := cases.NewRunner(cat, runCfg, logger)

	if cfg.Record {
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()
		runner.WithRecorder(store)
	}

	var reports []cases.Report
	ok := true
	for _, cf := range files {
		report, err := runner.Run(cmd.Context(), cf)
		if err != nil {
			return err
		}
		reports = append(reports, report)
		if !report.OK() {
			ok = false
			if runCfg.FailFast {
				break
			}
		}
	}

	if err := writeReports(cmd.OutOrStdout(), reports, jsonOutput); err != nil {
		return err
	}
	if !ok {
		return errUnsolved
	}
	return nil
}

func writeReports(w io.Writer, reports []cases.Report, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	var passed, failed, skipped int
	for _, report := range reports {
		fmt.Fprintf(w, "%s (%s)\n", report.Problem, report.Source)
		for _, res := range report.Results {
			status := "PASS"
			switch {
			case res.Skipped:
				status = "SKIP"
			case !res.Passed:
				status = "FAIL"
			}
			line := fmt.Sprintf("  %-4s  %-24s  %-8s  %s", status, truncate(res.Case, 24), res.Variant, res.Got)
			if res.Skipped {
				line = fmt.Sprintf("  %-4s  %-24s  %-8s", status, truncate(res.Case, 24), res.Variant)
			}
			if res.Reason != "" {
				line += "  (" + res.Reason + ")"
			}
			fmt.Fprintln(w, strings.TrimRight(line, " "))
		}
		fmt.Fprintln(w)
		passed += report.Passed
		failed += report.Failed
		skipped += report.Skipped
	}

	fmt.Fprintf(w, "passed: %d, failed: %d, skipped: %d\n", passed, failed, skipped)
	return nil
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func init() {
	runCmd.Flags().Bool("samples", false, "run the built-in case files")
	runCmd.Flags().Int("workers", 4, "maximum concurrent evaluations")
	runCmd.Flags().Bool("fail-fast", false, "stop at the first failing case")
	runCmd.Flags().Bool("json", false, "output reports as JSON")

	_ = viper.BindPFlag("runner.workers", runCmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("runner.fail_fast", runCmd.Flags().Lookup("fail-fast"))

	rootCmd.AddCommand(runCmd)
}
