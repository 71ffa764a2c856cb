// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/solutions/internal/catalog"
	"github.com/pdiddy/solutions/pkg/types"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Evaluate solution variants on a single input",
	Long: `Solve runs one or more variants of an exercise on arguments given as
flags and prints each variant's answer. Use --variant to pick variants; the
default runs all of them so their answers can be compared.`,
}

// --- sums subcommand ---

var solveSumsCmd = &cobra.Command{
	Use:     "sums",
	Aliases: []string{"difference-of-sums"},
	Short:   "Sum 0..n, subtracting the multiples of m",
	Example: "  solutions solve sums --n 10 --m 3",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("n")
		m, _ := cmd.Flags().GetInt("m")
		return runSolve(cmd, "difference-of-sums", types.CaseInput{N: n, M: m})
	},
}

// --- two-sum subcommand ---

var solveTwoSumCmd = &cobra.Command{
	Use:     "two-sum",
	Short:   "Find two indices whose values add up to a target",
	Example: "  solutions solve two-sum --nums 2,7,11,15 --target 9 --variant hash",
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, _ := cmd.Flags().GetIntSlice("nums")
		target, _ := cmd.Flags().GetInt("target")
		return runSolve(cmd, "two-sum", types.CaseInput{Nums: nums, Target: target})
	},
}

// solveResult is one variant's answer to an ad-hoc solve.
type solveResult struct {
	Problem string           `json:"problem"`
	Variant string           `json:"variant"`
	Output  types.CaseOutput `json:"output"`
	Elapsed time.Duration    `json:"elapsed_ns"`

	startedAt time.Time
}

func runSolve(cmd *cobra.Command, problem string, in types.CaseInput) error {
	variants, _ := cmd.Flags().GetStringSlice("variant")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	results, err := solveVariants(cat, problem, variants, in)
	if err != nil {
		return err
	}

	if cfg.Record {
		if err := recordSolves(cmd.Context(), in, results); err != nil {
			return err
		}
	}

	if err := writeSolveResults(cmd.OutOrStdout(), results, jsonOutput); err != nil {
		return err
	}

	for _, r := range results {
		if r.Output.Error != "" {
			return errUnsolved
		}
	}
	return nil
}

// solveVariants evaluates the selected variants of problem on in, in
// catalog order.
func solveVariants(cat *catalog.Catalog, problem string, selected []string, in types.CaseInput) ([]solveResult, error) {
	ids, err := cat.ResolveVariants(problem, selected)
	if err != nil {
		return nil, err
	}

	results := make([]solveResult, 0, len(ids))
	for _, id := range ids {
		solve, err := cat.Solver(problem, id)
		if err != nil {
			return nil, err
		}
		start := time.Now()
		out := solve(in)
		elapsed := time.Since(start)

		logger.Debug("solved",
			zap.String("problem", problem),
			zap.String("variant", id),
			zap.Stringer("output", out),
			zap.Duration("elapsed", elapsed))

		results = append(results, solveResult{
			Problem:   problem,
			Variant:   id,
			Output:    out,
			Elapsed:   elapsed,
			startedAt: start,
		})
	}
	return results, nil
}

func writeSolveResults(w io.Writer, results []solveResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	fmt.Fprintf(w, "%-10s  %-20s  %s\n", "Variant", "Answer", "Elapsed")
	fmt.Fprintln(w, strings.Repeat("-", 46))
	for _, r := range results {
		fmt.Fprintf(w, "%-10s  %-20s  %s\n", r.Variant, r.Output, r.Elapsed)
	}
	return nil
}

func recordSolves(ctx context.Context, in types.CaseInput, results []solveResult) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	for _, r := range results {
		run := types.Run{
			Problem:   r.Problem,
			Variant:   r.Variant,
			Input:     in,
			Output:    r.Output,
			Passed:    r.Output.Error == "",
			StartedAt: r.startedAt,
			Elapsed:   r.Elapsed,
		}
		if _, err := store.Record(ctx, run); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	for _, c := range []*cobra.Command{solveSumsCmd, solveTwoSumCmd} {
		c.Flags().StringSlice("variant", nil, "variants to run (comma-separated, default all)")
		c.Flags().Bool("json", false, "output results as JSON")
	}

	solveSumsCmd.Flags().Int("n", 0, "inclusive upper bound of the range")
	solveSumsCmd.Flags().Int("m", 1, "divisor whose multiples are subtracted")

	solveTwoSumCmd.Flags().IntSlice("nums", nil, "values to search (comma-separated)")
	solveTwoSumCmd.Flags().Int("target", 0, "sum to find")
	_ = solveTwoSumCmd.MarkFlagRequired("nums")

	solveCmd.AddCommand(solveSumsCmd)
	solveCmd.AddCommand(solveTwoSumCmd)

	rootCmd.AddCommand(solveCmd)
}
