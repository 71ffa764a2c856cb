// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/solutions/internal/history"
	"github.com/pdiddy/solutions/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded runs (list, stats, export, prune)",
	Long: `History reads the SQLite run history written by solve and run when
--record is set (or record: true in solutions.yaml).`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.Recent(cmd.Context(), historyQueryFromFlags(cmd))
		if err != nil {
			return err
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		return writeRuns(cmd.OutOrStdout(), runs, jsonOutput)
	},
}

func writeRuns(w io.Writer, runs []types.Run, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}

	fmt.Fprintf(w, "%-8s  %-20s  %-20s  %-8s  %-18s  %-4s  %s\n",
		"ID", "Started", "Problem", "Variant", "Case", "Pass", "Answer")
	fmt.Fprintln(w, strings.Repeat("-", 104))
	for _, r := range runs {
		pass := "yes"
		if !r.Passed {
			pass = "no"
		}
		fmt.Fprintf(w, "%-8s  %-20s  %-20s  %-8s  %-18s  %-4s  %s\n",
			shortID(r.ID), r.StartedAt.Local().Format(time.DateTime),
			truncate(r.Problem, 20), r.Variant, truncate(r.CaseName, 18), pass, r.Output)
	}
	fmt.Fprintf(w, "\n%d runs\n", len(runs))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// --- stats subcommand ---

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize recorded runs per problem variant",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		stats, err := store.Stats(cmd.Context(), historyQueryFromFlags(cmd))
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		}
		if len(stats) == 0 {
			fmt.Fprintln(w, "No runs recorded.")
			return nil
		}
		fmt.Fprintf(w, "%-20s  %-8s  %6s  %6s  %6s  %s\n", "Problem", "Variant", "Runs", "Passed", "Failed", "Mean")
		fmt.Fprintln(w, strings.Repeat("-", 66))
		for _, s := range stats {
			fmt.Fprintf(w, "%-20s  %-8s  %6d  %6d  %6d  %s\n",
				truncate(s.Problem, 20), s.Variant, s.Runs, s.Passed, s.Failed, time.Duration(s.MeanElapsedNS))
		}
		return nil
	},
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded runs to YAML or JSON",
	Long: `Export writes matching runs to export.yaml or export.json in the history
directory, or to standard output with --stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		toStdout, _ := cmd.Flags().GetBool("stdout")

		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		opts := historyQueryFromFlags(cmd)
		if toStdout {
			return store.Export(cmd.Context(), cmd.OutOrStdout(), history.Format(format), opts)
		}
		path, err := store.ExportFile(cmd.Context(), history.Format(format), opts)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Exported to", path)
		return nil
	},
}

// --- prune subcommand ---

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all but the newest runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		keep, _ := cmd.Flags().GetInt("keep")

		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		removed, err := store.Prune(cmd.Context(), keep)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %d runs\n", removed)
		return nil
	},
}

// --- shared helpers ---

func openHistory() (*history.Store, error) {
	return history.NewStore(cfg.History, logger)
}

func historyQueryFromFlags(cmd *cobra.Command) history.QueryOptions {
	problem, _ := cmd.Flags().GetString("problem")
	variant, _ := cmd.Flags().GetString("variant")
	failed, _ := cmd.Flags().GetBool("failed")
	limit, _ := cmd.Flags().GetInt("limit")

	return history.QueryOptions{
		Problem:    problem,
		Variant:    variant,
		FailedOnly: failed,
		MaxResults: limit,
	}
}

func init() {
	// Filter flags shared by every subcommand.
	historyCmd.PersistentFlags().String("problem", "", "filter by problem ID")
	historyCmd.PersistentFlags().String("variant", "", "filter by variant ID")
	historyCmd.PersistentFlags().Bool("failed", false, "only runs that did not pass")

	historyListCmd.Flags().Int("limit", 0, "maximum runs to show (0 = use default)")
	historyListCmd.Flags().Bool("json", false, "output runs as JSON")

	historyStatsCmd.Flags().Bool("json", false, "output stats as JSON")

	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	historyExportCmd.Flags().Bool("stdout", false, "write to standard output instead of a file")

	historyPruneCmd.Flags().Int("keep", 1000, "number of newest runs to keep")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyStatsCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyPruneCmd)

	rootCmd.AddCommand(historyCmd)
}
