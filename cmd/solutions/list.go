// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/solutions/internal/catalog"
	"github.com/pdiddy/solutions/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the exercises and their solution variants",
	RunE: func(cmd *cobra.Command, args []string) error {
		difficulty, _ := cmd.Flags().GetString("difficulty")
		topic, _ := cmd.Flags().GetString("topic")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		d := types.Difficulty(difficulty)
		if d != "" && !d.Valid() {
			return fmt.Errorf("unknown difficulty %q: use easy, medium, or hard", difficulty)
		}

		cat, err := catalog.Load()
		if err != nil {
			return err
		}
		problems := cat.List(catalog.Filter{Difficulty: d, Topic: topic})
		return writeProblems(cmd.OutOrStdout(), problems, jsonOutput)
	},
}

func writeProblems(w io.Writer, problems []types.Problem, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(problems)
	}

	if len(problems) == 0 {
		fmt.Fprintln(w, "No exercises found.")
		return nil
	}

	for _, p := range problems {
		fmt.Fprintf(w, "%5d  %-20s  %-6s  %s\n", p.Number, p.ID, p.Difficulty, p.Title)
		fmt.Fprintf(w, "       topics: %s\n", strings.Join(p.Topics, ", "))
		for _, v := range p.Variants {
			fmt.Fprintf(w, "       - %-8s %-24s time %-7s space %s\n", v.ID, v.Name, v.Time, v.Space)
		}
	}
	return nil
}

func init() {
	listCmd.Flags().String("difficulty", "", "filter by difficulty: easy, medium, hard")
	listCmd.Flags().String("topic", "", "filter by topic (e.g. arrays, math)")
	listCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(listCmd)
}
