// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/solutions/pkg/types"
)

// QueryOptions filters history queries. Zero fields match everything.
type QueryOptions struct {
	Problem string
	Variant string

	// FailedOnly restricts results to runs that did not pass.
	FailedOnly bool

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

func (q QueryOptions) where() (string, []any) {
	var (
		clauses []string
		args    []any
	)
	if q.Problem != "" {
		clauses = append(clauses, "problem = ?")
		args = append(args, q.Problem)
	}
	if q.Variant != "" {
		clauses = append(clauses, "variant = ?")
		args = append(args, q.Variant)
	}
	if q.FailedOnly {
		clauses = append(clauses, "passed = 0")
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// Recent returns matching runs, newest first.
func (s *Store) Recent(ctx context.Context, opts QueryOptions) ([]types.Run, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	where, args := opts.where()
	query := `SELECT ` + runColumns + ` FROM runs` + where +
		` ORDER BY started_at DESC, rowid DESC LIMIT ?`
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// VariantStats aggregates the runs of one problem variant.
type VariantStats struct {
	Problem string `json:"problem" yaml:"problem"`
	Variant string `json:"variant" yaml:"variant"`
	Runs    int    `json:"runs" yaml:"runs"`
	Passed  int    `json:"passed" yaml:"passed"`
	Failed  int    `json:"failed" yaml:"failed"`

	// MeanElapsedNS is the mean evaluation time in nanoseconds.
	MeanElapsedNS int64 `json:"mean_elapsed_ns" yaml:"mean_elapsed_ns"`
}

// Stats returns per-variant counts for matching runs, ordered by problem
// and variant. MaxResults is ignored.
func (s *Store) Stats(ctx context.Context, opts QueryOptions) ([]VariantStats, error) {
	where, args := opts.where()
	query := `SELECT problem, variant, count(*), sum(passed), CAST(avg(elapsed_ns) AS INTEGER)
		FROM runs` + where + ` GROUP BY problem, variant ORDER BY problem, variant`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying run stats: %w", err)
	}
	defer rows.Close()

	var stats []VariantStats
	for rows.Next() {
		var vs VariantStats
		if err := rows.Scan(&vs.Problem, &vs.Variant, &vs.Runs, &vs.Passed, &vs.MeanElapsedNS); err != nil {
			return nil, fmt.Errorf("scanning run stats: %w", err)
		}
		vs.Failed = vs.Runs - vs.Passed
		stats = append(stats, vs)
	}
	return stats, rows.Err()
}

// Prune deletes runs older than the newest keep runs and returns how many
// were removed.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		return 0, fmt.Errorf("keep must not be negative, got %d", keep)
	}
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM runs WHERE rowid NOT IN (
			SELECT rowid FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("pruning runs: %w", err)
	}
	return res.RowsAffected()
}
