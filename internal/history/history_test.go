// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/solutions/pkg/types"
)

// --- test helpers ---

func testStore(t *testing.T) *Store {
	t.Helper()
	cfg := types.HistoryConfig{
		HistoryDir: filepath.Join(t.TempDir(), "history"),
		MaxResults: 20,
	}
	store, err := NewStore(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

var base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func twoSumRun(variant string, passed bool, offset time.Duration) types.Run {
	expect := types.PairOutput(0, 1)
	out := types.PairOutput(0, 1)
	if !passed {
		out = types.ErrorOutput(types.ErrorNoPair)
	}
	return types.Run{
		Problem:   "two-sum",
		Variant:   variant,
		CaseName:  "classic",
		Input:     types.CaseInput{Nums: []int{2, 7, 11, 15}, Target: 9},
		Output:    out,
		Expect:    &expect,
		Passed:    passed,
		StartedAt: base.Add(offset),
		Elapsed:   1500 * time.Nanosecond,
	}
}

func sumsRun(variant string, offset time.Duration) types.Run {
	return types.Run{
		Problem:   "difference-of-sums",
		Variant:   variant,
		Input:     types.CaseInput{N: 10, M: 3},
		Output:    types.ValueOutput(19),
		Passed:    true,
		StartedAt: base.Add(offset),
		Elapsed:   500 * time.Nanosecond,
	}
}

func record(t *testing.T, s *Store, runs ...types.Run) []types.Run {
	t.Helper()
	out := make([]types.Run, len(runs))
	for i, run := range runs {
		stored, err := s.Record(context.Background(), run)
		require.NoError(t, err)
		out[i] = stored
	}
	return out
}

// --- tests ---

func TestNewStoreCreatesSchema(t *testing.T) {
	store := testStore(t)

	var count int
	err := store.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'runs'`,
	).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = os.Stat(filepath.Join(store.Dir(), dbFile))
	assert.NoError(t, err)
}

func TestNewStoreReopens(t *testing.T) {
	cfg := types.HistoryConfig{HistoryDir: t.TempDir()}
	first, err := NewStore(cfg, nil)
	require.NoError(t, err)
	stored, err := first.Record(context.Background(), sumsRun("loop", 0))
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewStore(cfg, nil)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Get(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "loop", got.Variant)
}

func TestRecordAndGet(t *testing.T) {
	store := testStore(t)
	stored := record(t, store, twoSumRun("hash", true, 0))[0]

	_, err := uuid.Parse(stored.ID)
	require.NoError(t, err, "record should assign a UUID")

	got, err := store.Get(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, "two-sum", got.Problem)
	assert.Equal(t, "hash", got.Variant)
	assert.Equal(t, "classic", got.CaseName)
	assert.Equal(t, []int{2, 7, 11, 15}, got.Input.Nums)
	assert.Equal(t, 9, got.Input.Target)
	assert.Equal(t, []int{0, 1}, got.Output.Pair)
	require.NotNil(t, got.Expect)
	assert.True(t, got.Expect.Equal(types.PairOutput(0, 1)))
	assert.True(t, got.Passed)
	assert.True(t, base.Equal(got.StartedAt))
	assert.Equal(t, 1500*time.Nanosecond, got.Elapsed)
}

func TestRecord_KeepsGivenIDAndFillsTime(t *testing.T) {
	store := testStore(t)
	run := sumsRun("formula", 0)
	run.ID = "fixed-id"
	run.StartedAt = time.Time{}

	before := time.Now()
	stored := record(t, store, run)[0]
	assert.Equal(t, "fixed-id", stored.ID)
	assert.False(t, stored.StartedAt.Before(before.UTC().Add(-time.Second)))

	got, err := store.Get(context.Background(), "fixed-id")
	require.NoError(t, err)
	assert.Nil(t, got.Expect)
	require.NotNil(t, got.Output.Value)
	assert.Equal(t, 19, *got.Output.Value)
}

func TestRecord_DuplicateID(t *testing.T) {
	store := testStore(t)
	run := sumsRun("loop", 0)
	run.ID = "same"
	record(t, store, run)

	_, err := store.Record(context.Background(), run)
	assert.Error(t, err)
}

func TestGet_NotFound(t *testing.T) {
	store := testStore(t)
	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecent(t *testing.T) {
	store := testStore(t)
	record(t, store,
		twoSumRun("brute", true, 1*time.Second),
		twoSumRun("hash", false, 2*time.Second),
		sumsRun("loop", 3*time.Second),
		sumsRun("formula", 4*time.Second),
		twoSumRun("hash", true, 5*time.Second),
	)

	tests := []struct {
		name string
		opts QueryOptions
		want []string
	}{
		{
			name: "all newest first",
			opts: QueryOptions{},
			want: []string{"two-sum/hash", "difference-of-sums/formula", "difference-of-sums/loop", "two-sum/hash", "two-sum/brute"},
		},
		{
			name: "by problem",
			opts: QueryOptions{Problem: "difference-of-sums"},
			want: []string{"difference-of-sums/formula", "difference-of-sums/loop"},
		},
		{
			name: "by problem and variant",
			opts: QueryOptions{Problem: "two-sum", Variant: "hash"},
			want: []string{"two-sum/hash", "two-sum/hash"},
		},
		{
			name: "failed only",
			opts: QueryOptions{FailedOnly: true},
			want: []string{"two-sum/hash"},
		},
		{
			name: "limited",
			opts: QueryOptions{MaxResults: 2},
			want: []string{"two-sum/hash", "difference-of-sums/formula"},
		},
		{
			name: "no match",
			opts: QueryOptions{Problem: "three-sum"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, err := store.Recent(context.Background(), tt.opts)
			require.NoError(t, err)
			var got []string
			for _, r := range runs {
				got = append(got, r.Problem+"/"+r.Variant)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecent_SubsecondOrdering(t *testing.T) {
	store := testStore(t)
	a := sumsRun("loop", 100*time.Millisecond)
	b := sumsRun("formula", 120*time.Millisecond)
	record(t, store, b, a)

	runs, err := store.Recent(context.Background(), QueryOptions{})
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "formula", runs[0].Variant)
	assert.Equal(t, "loop", runs[1].Variant)
}

func TestStats(t *testing.T) {
	store := testStore(t)
	record(t, store,
		twoSumRun("brute", true, 1*time.Second),
		twoSumRun("hash", false, 2*time.Second),
		twoSumRun("hash", true, 3*time.Second),
		sumsRun("loop", 4*time.Second),
	)

	stats, err := store.Stats(context.Background(), QueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, []VariantStats{
		{Problem: "difference-of-sums", Variant: "loop", Runs: 1, Passed: 1, Failed: 0, MeanElapsedNS: 500},
		{Problem: "two-sum", Variant: "brute", Runs: 1, Passed: 1, Failed: 0, MeanElapsedNS: 1500},
		{Problem: "two-sum", Variant: "hash", Runs: 2, Passed: 1, Failed: 1, MeanElapsedNS: 1500},
	}, stats)

	stats, err = store.Stats(context.Background(), QueryOptions{Problem: "difference-of-sums"})
	require.NoError(t, err)
	assert.Len(t, stats, 1)
}

func TestPrune(t *testing.T) {
	store := testStore(t)
	record(t, store,
		sumsRun("loop", 1*time.Second),
		sumsRun("loop", 2*time.Second),
		sumsRun("formula", 3*time.Second),
	)

	removed, err := store.Prune(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	runs, err := store.Recent(context.Background(), QueryOptions{})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "formula", runs[0].Variant)

	_, err = store.Prune(context.Background(), -1)
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	store := testStore(t)
	record(t, store,
		twoSumRun("brute", true, 1*time.Second),
		sumsRun("loop", 2*time.Second),
	)

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, store.Export(context.Background(), &buf, FormatJSON, QueryOptions{}))
		var runs []types.Run
		require.NoError(t, json.Unmarshal(buf.Bytes(), &runs))
		require.Len(t, runs, 2)
		assert.Equal(t, "difference-of-sums", runs[0].Problem)
		assert.Equal(t, "two-sum", runs[1].Problem)
	})

	t.Run("yaml filtered", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, store.Export(context.Background(), &buf, FormatYAML, QueryOptions{Problem: "two-sum"}))
		var runs []map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &runs))
		require.Len(t, runs, 1)
		assert.Equal(t, "brute", runs[0]["variant"])
	})

	t.Run("unsupported", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, store.Export(context.Background(), &buf, Format("csv"), QueryOptions{}))
	})
}

func TestExportFile(t *testing.T) {
	store := testStore(t)
	record(t, store, sumsRun("loop", 0))

	path, err := store.ExportFile(context.Background(), "", QueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(store.Dir(), "export.yaml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "difference-of-sums")

	path, err = store.ExportFile(context.Background(), FormatJSON, QueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(store.Dir(), "export.json"), path)

	_, err = store.ExportFile(context.Background(), Format("xml"), QueryOptions{})
	assert.Error(t, err)
}
