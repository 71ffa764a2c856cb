// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists solver runs in a SQLite database so earlier
// solves and case file evaluations can be listed, summarized and exported.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/pdiddy/solutions/pkg/types"
)

const (
	dbFile            = "runs.db"
	defaultMaxResults = 20

	// timeLayout is fixed width so started_at sorts correctly as text.
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// ErrNotFound is returned by Get for an unknown run ID.
var ErrNotFound = errors.New("run not found")

// Store manages the run history database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
	logger     *zap.Logger
}

// NewStore opens or creates the history database at
// cfg.HistoryDir/runs.db and creates the schema if it does not exist.
func NewStore(cfg types.HistoryConfig, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.HistoryDir == "" {
		cfg.HistoryDir = "history"
	}
	if err := os.MkdirAll(cfg.HistoryDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.HistoryDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{
		db:         db,
		dir:        cfg.HistoryDir,
		maxResults: maxResults,
		logger:     logger,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	logger.Debug("history store opened", zap.String("path", dbPath))
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Dir returns the directory holding the database.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			problem TEXT NOT NULL,
			variant TEXT NOT NULL,
			case_name TEXT,
			input TEXT NOT NULL,
			output TEXT NOT NULL,
			expect TEXT,
			error_kind TEXT,
			passed INTEGER NOT NULL,
			started_at TEXT NOT NULL,
			elapsed_ns INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_problem ON runs(problem, variant)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores a run. It assigns an ID when run.ID is empty and a start
// time when run.StartedAt is zero, and returns the run as stored.
func (s *Store) Record(ctx context.Context, run types.Run) (types.Run, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}
	run.StartedAt = run.StartedAt.UTC()

	inputJSON, err := json.Marshal(run.Input)
	if err != nil {
		return run, fmt.Errorf("marshaling input: %w", err)
	}
	outputJSON, err := json.Marshal(run.Output)
	if err != nil {
		return run, fmt.Errorf("marshaling output: %w", err)
	}
	var expectJSON sql.NullString
	if run.Expect != nil {
		data, err := json.Marshal(run.Expect)
		if err != nil {
			return run, fmt.Errorf("marshaling expectation: %w", err)
		}
		expectJSON = sql.NullString{String: string(data), Valid: true}
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, problem, variant, case_name, input, output, expect,
			error_kind, passed, started_at, elapsed_ns)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Problem, run.Variant, run.CaseName,
		string(inputJSON), string(outputJSON), expectJSON,
		string(run.Output.Error), run.Passed,
		run.StartedAt.Format(timeLayout), run.Elapsed.Nanoseconds(),
	)
	if err != nil {
		return run, fmt.Errorf("inserting run %s: %w", run.ID, err)
	}

	s.logger.Debug("run recorded",
		zap.String("id", run.ID),
		zap.String("problem", run.Problem),
		zap.String("variant", run.Variant),
		zap.Bool("passed", run.Passed))
	return run, nil
}

// Get returns the run with the given ID.
func (s *Store) Get(ctx context.Context, id string) (types.Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Run{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return run, err
}

const runColumns = `id, problem, variant, case_name, input, output, expect, passed, started_at, elapsed_ns`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (types.Run, error) {
	var (
		run        types.Run
		caseName   sql.NullString
		inputJSON  string
		outputJSON string
		expectJSON sql.NullString
		startedAt  string
		elapsedNS  int64
	)
	if err := row.Scan(&run.ID, &run.Problem, &run.Variant, &caseName,
		&inputJSON, &outputJSON, &expectJSON, &run.Passed, &startedAt, &elapsedNS); err != nil {
		return types.Run{}, err
	}

	run.CaseName = caseName.String
	if err := json.Unmarshal([]byte(inputJSON), &run.Input); err != nil {
		return types.Run{}, fmt.Errorf("decoding input of run %s: %w", run.ID, err)
	}
	if err := json.Unmarshal([]byte(outputJSON), &run.Output); err != nil {
		return types.Run{}, fmt.Errorf("decoding output of run %s: %w", run.ID, err)
	}
	if expectJSON.Valid {
		var expect types.CaseOutput
		if err := json.Unmarshal([]byte(expectJSON.String), &expect); err != nil {
			return types.Run{}, fmt.Errorf("decoding expectation of run %s: %w", run.ID, err)
		}
		run.Expect = &expect
	}

	t, err := time.Parse(timeLayout, startedAt)
	if err != nil {
		return types.Run{}, fmt.Errorf("parsing start time of run %s: %w", run.ID, err)
	}
	run.StartedAt = t
	run.Elapsed = time.Duration(elapsedNS)
	return run, nil
}
