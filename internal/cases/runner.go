// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/solutions/internal/catalog"
	"github.com/pdiddy/solutions/pkg/types"
)

const defaultWorkers = 4

// errStopped aborts the remaining evaluations after a failure in fail-fast
// mode. It never escapes Run.
var errStopped = errors.New("stopped after first failure")

// Recorder stores finished evaluations. history.Store satisfies it.
type Recorder interface {
	Record(ctx context.Context, run types.Run) (types.Run, error)
}

// Result is the outcome of one case under one variant.
type Result struct {
	Case    string            `json:"case" yaml:"case"`
	Variant string            `json:"variant" yaml:"variant"`
	Input   types.CaseInput   `json:"input" yaml:"input"`
	Expect  *types.CaseOutput `json:"expect,omitempty" yaml:"expect,omitempty"`
	Got     types.CaseOutput  `json:"got" yaml:"got"`
	Passed  bool              `json:"passed" yaml:"passed"`

	// Skipped is set for evaluations never started because an earlier
	// failure stopped a fail-fast run.
	Skipped bool `json:"skipped,omitempty" yaml:"skipped,omitempty"`

	// Reason explains a failure in words.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`

	StartedAt time.Time     `json:"-" yaml:"-"`
	Elapsed   time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Report collects results in case order, then variant order.
type Report struct {
	Problem string   `json:"problem" yaml:"problem"`
	Source  string   `json:"source" yaml:"source"`
	Results []Result `json:"results" yaml:"results"`
	Passed  int      `json:"passed" yaml:"passed"`
	Failed  int      `json:"failed" yaml:"failed"`
	Skipped int      `json:"skipped" yaml:"skipped"`
}

// Total returns the number of evaluations in the report.
func (r Report) Total() int {
	return r.Passed + r.Failed + r.Skipped
}

// OK reports whether every evaluation ran and passed.
func (r Report) OK() bool {
	return r.Failed == 0 && r.Skipped == 0
}

// Runner evaluates case files against catalog solvers.
type Runner struct {
	catalog  *catalog.Catalog
	cfg      types.RunnerConfig
	logger   *zap.Logger
	recorder Recorder
}

// NewRunner creates a runner. A nil logger discards log output.
func NewRunner(cat *catalog.Catalog, cfg types.RunnerConfig, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	return &Runner{catalog: cat, cfg: cfg, logger: logger}
}

// WithRecorder makes the runner store every finished evaluation.
func (r *Runner) WithRecorder(rec Recorder) *Runner {
	r.recorder = rec
	return r
}

// Run validates cf and evaluates every case under every selected variant.
// Evaluations run concurrently up to the configured worker count; the
// report order does not depend on scheduling.
//
// A case with an expectation passes when the output equals it. A case
// without one passes when the solver did not fail and every variant
// produced the same output.
func (r *Runner) Run(ctx context.Context, cf *CaseFile) (Report, error) {
	if err := cf.Validate(r.catalog); err != nil {
		return Report{}, err
	}
	variants, err := r.catalog.ResolveVariants(cf.Problem, cf.Variants)
	if err != nil {
		return Report{}, err
	}

	type job struct {
		index   int
		c       types.Case
		variant string
		solve   catalog.Solver
	}

	var jobs []job
	for _, c := range cf.Cases {
		for _, v := range variants {
			solve, err := r.catalog.Solver(cf.Problem, v)
			if err != nil {
				return Report{}, err
			}
			jobs = append(jobs, job{index: len(jobs), c: c, variant: v, solve: solve})
		}
	}

	results := make([]Result, len(jobs))
	for i, j := range jobs {
		results[i] = Result{Case: j.c.Name, Variant: j.variant, Input: j.c.Input, Skipped: true}
		if hasExpectation(j.c) {
			expect := j.c.Expect
			results[i].Expect = &expect
		}
	}

	r.logger.Debug("running case file",
		zap.String("source", cf.Source()),
		zap.String("problem", cf.Problem),
		zap.Strings("variants", variants),
		zap.Int("evaluations", len(jobs)),
		zap.Int("workers", r.cfg.Workers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)

	for _, j := range jobs {
		if gctx.Err() != nil {
			break
		}
		j := j
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			res := &results[j.index]
			res.Skipped = false
			res.StartedAt = time.Now()
			res.Got = j.solve(j.c.Input)
			res.Elapsed = time.Since(res.StartedAt)

			if res.Expect != nil && !res.Expect.Equal(res.Got) {
				res.Reason = fmt.Sprintf("expected %s, got %s", res.Expect, res.Got)
				r.logger.Debug("case failed",
					zap.String("case", j.c.Name),
					zap.String("variant", j.variant),
					zap.String("reason", res.Reason))
				if r.cfg.FailFast {
					return errStopped
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, errStopped) {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	checkAgreement(results)

	report := Report{Problem: cf.Problem, Source: cf.Source(), Results: results}
	for i := range results {
		res := &results[i]
		switch {
		case res.Skipped:
			report.Skipped++
		case res.Reason == "":
			res.Passed = true
			report.Passed++
		default:
			report.Failed++
		}
	}

	if err := r.record(ctx, cf.Problem, results); err != nil {
		return report, err
	}

	r.logger.Info("case file finished",
		zap.String("source", cf.Source()),
		zap.Int("passed", report.Passed),
		zap.Int("failed", report.Failed),
		zap.Int("skipped", report.Skipped))

	return report, nil
}

// checkAgreement fills in a failure reason for cases without an
// expectation whose variants failed or disagree. Results for one case are
// adjacent.
func checkAgreement(results []Result) {
	for start := 0; start < len(results); {
		end := start
		for end < len(results) && results[end].Case == results[start].Case {
			end++
		}
		group := results[start:end]
		start = end

		if group[0].Expect != nil {
			continue
		}
		var ref *Result
		for i := range group {
			if group[i].Skipped {
				continue
			}
			if group[i].Got.Error != "" {
				group[i].Reason = fmt.Sprintf("solver failed: %s", group[i].Got.Error)
				continue
			}
			if ref == nil {
				ref = &group[i]
				continue
			}
			if !ref.Got.Equal(group[i].Got) {
				group[i].Reason = fmt.Sprintf("disagrees with %s: %s vs %s", ref.Variant, group[i].Got, ref.Got)
			}
		}
	}
}

func (r *Runner) record(ctx context.Context, problem string, results []Result) error {
	if r.recorder == nil {
		return nil
	}
	for _, res := range results {
		if res.Skipped {
			continue
		}
		run := types.Run{
			Problem:   problem,
			Variant:   res.Variant,
			CaseName:  res.Case,
			Input:     res.Input,
			Output:    res.Got,
			Expect:    res.Expect,
			Passed:    res.Reason == "",
			StartedAt: res.StartedAt,
			Elapsed:   res.Elapsed,
		}
		if _, err := r.recorder.Record(ctx, run); err != nil {
			return fmt.Errorf("recording %s/%s: %w", res.Case, res.Variant, err)
		}
	}
	return nil
}
