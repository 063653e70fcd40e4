// Package batch analyzes many scenarios in parallel.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/rangeboard/sdk/analysis"
)

// Result is the report for one scenario and how long it took.
type Result struct {
	Report  *analysis.Report
	Elapsed time.Duration
}

// Summary holds the results in input order.
type Summary struct {
	Results []Result
	Elapsed time.Duration
}

// Runner fans scenarios out over a bounded worker pool.
type Runner struct {
	logger  *log.Logger
	clock   quartz.Clock
	workers int

	analyze func(analysis.Scenario) (*analysis.Report, error)
}

// NewRunner creates a runner with one worker per CPU.
func NewRunner(logger *log.Logger, clock quartz.Clock) *Runner {
	return &Runner{
		logger:  logger.WithPrefix("batch"),
		clock:   clock,
		workers: runtime.GOMAXPROCS(0),
		analyze: analysis.Analyze,
	}
}

// SetWorkers caps the number of scenarios analyzed at once.
func (r *Runner) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	r.workers = n
}

// Run analyzes every scenario. Results keep the input order. The first
// failing scenario cancels the rest and its error is returned.
func (r *Runner) Run(ctx context.Context, scenarios []analysis.Scenario) (*Summary, error) {
	start := r.clock.Now()
	results := make([]Result, len(scenarios))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, s := range scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			began := r.clock.Now()
			rep, err := r.analyze(s)
			if err != nil {
				return fmt.Errorf("scenario %q: %w", s.Name, err)
			}
			results[i] = Result{Report: rep, Elapsed: r.clock.Since(began)}

			r.logger.Debug("Scenario analyzed",
				"name", s.Name,
				"combos", rep.Classified,
				"elapsed", results[i].Elapsed)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &Summary{Results: results, Elapsed: r.clock.Since(start)}
	r.logger.Info("Batch complete", "scenarios", len(scenarios), "elapsed", summary.Elapsed)
	return summary, nil
}
