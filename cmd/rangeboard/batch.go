package main

import (
	"context"
	"fmt"
	"io"

	"github.com/coder/quartz"

	"github.com/lox/rangeboard/internal/batch"
	"github.com/lox/rangeboard/internal/render"
	"github.com/lox/rangeboard/sdk/analysis"
)

// BatchCmd analyzes the scenarios saved in the config file.
type BatchCmd struct {
	Workers   int    `short:"w" help:"Scenarios analyzed at once (defaults to GOMAXPROCS)"`
	Format    string `short:"f" enum:"table,yaml" default:"table" help:"Output format (table, yaml)"`
	Combos    bool   `help:"List the combos in each category"`
	ShowEmpty bool   `help:"Show categories with no combos"`
}

func (c *BatchCmd) Run(ctx context.Context, g *Globals, out io.Writer) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	if len(cfg.Scenarios) == 0 {
		return fmt.Errorf("no scenarios configured in %s", g.Config)
	}

	scenarios := make([]analysis.Scenario, 0, len(cfg.Scenarios))
	for _, sc := range cfg.Scenarios {
		s, err := sc.Build()
		if err != nil {
			return err
		}
		scenarios = append(scenarios, s)
	}

	runner := batch.NewRunner(logger, quartz.NewReal())
	if c.Workers > 0 {
		runner.SetWorkers(c.Workers)
	}
	summary, err := runner.Run(ctx, scenarios)
	if err != nil {
		return err
	}

	if c.Format == string(render.FormatYAML) {
		reports := make([]*analysis.Report, len(summary.Results))
		for i, res := range summary.Results {
			reports[i] = res.Report
		}
		return render.YAML(out, reports)
	}

	for i, res := range summary.Results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprint(out, render.Report(res.Report, render.ReportOptions{
			ShowEmpty:  c.ShowEmpty,
			ShowCombos: c.Combos,
		}))
	}
	return nil
}
