package main

import (
	"fmt"
	"io"

	"github.com/lox/rangeboard/internal/config"
	"github.com/lox/rangeboard/internal/render"
	"github.com/lox/rangeboard/sdk/analysis"
)

// ClassifyCmd breaks a range down by category on a board.
type ClassifyCmd struct {
	Range     string   `short:"r" help:"Range in notation, e.g. 'TT+,AJs+,KQs'"`
	Percent   *float64 `short:"p" help:"Top percent of starting hands (used when --range is empty)"`
	Hero      string   `help:"Hero hole cards, e.g. AhKh"`
	Board     string   `short:"b" help:"Board cards in street order, e.g. Ks9c3d"`
	Scenario  string   `short:"s" help:"Start from a named scenario in the config file"`
	Format    string   `short:"f" enum:"table,yaml" default:"table" help:"Output format (table, yaml)"`
	Combos    bool     `help:"List the combos in each category"`
	ShowEmpty bool     `help:"Show categories with no combos"`
}

func (c *ClassifyCmd) Run(g *Globals, out io.Writer) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	sc, err := c.scenario(cfg)
	if err != nil {
		return err
	}
	scenario, err := sc.Build()
	if err != nil {
		return err
	}

	rep, err := analysis.Analyze(scenario)
	if err != nil {
		return err
	}
	logger.Debug("Classified range",
		"labels", scenario.Range.Len(),
		"classified", rep.Classified,
		"board", rep.Board)

	if c.Format == string(render.FormatYAML) {
		return render.YAML(out, rep)
	}
	_, err = fmt.Fprint(out, render.Report(rep, render.ReportOptions{
		ShowEmpty:  c.ShowEmpty,
		ShowCombos: c.Combos,
	}))
	return err
}

// scenario merges the flags over a named scenario, falling back to the
// configured default percentage when no range is given.
func (c *ClassifyCmd) scenario(cfg *config.Config) (config.ScenarioConfig, error) {
	sc := config.ScenarioConfig{}
	if c.Scenario != "" {
		named, ok := cfg.Scenario(c.Scenario)
		if !ok {
			return sc, fmt.Errorf("scenario %q not found", c.Scenario)
		}
		sc = *named
	}

	switch {
	case c.Range != "":
		sc.Range, sc.Percent = c.Range, nil
	case c.Percent != nil:
		sc.Range, sc.Percent = "", c.Percent
	case sc.Range == "" && sc.Percent == nil:
		pct := cfg.Percentage()
		sc.Percent = &pct
	}
	if c.Hero != "" {
		sc.Hero = c.Hero
	}
	if c.Board != "" {
		sc.Board = c.Board
	}
	return sc, nil
}
