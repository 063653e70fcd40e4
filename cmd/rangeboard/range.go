package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/lox/rangeboard/internal/render"
	"github.com/lox/rangeboard/sdk/analysis"
)

// RangeCmd prints a range on the hand matrix.
type RangeCmd struct {
	Percent *float64 `short:"p" xor:"source" help:"Top percent of starting hands"`
	Range   string   `short:"r" xor:"source" help:"Range in notation, e.g. '22+,A2s+,KTo+'"`
}

func (c *RangeCmd) Run(g *Globals, out io.Writer) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	var r analysis.Range
	switch {
	case c.Range != "":
		if r, err = analysis.ParseRange(c.Range); err != nil {
			return err
		}
	default:
		pct := cfg.Percentage()
		if c.Percent != nil {
			pct = *c.Percent
		}
		if pct < 0 || pct > 100 {
			return errors.New("--percent must be between 0 and 100")
		}
		r = analysis.LabelsForPercentage(pct)
	}
	logger.Debug("Built range", "labels", r.Len(), "combos", r.ComboCount())

	_, err = fmt.Fprintf(out, "%s\n\n%s\n%s\n",
		render.Matrix(r, render.MatrixOptions{}),
		render.RangeSummary(r),
		r)
	return err
}
