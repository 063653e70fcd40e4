package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/rangeboard/internal/tui"
	"github.com/lox/rangeboard/poker"
)

// TUICmd opens the range explorer.
type TUICmd struct {
	Percent *float64 `short:"p" help:"Starting percent of hands (defaults to config)"`
	Seed    *int64   `help:"Deterministic RNG seed for random cards (optional)"`
	LogFile string   `type:"path" help:"Write logs to this file while the explorer runs"`
}

func (c *TUICmd) Run(ctx context.Context, g *Globals) error {
	cfg, stderrLogger, err := g.setup()
	if err != nil {
		return err
	}

	// The explorer owns the terminal, so logs go to a file or nowhere.
	var w io.Writer = io.Discard
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				stderrLogger.Error("Failed to close log file", "error", err)
			}
		}()
		w = f
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           stderrLogger.GetLevel(),
	})

	pct := cfg.Percentage()
	if c.Percent != nil {
		pct = *c.Percent
	}
	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	logger.Info("Starting range explorer", "percent", pct, "seed", seed)

	return tui.Run(ctx, tui.NewModel(logger, poker.NewRand(seed), pct))
}
