package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/rangeboard/internal/config"
	"github.com/lox/rangeboard/internal/render"
)

// Globals are the flags shared by every command.
type Globals struct {
	Config   string `short:"c" default:"rangeboard.hcl" env:"RANGEBOARD_CONFIG" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" env:"RANGEBOARD_LOG_LEVEL" help:"Log level: debug, info, warn or error (overrides config)"`
	NoColor  bool   `env:"RANGEBOARD_NO_COLOR" help:"Disable colored output"`
}

// setup loads the config file, applies flag overrides and builds the root
// logger.
func (g *Globals) setup() (*config.Config, *log.Logger, error) {
	if g.NoColor {
		render.DisableColor()
	}

	cfg, err := config.LoadConfig(g.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", g.Config, err)
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := log.New(os.Stderr)
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	logger.SetLevel(level)
	logger.Debug("Loaded configuration",
		"file", g.Config,
		"scenarios", len(cfg.Scenarios),
		"default_percent", cfg.Percentage())
	return cfg, logger, nil
}
