// Package config loads rangeboard settings and saved scenarios from HCL.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/rangeboard/poker"
	"github.com/lox/rangeboard/sdk/analysis"
)

const (
	DefaultLogLevel = "info"
	DefaultPercent  = 15.0
)

// Config represents the complete configuration file
type Config struct {
	LogLevel       string           `hcl:"log_level,optional"`
	DefaultPercent *float64         `hcl:"default_percent,optional"`
	Scenarios      []ScenarioConfig `hcl:"scenario,block"`
}

// ScenarioConfig is one saved range-versus-board question
type ScenarioConfig struct {
	Name    string   `hcl:"name,label"`
	Range   string   `hcl:"range,optional"`
	Percent *float64 `hcl:"percent,optional"`
	Hero    string   `hcl:"hero,optional"`
	Board   string   `hcl:"board,optional"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	pct := DefaultPercent
	return &Config{
		LogLevel:       DefaultLogLevel,
		DefaultPercent: &pct,
	}
}

// LoadConfig loads configuration from an HCL file. A missing file yields
// the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file.Body)
}

// ParseConfig parses configuration from HCL source held in memory.
func ParseConfig(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*Config, error) {
	var config Config
	if diags := gohcl.DecodeBody(body, nil, &config); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}
	if config.DefaultPercent == nil {
		pct := DefaultPercent
		config.DefaultPercent = &pct
	}
	for i := range config.Scenarios {
		if config.Scenarios[i].Range == "" && config.Scenarios[i].Percent == nil {
			pct := *config.DefaultPercent
			config.Scenarios[i].Percent = &pct
		}
	}

	return &config, nil
}

// Validate validates the configuration and every scenario in it
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if c.DefaultPercent != nil {
		if err := validatePercent(*c.DefaultPercent); err != nil {
			return fmt.Errorf("default_percent: %w", err)
		}
	}

	seen := make(map[string]bool, len(c.Scenarios))
	for _, sc := range c.Scenarios {
		if seen[sc.Name] {
			return fmt.Errorf("scenario %s: defined more than once", sc.Name)
		}
		seen[sc.Name] = true

		if _, err := sc.Build(); err != nil {
			return err
		}
	}
	return nil
}

// Percentage returns the configured default range size.
func (c *Config) Percentage() float64 {
	if c.DefaultPercent == nil {
		return DefaultPercent
	}
	return *c.DefaultPercent
}

// Scenario returns a scenario by name.
func (c *Config) Scenario(name string) (*ScenarioConfig, bool) {
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == name {
			return &c.Scenarios[i], true
		}
	}
	return nil, false
}

// Build turns the scenario into an analysis input. A range in notation
// wins over a percentage.
func (sc ScenarioConfig) Build() (analysis.Scenario, error) {
	s := analysis.Scenario{Name: sc.Name}

	switch {
	case sc.Range != "":
		r, err := analysis.ParseRange(sc.Range)
		if err != nil {
			return s, fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
		s.Range = r
	case sc.Percent != nil:
		if err := validatePercent(*sc.Percent); err != nil {
			return s, fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
		s.Range = analysis.LabelsForPercentage(*sc.Percent)
	}

	var err error
	if s.Hero, err = poker.ParseCards(sc.Hero); err != nil {
		return s, fmt.Errorf("scenario %s: hero: %w", sc.Name, err)
	}
	if s.Board, err = poker.ParseCards(sc.Board); err != nil {
		return s, fmt.Errorf("scenario %s: board: %w", sc.Name, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}
	return s, nil
}

func validatePercent(pct float64) error {
	if pct < 0 || pct > 100 {
		return fmt.Errorf("percent %v out of range 0-100", pct)
	}
	return nil
}
