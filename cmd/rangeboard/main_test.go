package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/lox/rangeboard/poker"
	"github.com/lox/rangeboard/sdk/analysis"
)

// run parses args like main does and returns what the command printed.
func run(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	if configPath == "" {
		configPath = filepath.Join(t.TempDir(), "missing.hcl")
	}

	var cli CLI
	var out bytes.Buffer
	parser, err := kong.New(&cli,
		kong.Name("rangeboard"),
		kong.Vars{"version": version},
		kong.BindTo(context.Background(), (*context.Context)(nil)),
		kong.BindTo(io.Writer(&out), (*io.Writer)(nil)),
	)
	require.NoError(t, err)

	kctx, err := parser.Parse(append([]string{"--config", configPath, "--no-color", "--log-level", "error"}, args...))
	if err != nil {
		return "", err
	}
	err = kctx.Run(&cli.Globals)
	return out.String(), err
}

func TestClassifyCommand(t *testing.T) {
	out, err := run(t, "", "classify", "--range", "AA,KK,QQ", "--hero", "AhKh", "--board", "Ks9c3d")
	require.NoError(t, err)
	assert.Contains(t, out, "Hero:  Ah Kh (AKs, Top Pair)")
	assert.Contains(t, out, "Beats hero: 4 of 10 combos (40.0%)")

	t.Run("yaml", func(t *testing.T) {
		out, err := run(t, "", "classify", "-r", "AA,KK,QQ", "--hero", "AhKh", "-b", "Ks9c3d", "-f", "yaml")
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, 10, decoded["classified"])
		assert.Equal(t, 4, decoded["beats_hero"])
	})

	t.Run("defaults to the configured percentage", func(t *testing.T) {
		out, err := run(t, "", "classify", "--board", "Ks9c3d")
		require.NoError(t, err)
		assert.Contains(t, out, "Board: Ks 9c 3d")
		assert.NotContains(t, out, "Beats hero")
	})

	t.Run("duplicate cards are rejected", func(t *testing.T) {
		_, err := run(t, "", "classify", "--range", "AA", "--hero", "AhKh", "--board", "Ah9c3d")
		assert.ErrorIs(t, err, analysis.ErrDuplicateCard)
	})

	t.Run("bad notation is rejected", func(t *testing.T) {
		_, err := run(t, "", "classify", "--range", "AKx")
		assert.ErrorIs(t, err, analysis.ErrInvalidLabel)
	})

	t.Run("unknown format is a usage error", func(t *testing.T) {
		_, err := run(t, "", "classify", "--format", "json")
		assert.Error(t, err)
	})
}

func TestClassifyNamedScenario(t *testing.T) {
	path := writeConfig(t, `
scenario "kings" {
  range = "AA,KK,QQ"
  hero  = "AhKh"
  board = "Ks 9c 3d"
}
`)

	out, err := run(t, path, "classify", "--scenario", "kings")
	require.NoError(t, err)
	assert.Contains(t, out, "kings")
	assert.Contains(t, out, "Beats hero: 4 of 10 combos (40.0%)")

	// Flags override the saved scenario.
	out, err = run(t, path, "classify", "--scenario", "kings", "--range", "QQ")
	require.NoError(t, err)
	assert.Contains(t, out, "Beats hero: 0 of 6 combos (0.0%)")

	_, err = run(t, path, "classify", "--scenario", "queens")
	assert.ErrorContains(t, err, `scenario "queens" not found`)
}

func TestRangeCommand(t *testing.T) {
	out, err := run(t, "", "range", "--range", "TT+,AJs+,KQs")
	require.NoError(t, err)
	assert.Contains(t, out, "9 labels, 46/1326 combos (3.5%)")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 13+3, "matrix, blank line, summary, notation")

	out, err = run(t, "", "range", "--percent", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "169 labels, 1326/1326 combos (100.0%)")

	_, err = run(t, "", "range", "--percent", "10", "--range", "AA")
	assert.Error(t, err, "--percent and --range are exclusive")

	_, err = run(t, "", "range", "--percent", "101")
	assert.Error(t, err)
}

func TestRandomCommand(t *testing.T) {
	first, err := run(t, "", "random", "--seed", "7", "--count", "3", "--dead", "AhKh")
	require.NoError(t, err)
	second, err := run(t, "", "random", "--seed", "7", "--count", "3", "--dead", "AhKh")
	require.NoError(t, err)
	assert.Equal(t, first, second, "same seed, same cards")

	cards, err := poker.ParseCards(strings.TrimSpace(first))
	require.NoError(t, err)
	require.Len(t, cards, 3)
	picked := poker.NewHand(cards...)
	assert.Equal(t, 3, picked.CountCards())
	assert.False(t, picked.Overlaps(poker.MustParseHand("AhKh")))

	_, err = run(t, "", "random", "--count", "51", "--dead", "AhKh")
	assert.ErrorIs(t, err, poker.ErrNoCardsAvailable)

	_, err = run(t, "", "random", "--count", "0")
	assert.Error(t, err)
}

func TestBatchCommand(t *testing.T) {
	path := writeConfig(t, `
log_level = "error"

scenario "kings" {
  range = "AA,KK,QQ"
  hero  = "AhKh"
  board = "Ks 9c 3d"
}

scenario "preflop" {
  percent = 10
}
`)

	out, err := run(t, path, "batch", "--workers", "2")
	require.NoError(t, err)
	kings := strings.Index(out, "kings")
	preflop := strings.Index(out, "preflop")
	require.NotEqual(t, -1, kings)
	require.NotEqual(t, -1, preflop)
	assert.Less(t, kings, preflop, "reports keep config order")

	out, err = run(t, path, "batch", "--format", "yaml")
	require.NoError(t, err)
	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "kings", decoded[0]["name"])
	assert.Equal(t, "preflop", decoded[1]["name"])

	t.Run("no scenarios", func(t *testing.T) {
		_, err := run(t, "", "batch")
		assert.ErrorContains(t, err, "no scenarios configured")
	})
}

func TestInvalidLogLevel(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Vars{"version": version},
		kong.BindTo(io.Discard, (*io.Writer)(nil)),
	)
	require.NoError(t, err)
	kctx, err := parser.Parse([]string{"--config", filepath.Join(t.TempDir(), "x.hcl"), "--log-level", "loud", "range"})
	require.NoError(t, err)
	assert.Error(t, kctx.Run(&cli.Globals))
}

func writeConfig(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rangeboard.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	return path
}
