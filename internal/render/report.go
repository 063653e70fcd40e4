package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/lox/rangeboard/sdk/analysis"
	"github.com/lox/rangeboard/sdk/classification"
)

// Format selects the report output.
type Format string

const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// ReportOptions controls report output.
type ReportOptions struct {
	// ShowEmpty keeps categories with no combos in the table.
	ShowEmpty bool
	// ShowCombos lists every concrete combo under its category.
	ShowCombos bool
}

// Report renders a report as a header block followed by the category table.
func Report(rep *analysis.Report, opts ReportOptions) string {
	var b strings.Builder

	title := "Range vs Board"
	if rep.Name != "" {
		title = rep.Name
	}
	b.WriteString(HeaderStyle.Render(title))
	b.WriteString("\n")

	fmt.Fprintf(&b, "Range: %d labels, %d/%d combos (%.1f%%)\n",
		rep.RangeLabels, rep.RangeCombos, analysis.TotalCombos, rep.RangePercent)
	fmt.Fprintf(&b, "Board: %s%s\n", orDash(rep.Board), textureNote(rep.Texture))
	if rep.Hero != "" {
		fmt.Fprintf(&b, "Hero:  %s%s\n", rep.Hero, heroNote(rep))
	}

	if rep.Classified == 0 {
		b.WriteString(InfoStyle.Render("No combos classified; the board needs at least three cards."))
		b.WriteString("\n")
		return b.String()
	}

	if rep.HeroKnown() {
		fmt.Fprintf(&b, "Beats hero: %d of %d combos (%.1f%%)\n",
			rep.BeatsHero, rep.Classified, rep.BeatsHeroPercent)
	}
	b.WriteString(CategoryTable(rep, opts.ShowEmpty))
	b.WriteString("\n")

	if opts.ShowCombos && rep.Breakdown != nil {
		b.WriteString(Combos(rep.Breakdown))
	}
	return b.String()
}

// CategoryTable renders counts and percentages per category, strongest
// first.
func CategoryTable(rep *analysis.Report, showEmpty bool) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(InfoStyle).
		Headers("Category", "Combos", "%", "Labels")

	for _, row := range rep.Categories {
		if row.Count == 0 && !showEmpty {
			continue
		}
		name := row.Category.String()
		if rep.HeroKnown() && row.Category == rep.HeroCategory {
			name += " (hero)"
		}
		t.Row(name, fmt.Sprintf("%d", row.Count), fmt.Sprintf("%.1f", row.Percent), labelList(row.Labels))
	}
	return t.Render()
}

// Combos lists each non-empty bucket as label groups of concrete combos.
func Combos(bd *analysis.Breakdown) string {
	var b strings.Builder
	for _, cat := range classification.Categories() {
		entries := bd.Bucket(cat)
		if len(entries) == 0 {
			continue
		}
		b.WriteString(CategoryStyle(cat).Render(fmt.Sprintf("%s (%d)", cat, len(entries))))
		b.WriteString("\n")

		var line []string
		current := entries[0].Label
		flush := func() {
			fmt.Fprintf(&b, "  %-4s %s\n", current, strings.Join(line, " "))
			line = line[:0]
		}
		for _, e := range entries {
			if e.Label != current {
				flush()
				current = e.Label
			}
			line = append(line, e.Combo.String())
		}
		flush()
	}
	return b.String()
}

// YAML writes v as a YAML document.
func YAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

func labelList(counts []analysis.LabelCount) string {
	const maxLabels = 6
	parts := make([]string, 0, min(len(counts), maxLabels)+1)
	for i, lc := range counts {
		if i == maxLabels {
			parts = append(parts, fmt.Sprintf("+%d more", len(counts)-maxLabels))
			break
		}
		parts = append(parts, lc.Label.String())
	}
	return strings.Join(parts, " ")
}

func textureNote(info *classification.BoardInfo) string {
	if info == nil {
		return ""
	}
	return fmt.Sprintf(" (%s)", info.Texture)
}

func heroNote(rep *analysis.Report) string {
	var parts []string
	if rep.HeroLabel != "" {
		parts = append(parts, rep.HeroLabel)
	}
	if rep.HeroKnown() {
		parts = append(parts, rep.HeroCategory.String())
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
