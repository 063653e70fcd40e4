package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/rangeboard/sdk/analysis"
)

// MatrixOptions controls how the range grid is drawn.
type MatrixOptions struct {
	// ShowCursor highlights the cell at Row, Col.
	ShowCursor bool
	Row, Col   int
}

// Matrix draws the 13x13 grid with the range's labels highlighted. Without
// colors, selected cells end in '*' and the cursor cell starts with '>'.
func Matrix(r analysis.Range, opts MatrixOptions) string {
	plain := Plain()
	grid := analysis.Matrix()

	rows := make([]string, 0, len(grid))
	for row := range grid {
		cells := make([]string, 0, len(grid[row]))
		for col, label := range grid[row] {
			selected := r.Contains(label)
			cursor := opts.ShowCursor && row == opts.Row && col == opts.Col
			cells = append(cells, matrixCell(label, selected, cursor, plain))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func matrixCell(label analysis.Label, selected, cursor, plain bool) string {
	prefix, suffix := " ", " "
	if plain {
		if cursor {
			prefix = ">"
		}
		if selected {
			suffix = "*"
		}
	}
	text := fmt.Sprintf("%s%-3s%s", prefix, label, suffix)

	switch {
	case cursor:
		return CursorCellStyle.Render(text)
	case selected:
		return SelectedCellStyle.Render(text)
	default:
		return CellStyle.Render(text)
	}
}

// RangeSummary describes the range size against the full 1326 combos.
func RangeSummary(r analysis.Range) string {
	return fmt.Sprintf("%d labels, %d/%d combos (%.1f%%)",
		r.Len(), r.ComboCount(), analysis.TotalCombos, r.Percent())
}
