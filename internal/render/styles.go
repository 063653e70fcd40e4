// Package render turns analysis results into terminal text.
package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/rangeboard/sdk/classification"
)

// Content styles shared by the CLI and the TUI
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	RedCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BlackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Matrix cell styles
var (
	CellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	SelectedCellStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1A1A1A")).
				Background(lipgloss.Color("#04B575")).
				Bold(true)

	CursorCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)
)

// Category colors run from cold (weak) to hot (strong).
var categoryColors = map[classification.Category]lipgloss.Color{
	classification.Quads:        "#FF4D6D",
	classification.FullHouse:    "#FF6B6B",
	classification.Flush:        "#FF8E53",
	classification.Straight:     "#FFA94D",
	classification.Set:          "#FFD43B",
	classification.Trips:        "#FFE066",
	classification.TwoPair:      "#FFEAA7",
	classification.Overpair:     "#C0EB75",
	classification.TopPair:      "#96CEB4",
	classification.MiddlePair:   "#63E6BE",
	classification.BottomPair:   "#66D9E8",
	classification.Underpair:    "#74C0FC",
	classification.BoardPair:    "#91A7FF",
	classification.FlushDraw:    "#B197FC",
	classification.StraightDraw: "#DA77F2",
	classification.HighCard:     "#868E96",
}

// CategoryStyle returns the style for a category name.
func CategoryStyle(cat classification.Category) lipgloss.Style {
	color, ok := categoryColors[cat]
	if !ok {
		return InfoStyle
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}

// Plain reports whether output has no colors, in which case the matrix
// marks selection with characters instead.
func Plain() bool {
	return lipgloss.ColorProfile() == termenv.Ascii
}

// DisableColor switches all output to plain ASCII.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
