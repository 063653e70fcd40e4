package tui

import "github.com/charmbracelet/lipgloss"

const (
	focusColor = lipgloss.Color("#04B575")
	mutedColor = lipgloss.Color("#626262")
)

// Pane styles
var (
	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	FocusedPaneStyle = PaneStyle.
				BorderForeground(focusColor)

	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	PromptStyle = lipgloss.NewStyle().
			Foreground(focusColor).
			Bold(true)

	InputTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)
)

func paneStyle(focused bool) lipgloss.Style {
	if focused {
		return FocusedPaneStyle
	}
	return PaneStyle
}
