// Package tui is an interactive range explorer: pick a range on the 13x13
// matrix, set hero and board cards, and watch the breakdown update.
package tui

import (
	"context"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/rangeboard/internal/render"
	"github.com/lox/rangeboard/poker"
	"github.com/lox/rangeboard/sdk/analysis"
)

type focus int

const (
	focusMatrix focus = iota
	focusHero
	focusBoard
)

// percentStep is how far +/- move the range slider.
const percentStep = 5.0

// Model is the Bubble Tea model for the range explorer
type Model struct {
	logger *log.Logger
	rng    *rand.Rand
	keys   KeyMap
	help   help.Model

	heroInput  textinput.Model
	boardInput textinput.Model
	focus      focus

	row, col  int
	percent   float64
	selection analysis.Range
	hero      []poker.Card
	board     []poker.Card

	report     *analysis.Report
	err        error
	showCombos bool

	width    int
	height   int
	quitting bool
}

// NewModel creates a range explorer starting at the given percentage.
func NewModel(logger *log.Logger, rng *rand.Rand, percent float64) *Model {
	m := &Model{
		logger:     logger.WithPrefix("tui"),
		rng:        rng,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		heroInput:  newCardInput("Hero cards, e.g. AhKh"),
		boardInput: newCardInput("Board cards, e.g. Ks9c3d"),
	}
	m.setPercent(percent)
	return m
}

func newCardInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 20
	ti.Width = 24
	ti.Prompt = "> "
	ti.PromptStyle = PromptStyle
	ti.TextStyle = InputTextStyle
	return ti
}

// Range returns the selected range.
func (m *Model) Range() analysis.Range { return m.selection }

// Hero returns the hero cards.
func (m *Model) Hero() []poker.Card { return m.hero }

// Board returns the board cards in street order.
func (m *Model) Board() []poker.Card { return m.board }

// Report returns the latest analysis, or nil if the inputs were invalid.
func (m *Model) Report() *analysis.Report { return m.report }

// Err returns the last input error.
func (m *Model) Err() error { return m.err }

// Cursor returns the matrix cursor position.
func (m *Model) Cursor() (row, col int) { return m.row, m.col }

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.focus != focusMatrix {
			return m.updateInput(msg)
		}
		return m.updateMatrix(msg)
	}
	return m, nil
}

func (m *Model) updateMatrix(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.row = max(m.row-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.row = min(m.row+1, 12)
	case key.Matches(msg, m.keys.Left):
		m.col = max(m.col-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.col = min(m.col+1, 12)
	case key.Matches(msg, m.keys.Toggle):
		m.selection = m.selection.Toggle(analysis.LabelAt(m.row, m.col))
		m.recompute()
	case key.Matches(msg, m.keys.MorePercent):
		m.setPercent(m.percent + percentStep)
	case key.Matches(msg, m.keys.LessPercent):
		m.setPercent(m.percent - percentStep)
	case key.Matches(msg, m.keys.RandomHero):
		m.randomHero()
	case key.Matches(msg, m.keys.DealStreet):
		m.dealStreet()
	case key.Matches(msg, m.keys.Clear):
		m.hero, m.board = nil, nil
		m.heroInput.SetValue("")
		m.boardInput.SetValue("")
		m.recompute()
	case key.Matches(msg, m.keys.Combos):
		m.showCombos = !m.showCombos
	case key.Matches(msg, m.keys.NextFocus):
		return m, m.setFocus(focusHero)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m, m.setFocus(focusMatrix)
	case key.Matches(msg, m.keys.NextFocus):
		if m.focus == focusHero {
			return m, m.setFocus(focusBoard)
		}
		return m, m.setFocus(focusMatrix)
	case key.Matches(msg, m.keys.Submit):
		m.applyInput()
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == focusHero {
		m.heroInput, cmd = m.heroInput.Update(msg)
	} else {
		m.boardInput, cmd = m.boardInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.heroInput.Blur()
	m.boardInput.Blur()
	switch f {
	case focusHero:
		return m.heroInput.Focus()
	case focusBoard:
		return m.boardInput.Focus()
	}
	return nil
}

// applyInput parses the focused text field. Invalid cards leave the
// previous hero and board in place.
func (m *Model) applyInput() {
	input := m.heroInput
	if m.focus == focusBoard {
		input = m.boardInput
	}

	cards, err := poker.ParseCards(input.Value())
	if err != nil {
		m.err = err
		return
	}

	hero, board := m.hero, m.board
	if m.focus == focusHero {
		hero = cards
	} else {
		board = cards
	}
	if err := (analysis.Scenario{Hero: hero, Board: board}).Validate(); err != nil {
		m.err = err
		return
	}
	m.hero, m.board = hero, board
	m.recompute()
}

func (m *Model) setPercent(pct float64) {
	m.percent = min(max(pct, 0), 100)
	m.selection = analysis.LabelsForPercentage(m.percent)
	m.recompute()
}

// randomHero deals two hero cards that are not on the board.
func (m *Model) randomHero() {
	cards, err := poker.RandomCards(m.rng, poker.NewHand(m.board...), 2)
	if err != nil {
		m.err = err
		return
	}
	m.hero = cards
	m.heroInput.SetValue(poker.FormatCards(cards))
	m.recompute()
}

// dealStreet completes the flop, or adds the turn or river.
func (m *Model) dealStreet() {
	n := 1
	switch {
	case len(m.board) < 3:
		n = 3 - len(m.board)
	case len(m.board) >= 5:
		m.err = errors.New("board is complete")
		return
	}

	dead := poker.NewHand(m.hero...) | poker.NewHand(m.board...)
	cards, err := poker.RandomCards(m.rng, dead, n)
	if err != nil {
		m.err = err
		return
	}
	m.board = append(append([]poker.Card{}, m.board...), cards...)
	m.boardInput.SetValue(poker.FormatCards(m.board))
	m.recompute()
}

func (m *Model) recompute() {
	rep, err := analysis.Analyze(analysis.Scenario{Range: m.selection, Hero: m.hero, Board: m.board})
	if err != nil {
		m.err = err
		m.report = nil
		return
	}
	m.err = nil
	m.report = rep
	m.logger.Debug("Recomputed breakdown",
		"labels", m.selection.Len(),
		"classified", rep.Classified,
		"board", rep.Board)
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	matrix := paneStyle(m.focus == focusMatrix).Render(
		render.Matrix(m.selection, render.MatrixOptions{ShowCursor: true, Row: m.row, Col: m.col}))

	left := lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("Range"),
		matrix,
		m.renderInputs(),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("Breakdown"),
		PaneStyle.Render(m.renderResults()),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.help.View(m.keys))
}

func (m *Model) renderInputs() string {
	hero := paneStyle(m.focus == focusHero).Render("Hero  " + m.heroInput.View())
	board := paneStyle(m.focus == focusBoard).Render("Board " + m.boardInput.View())
	return lipgloss.JoinVertical(lipgloss.Left, hero, board)
}

func (m *Model) renderResults() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Range: %s\n", render.RangeSummary(m.selection))
	fmt.Fprintf(&b, "Slider: %.0f%%  Cell: %s\n", m.percent, analysis.LabelAt(m.row, m.col))
	fmt.Fprintf(&b, "Hero:  %s\n", render.Cards(m.hero))
	fmt.Fprintf(&b, "Board: %s\n", render.Cards(m.board))

	if m.err != nil {
		b.WriteString(render.ErrorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	if m.report == nil {
		return b.String()
	}

	rep := m.report
	if rep.Texture != nil {
		fmt.Fprintf(&b, "Texture: %s\n", rep.Texture.Texture)
	}
	if rep.HeroKnown() {
		b.WriteString(StatusStyle.Render(fmt.Sprintf("Hero %s (%s): beaten by %d/%d combos (%.1f%%)",
			rep.HeroLabel, rep.HeroCategory, rep.BeatsHero, rep.Classified, rep.BeatsHeroPercent)))
		b.WriteString("\n")
	}
	if rep.Classified == 0 {
		b.WriteString(render.InfoStyle.Render("Deal a flop to classify the range."))
		return b.String()
	}

	b.WriteString(render.CategoryTable(rep, false))
	if m.showCombos {
		b.WriteString("\n")
		b.WriteString(render.Combos(rep.Breakdown))
	}
	return b.String()
}

// Run starts the explorer and blocks until the user quits or ctx ends.
func Run(ctx context.Context, m *Model) error {
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
