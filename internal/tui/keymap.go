package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the explorer's keyboard shortcuts.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding

	MorePercent key.Binding
	LessPercent key.Binding

	RandomHero key.Binding
	DealStreet key.Binding
	Clear      key.Binding
	Combos     key.Binding

	NextFocus key.Binding
	Submit    key.Binding
	Cancel    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "right"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("Space", "toggle hand"),
		),
		MorePercent: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "wider range"),
		),
		LessPercent: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "tighter range"),
		),
		RandomHero: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "random hero"),
		),
		DealStreet: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "deal next street"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear cards"),
		),
		Combos: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "show combos"),
		),
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "matrix/hero/board"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "apply cards"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "back to matrix"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.MorePercent, k.LessPercent, k.RandomHero, k.DealStreet, k.NextFocus, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Toggle},
		{k.MorePercent, k.LessPercent, k.Combos},
		{k.RandomHero, k.DealStreet, k.Clear},
		{k.NextFocus, k.Submit, k.Cancel, k.Help, k.Quit},
	}
}
