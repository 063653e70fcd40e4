package render

import (
	"strings"

	"github.com/lox/rangeboard/poker"
)

// Card renders a card with its suit glyph, red for hearts and diamonds.
func Card(c poker.Card) string {
	switch c.Suit() {
	case poker.Hearts, poker.Diamonds:
		return RedCardStyle.Render(c.Symbol())
	default:
		return BlackCardStyle.Render(c.Symbol())
	}
}

// Cards renders cards in brackets, or a dash when there are none.
func Cards(cards []poker.Card) string {
	if len(cards) == 0 {
		return InfoStyle.Render("-")
	}

	formatted := make([]string, 0, len(cards))
	for _, c := range cards {
		formatted = append(formatted, Card(c))
	}
	return "[" + strings.Join(formatted, " ") + "]"
}
