package analysis

import (
	"errors"
	"fmt"

	"github.com/lox/rangeboard/poker"
	"github.com/lox/rangeboard/sdk/classification"
)

var (
	// ErrDuplicateCard is returned when a card appears twice across the
	// hero cards and the board.
	ErrDuplicateCard = errors.New("duplicate card")
	// ErrBoardOrder is returned when a later street is set before an
	// earlier one.
	ErrBoardOrder = errors.New("board filled out of order")
)

const (
	maxHeroCards  = 2
	maxBoardCards = 5
)

// Scenario is one range-versus-board question.
type Scenario struct {
	Name  string
	Range Range
	Hero  []poker.Card
	// Board holds up to five slots in street order. A zero Card is an
	// empty slot; empty slots may only trail set ones.
	Board []poker.Card
}

// Validate checks the hero cards and the board for malformed, duplicated or
// out-of-order cards.
func (s Scenario) Validate() error {
	if len(s.Hero) > maxHeroCards {
		return fmt.Errorf("hero has %d cards, at most %d allowed", len(s.Hero), maxHeroCards)
	}
	for _, c := range s.Hero {
		if !c.Valid() {
			return fmt.Errorf("hero: %w", poker.ErrInvalidCard)
		}
	}
	if err := ValidateBoard(s.Board); err != nil {
		return err
	}

	var seen poker.Hand
	for _, c := range append(append([]poker.Card{}, s.Hero...), s.Board...) {
		if c == 0 {
			continue
		}
		if seen.HasCard(c) {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen.AddCard(c)
	}
	return nil
}

// ValidateBoard checks a board in street order. A zero Card is an unset
// slot, so a turn without a complete flop or a river without a turn is
// rejected with ErrBoardOrder.
func ValidateBoard(board []poker.Card) error {
	if len(board) > maxBoardCards {
		return fmt.Errorf("board has %d cards, at most %d allowed", len(board), maxBoardCards)
	}
	gap := -1
	for i, c := range board {
		if c == 0 {
			if gap < 0 {
				gap = i
			}
			continue
		}
		if !c.Valid() {
			return fmt.Errorf("board card %d: %w", i+1, poker.ErrInvalidCard)
		}
		if gap >= 0 {
			return fmt.Errorf("%w: card %d set while card %d is empty", ErrBoardOrder, i+1, gap+1)
		}
	}
	return nil
}

// HeroHand returns the hero cards as a card set.
func (s Scenario) HeroHand() poker.Hand {
	return poker.NewHand(s.Hero...)
}

// BoardHand returns the set board cards, skipping empty slots.
func (s Scenario) BoardHand() poker.Hand {
	return poker.NewHand(s.Board...)
}

// BoardCards returns the set board cards in street order.
func (s Scenario) BoardCards() []poker.Card {
	cards := make([]poker.Card, 0, len(s.Board))
	for _, c := range s.Board {
		if c != 0 {
			cards = append(cards, c)
		}
	}
	return cards
}

// CategoryCount is one row of a report.
type CategoryCount struct {
	Category classification.Category `yaml:"category"`
	Count    int                     `yaml:"count"`
	Percent  float64                 `yaml:"percent"`
	Labels   []LabelCount            `yaml:"labels,omitempty"`
}

// Report summarizes a scenario: the range size, where its combos land on the
// board and how many of them beat the hero.
type Report struct {
	Name string `yaml:"name,omitempty"`

	Range        string  `yaml:"range"`
	RangeLabels  int     `yaml:"range_labels"`
	RangeCombos  int     `yaml:"range_combos"`
	RangePercent float64 `yaml:"range_percent"`

	Hero  string `yaml:"hero,omitempty"`
	Board string `yaml:"board,omitempty"`

	HeroLabel    string                  `yaml:"hero_label,omitempty"`
	HeroCategory classification.Category `yaml:"hero_category,omitempty"`

	Classified       int     `yaml:"classified"`
	BeatsHero        int     `yaml:"beats_hero"`
	BeatsHeroPercent float64 `yaml:"beats_hero_percent"`

	// Categories lists every category, strongest first, including empty ones.
	Categories []CategoryCount           `yaml:"categories"`
	Texture    *classification.BoardInfo `yaml:"texture,omitempty"`

	Breakdown *Breakdown `yaml:"-"`
}

// HeroKnown reports whether the hero category could be determined.
func (r *Report) HeroKnown() bool {
	return r.HeroCategory.Valid()
}

// Analyze validates the scenario and builds its report.
func Analyze(s Scenario) (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	hero, board := s.HeroHand(), s.BoardHand()
	bd := ClassifyRange(s.Range, hero, board)

	rep := &Report{
		Name:         s.Name,
		Range:        s.Range.String(),
		RangeLabels:  s.Range.Len(),
		RangeCombos:  s.Range.ComboCount(),
		RangePercent: s.Range.Percent(),
		Hero:         poker.FormatCards(s.Hero),
		Board:        poker.FormatCards(s.BoardCards()),
		Classified:   bd.Total(),
		Breakdown:    bd,
	}
	if len(s.Hero) == 2 {
		rep.HeroLabel = LabelOf(s.Hero[0], s.Hero[1]).String()
	}
	if cat, ok := HeroCategory(hero, board); ok {
		rep.HeroCategory = cat
		rep.BeatsHero, rep.BeatsHeroPercent = bd.BeatsHero(cat)
	}
	if board.CountCards() >= 3 {
		info := classification.AnalyzeBoard(board)
		rep.Texture = &info
	}

	for _, cat := range classification.Categories() {
		rep.Categories = append(rep.Categories, CategoryCount{
			Category: cat,
			Count:    bd.Count(cat),
			Percent:  bd.Percent(cat),
			Labels:   bd.LabelCounts(cat),
		})
	}
	return rep, nil
}
