// Package classification buckets a two-card holding on a board into one of
// sixteen categories, from Quads down to High Card.
//
// The evaluator works on bit-packed poker.Hand values. Every call builds a
// feature vector once (rank and suit histograms plus masks), then walks an
// ordered rule list; the first rule that matches decides the category.
package classification

import (
	"github.com/lox/rangeboard/poker"
)

// features is the precomputed view of hole cards plus board.
type features struct {
	hole  poker.Hand
	board poker.Hand

	rankCounts [13]int
	suitCounts [4]int
	rankMask   uint16

	holeRanks     []uint8
	boardRankMask uint16
}

func newFeatures(hole, board poker.Hand) *features {
	f := &features{
		hole:          hole,
		board:         board,
		boardRankMask: board.GetRankMask(),
	}
	all := hole | board
	for suit := range uint8(4) {
		mask := all.GetSuitMask(suit)
		f.rankMask |= mask
		for rank := range uint8(13) {
			if mask&(1<<rank) != 0 {
				f.rankCounts[rank]++
				f.suitCounts[suit]++
			}
		}
	}
	for _, c := range hole.Cards() {
		f.holeRanks = append(f.holeRanks, c.Rank())
	}
	return f
}

// ranksWith returns the ranks whose count satisfies keep, highest first.
func (f *features) ranksWith(keep func(count int) bool) []uint8 {
	var ranks []uint8
	for rank := int(poker.Ace); rank >= 0; rank-- {
		if keep(f.rankCounts[rank]) {
			ranks = append(ranks, uint8(rank))
		}
	}
	return ranks
}

// holeCount returns how many hole cards have the given rank.
func (f *features) holeCount(rank uint8) int {
	n := 0
	for _, r := range f.holeRanks {
		if r == rank {
			n++
		}
	}
	return n
}

func (f *features) pocketPair() bool {
	return len(f.holeRanks) == 2 && f.holeRanks[0] == f.holeRanks[1]
}

// boardRanksDesc returns the distinct board ranks, highest first.
func (f *features) boardRanksDesc() []uint8 {
	var ranks []uint8
	for rank := int(poker.Ace); rank >= 0; rank-- {
		if f.boardRankMask&(1<<rank) != 0 {
			ranks = append(ranks, uint8(rank))
		}
	}
	return ranks
}

// rule inspects the features and reports a category when it applies.
type rule func(f *features) (Category, bool)

// rules is the precedence order. It is load-bearing: Full House must be
// tested before Flush, and Flush before Straight.
var rules = []rule{
	quadsRule,
	fullHouseRule,
	flushRule,
	straightRule,
	threeOfAKindRule,
	twoPairRule,
	onePairRule,
	drawRule,
}

// Classify returns the category of the two hole cards on the board. It
// reports false when the hand cannot be classified yet: the hole must hold
// exactly two cards and the board three to five. Cards are assumed
// distinct; callers filter dead cards before calling.
func Classify(hole, board poker.Hand) (Category, bool) {
	if hole.CountCards() != 2 {
		return Unknown, false
	}
	if n := board.CountCards(); n < 3 || n > 5 {
		return Unknown, false
	}

	f := newFeatures(hole, board)
	for _, r := range rules {
		if c, ok := r(f); ok {
			return c, true
		}
	}
	return HighCard, true
}

// ClassifyCards is Classify for card slices.
func ClassifyCards(hole, board []poker.Card) (Category, bool) {
	if len(hole) != 2 {
		return Unknown, false
	}
	return Classify(poker.NewHand(hole...), poker.NewHand(board...))
}

func quadsRule(f *features) (Category, bool) {
	for _, n := range f.rankCounts {
		if n == 4 {
			return Quads, true
		}
	}
	return Unknown, false
}

func fullHouseRule(f *features) (Category, bool) {
	trips := f.ranksWith(func(n int) bool { return n >= 3 })
	pairs := f.ranksWith(func(n int) bool { return n >= 2 })
	if len(trips) > 0 && len(pairs) >= 2 {
		return FullHouse, true
	}
	return Unknown, false
}

// flushRule fires on any five of a suit, including a flush made entirely by
// the board.
func flushRule(f *features) (Category, bool) {
	for _, n := range f.suitCounts {
		if n >= 5 {
			return Flush, true
		}
	}
	return Unknown, false
}

func straightRule(f *features) (Category, bool) {
	if poker.StraightHigh(f.rankMask) > 0 {
		return Straight, true
	}
	return Unknown, false
}

func threeOfAKindRule(f *features) (Category, bool) {
	trips := f.ranksWith(func(n int) bool { return n >= 3 })
	if len(trips) == 0 {
		return Unknown, false
	}
	if f.pocketPair() && f.holeRanks[0] == trips[0] {
		return Set, true
	}
	return Trips, true
}

func twoPairRule(f *features) (Category, bool) {
	if len(f.ranksWith(func(n int) bool { return n == 2 })) >= 2 {
		return TwoPair, true
	}
	return Unknown, false
}

func onePairRule(f *features) (Category, bool) {
	pairs := f.ranksWith(func(n int) bool { return n == 2 })
	if len(pairs) != 1 {
		return Unknown, false
	}
	pair := pairs[0]
	board := f.boardRanksDesc()

	switch f.holeCount(pair) {
	case 2:
		if pair > board[0] {
			return Overpair, true
		}
		return Underpair, true
	case 1:
		switch {
		case pair == board[0]:
			return TopPair, true
		case len(board) > 1 && pair == board[1]:
			return MiddlePair, true
		default:
			return BottomPair, true
		}
	default:
		return BoardPair, true
	}
}

// drawRule is the fallback for unpaired hands.
func drawRule(f *features) (Category, bool) {
	draws := f.draws()
	switch {
	case draws.Flush:
		return FlushDraw, true
	case draws.Straight:
		return StraightDraw, true
	default:
		return HighCard, true
	}
}
