package classification

import (
	"math/bits"

	"github.com/lox/rangeboard/poker"
)

// BoardTexture represents the "wetness" of a board from dry to very wet.
type BoardTexture int

const (
	Dry BoardTexture = iota
	SemiWet
	Wet
	VeryWet
)

func (bt BoardTexture) String() string {
	switch bt {
	case Dry:
		return "dry"
	case SemiWet:
		return "semi-wet"
	case Wet:
		return "wet"
	case VeryWet:
		return "very wet"
	default:
		return "unknown"
	}
}

// MarshalText encodes the texture by name.
func (bt BoardTexture) MarshalText() ([]byte, error) {
	return []byte(bt.String()), nil
}

// BoardInfo summarizes what a board allows. It is descriptive only and
// never feeds into Classify.
type BoardInfo struct {
	Cards   int          `yaml:"cards"`
	Texture BoardTexture `yaml:"texture"`

	MaxSuitCount int  `yaml:"max_suit_count"`
	Monotone     bool `yaml:"monotone"`
	Rainbow      bool `yaml:"rainbow"`
	Paired       bool `yaml:"paired"`

	// ConnectedCards is the longest run of consecutive board ranks, with
	// the ace also counted low.
	ConnectedCards int `yaml:"connected_cards"`
	BroadwayCards  int `yaml:"broadway_cards"`

	FlushPossible    bool `yaml:"flush_possible"`
	StraightPossible bool `yaml:"straight_possible"`
}

// AnalyzeBoard describes the board texture. Boards with fewer than three
// cards are reported as dry with only the card count set.
func AnalyzeBoard(board poker.Hand) BoardInfo {
	info := BoardInfo{Cards: board.CountCards()}
	if info.Cards < 3 {
		return info
	}

	suits := 0
	for suit := range uint8(4) {
		n := bits.OnesCount16(board.GetSuitMask(suit))
		if n > 0 {
			suits++
		}
		info.MaxSuitCount = max(info.MaxSuitCount, n)
	}
	info.Monotone = suits == 1
	info.Rainbow = suits == info.Cards
	info.FlushPossible = info.MaxSuitCount >= 3

	rankMask := board.GetRankMask()
	info.Paired = bits.OnesCount16(rankMask) < info.Cards
	info.BroadwayCards = bits.OnesCount16(rankMask & 0x1F00) // T through A

	values := poker.ValueMask(rankMask)
	info.ConnectedCards = longestRun(values)
	for low := 1; low <= 10; low++ {
		if bits.OnesCount16(values&(uint16(0x1F)<<low)) >= 3 {
			info.StraightPossible = true
			break
		}
	}

	info.Texture = textureOf(info)
	return info
}

// textureOf scores flush and straight potential, pairing and high cards.
func textureOf(info BoardInfo) BoardTexture {
	var wetness int

	switch {
	case info.Monotone, info.MaxSuitCount >= 4:
		wetness += 4
	case info.MaxSuitCount == 3:
		wetness += 3
	case info.MaxSuitCount == 2:
		wetness++
	}

	switch {
	case info.ConnectedCards >= 4:
		wetness += 4
	case info.ConnectedCards == 3:
		wetness += 3
	case info.ConnectedCards == 2:
		wetness++
	}

	if info.Paired {
		wetness++
	}
	if info.BroadwayCards >= 3 {
		wetness++
	}

	switch {
	case wetness <= 0:
		return Dry
	case wetness <= 3:
		return SemiWet
	case wetness <= 5:
		return Wet
	default:
		return VeryWet
	}
}

// longestRun returns the longest run of consecutive set bits.
func longestRun(mask uint16) int {
	run := 0
	for mask != 0 {
		mask &= mask << 1
		run++
	}
	return run
}
