package poker

import "math/bits"

// WheelMask is the rank mask of A-2-3-4-5.
const WheelMask uint16 = 0x100F

// StraightHigh returns the high-card rank of the best straight present in
// the rank mask, or 0 if there is none. The wheel reports Five.
func StraightHigh(mask uint16) uint8 {
	mask &= RankMask

	// Bitwise cascade identifies five consecutive ranks in one pass.
	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq != 0 {
		low := uint8(bits.Len16(seq) - 1)
		return low + 4
	}
	if mask&WheelMask == WheelMask {
		return Five
	}
	return 0
}

// HighestRank returns the highest rank present in the mask, or -1 when empty.
func HighestRank(mask uint16) int {
	if mask == 0 {
		return -1
	}
	return bits.Len16(mask) - 1
}

// ValueMask widens a rank mask to bit positions 1..14 by value, with the ace
// present at both 1 and 14.
func ValueMask(mask uint16) uint16 {
	wide := uint16(mask&RankMask) << 2
	if mask&(1<<Ace) != 0 {
		wide |= 1 << 1
	}
	return wide
}
