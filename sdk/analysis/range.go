// Package analysis provides starting-hand ranges and the range-versus-board
// breakdown built on top of them.
package analysis

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/lox/rangeboard/poker"
)

// Range is an immutable set of starting-hand labels. The zero value is an
// empty range. Operations that change membership return a new Range.
type Range struct {
	labels map[Label]struct{}
}

// NewRange creates a range containing the given labels.
func NewRange(labels ...Label) Range {
	r := Range{labels: make(map[Label]struct{}, len(labels))}
	for _, l := range labels {
		r.labels[l] = struct{}{}
	}
	return r
}

// FullRange returns all 169 labels.
func FullRange() Range {
	return NewRange(rankedLabels...)
}

func (r Range) clone(extra int) Range {
	out := Range{labels: make(map[Label]struct{}, len(r.labels)+extra)}
	for l := range r.labels {
		out.labels[l] = struct{}{}
	}
	return out
}

// With returns a copy of the range with the labels added.
func (r Range) With(labels ...Label) Range {
	out := r.clone(len(labels))
	for _, l := range labels {
		out.labels[l] = struct{}{}
	}
	return out
}

// Without returns a copy of the range with the labels removed.
func (r Range) Without(labels ...Label) Range {
	out := r.clone(0)
	for _, l := range labels {
		delete(out.labels, l)
	}
	return out
}

// Toggle returns a copy of the range with the label's membership flipped.
func (r Range) Toggle(l Label) Range {
	if r.Contains(l) {
		return r.Without(l)
	}
	return r.With(l)
}

// Contains reports whether the label is in the range.
func (r Range) Contains(l Label) bool {
	_, ok := r.labels[l]
	return ok
}

// ContainsCards reports whether two hole cards fall in the range.
func (r Range) ContainsCards(c1, c2 poker.Card) bool {
	return r.Contains(LabelOf(c1, c2))
}

// Len returns the number of labels in the range.
func (r Range) Len() int {
	return len(r.labels)
}

// IsEmpty reports whether the range has no labels.
func (r Range) IsEmpty() bool {
	return len(r.labels) == 0
}

// Labels returns the members in strength order, strongest first.
func (r Range) Labels() []Label {
	labels := make([]Label, 0, len(r.labels))
	for l := range r.labels {
		labels = append(labels, l)
	}
	slices.SortFunc(labels, func(a, b Label) int {
		return StrengthIndex(a) - StrengthIndex(b)
	})
	return labels
}

// ComboCount returns the number of concrete combos in the range, ignoring
// dead cards.
func (r Range) ComboCount() int {
	n := 0
	for l := range r.labels {
		n += l.ComboCount()
	}
	return n
}

// Percent returns the range size as a percentage of all 1326 combos.
func (r Range) Percent() float64 {
	return float64(r.ComboCount()) / TotalCombos * 100
}

// Equal reports whether both ranges hold the same labels.
func (r Range) Equal(other Range) bool {
	if r.Len() != other.Len() {
		return false
	}
	for l := range r.labels {
		if !other.Contains(l) {
			return false
		}
	}
	return true
}

// String returns the labels as comma-separated notation in strength order.
func (r Range) String() string {
	parts := make([]string, 0, r.Len())
	for _, l := range r.Labels() {
		parts = append(parts, l.String())
	}
	return strings.Join(parts, ",")
}

// ParseRange creates a range from standard notation.
// Examples: "AA,KK", "AKs,AKo", "AK", "TT+", "A5s-A2s", "KTs+", "22-66", "15%".
func ParseRange(notation string) (Range, error) {
	var labels []Label

	for part := range strings.SplitSeq(notation, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		parsed, err := parseRangePart(part)
		if err != nil {
			return Range{}, fmt.Errorf("invalid range part %q: %w", part, err)
		}
		labels = append(labels, parsed...)
	}

	return NewRange(labels...), nil
}

// MustParseRange parses a range and panics on error.
func MustParseRange(notation string) Range {
	r, err := ParseRange(notation)
	if err != nil {
		panic(err)
	}
	return r
}

// parseRangePart expands a single notation part into labels.
func parseRangePart(part string) ([]Label, error) {
	switch {
	case strings.HasSuffix(part, "%"):
		return parsePercentPart(part)
	case strings.HasSuffix(part, "+"):
		return parsePlusPart(strings.TrimSuffix(part, "+"))
	case strings.Contains(part, "-"):
		return parseDashPart(part)
	default:
		return parseSingle(part)
	}
}

// parseSingle handles "AA", "AKs", "AKo" and "AK" (suited and offsuit).
func parseSingle(notation string) ([]Label, error) {
	high, low, suited, offsuit, err := parseBase(notation)
	if err != nil {
		return nil, err
	}
	return expandKinds(high, low, suited, offsuit), nil
}

// parsePercentPart handles "15%" as the strongest 15 percent of combos.
func parsePercentPart(part string) ([]Label, error) {
	pct, err := strconv.ParseFloat(strings.TrimSuffix(part, "%"), 64)
	if err != nil || pct < 0 || pct > 100 {
		return nil, fmt.Errorf("%w: bad percentage", ErrInvalidLabel)
	}
	return LabelsForPercentage(pct).Labels(), nil
}

// parsePlusPart handles "TT+" (all pairs TT and higher) and "ATs+"
// (kicker raised up to one below the high card).
func parsePlusPart(base string) ([]Label, error) {
	high, low, suited, offsuit, err := parseBase(base)
	if err != nil {
		return nil, err
	}

	var labels []Label
	if high == low {
		for rank := high; rank <= poker.Ace; rank++ {
			labels = append(labels, NewLabel(rank, rank, Pair))
		}
		return labels, nil
	}

	for rank := low; rank < high; rank++ {
		labels = append(labels, expandKinds(high, rank, suited, offsuit)...)
	}
	return labels, nil
}

// parseDashPart handles "22-66" and "A5s-A2s".
func parseDashPart(notation string) ([]Label, error) {
	parts := strings.Split(notation, "-")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: invalid dash range format", ErrInvalidLabel)
	}

	sHigh, sLow, suited, offsuit, err := parseBase(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, err
	}
	eHigh, eLow, _, _, err := parseBase(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, err
	}

	var labels []Label
	switch {
	case sHigh == sLow && eHigh == eLow:
		for rank := min(sHigh, eHigh); rank <= max(sHigh, eHigh); rank++ {
			labels = append(labels, NewLabel(rank, rank, Pair))
		}
	case sHigh == eHigh && sHigh != sLow && eHigh != eLow:
		for rank := min(sLow, eLow); rank <= max(sLow, eLow); rank++ {
			labels = append(labels, expandKinds(sHigh, rank, suited, offsuit)...)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported range format: %s", ErrInvalidLabel, notation)
	}
	return labels, nil
}

// parseBase parses "AK", "AKs", "AKo" or "TT" into ranks and which kinds
// are wanted. A bare unpaired base wants both kinds.
func parseBase(s string) (high, low uint8, suited, offsuit bool, err error) {
	if len(s) < 2 || len(s) > 3 {
		return 0, 0, false, false, fmt.Errorf("%w: invalid notation length: %s", ErrInvalidLabel, s)
	}
	r1, ok1 := poker.ParseRank(s[0])
	r2, ok2 := poker.ParseRank(s[1])
	if !ok1 || !ok2 {
		return 0, 0, false, false, fmt.Errorf("%w: invalid rank in: %s", ErrInvalidLabel, s)
	}
	high, low = max(r1, r2), min(r1, r2)

	if high == low {
		if len(s) == 3 {
			return 0, 0, false, false, fmt.Errorf("%w: pocket pairs cannot have suited/offsuit modifier: %s", ErrInvalidLabel, s)
		}
		return high, low, false, false, nil
	}

	if len(s) == 2 {
		return high, low, true, true, nil
	}
	switch s[2] {
	case 's', 'S':
		return high, low, true, false, nil
	case 'o', 'O':
		return high, low, false, true, nil
	default:
		return 0, 0, false, false, fmt.Errorf("%w: invalid modifier: %c", ErrInvalidLabel, s[2])
	}
}

func expandKinds(high, low uint8, suited, offsuit bool) []Label {
	if high == low {
		return []Label{NewLabel(high, low, Pair)}
	}
	var labels []Label
	if suited {
		labels = append(labels, NewLabel(high, low, Suited))
	}
	if offsuit {
		labels = append(labels, NewLabel(high, low, Offsuit))
	}
	return labels
}
