package analysis

import (
	"github.com/lox/rangeboard/poker"
	"github.com/lox/rangeboard/sdk/classification"
)

// Entry is one classified combo and the label it came from.
type Entry struct {
	Label Label `yaml:"label"`
	Combo Combo `yaml:"combo"`
}

// LabelCount is the number of combos of one label in a bucket.
type LabelCount struct {
	Label Label `yaml:"label"`
	Count int   `yaml:"count"`
}

// Breakdown buckets every live combo of a range by the category it makes on
// the board. It is rebuilt from scratch for each input and never mutated
// after ClassifyRange returns.
type Breakdown struct {
	buckets map[classification.Category][]Entry
	total   int
}

// ClassifyRange expands each label of r into combos not blocked by the hero
// cards or the board, classifies them and buckets the results. Labels are
// walked in strength order and combos in Combos order, so the output is
// stable. Before the flop every bucket is empty.
func ClassifyRange(r Range, hero, board poker.Hand) *Breakdown {
	b := &Breakdown{buckets: make(map[classification.Category][]Entry, classification.NumCategories)}
	for _, cat := range classification.Categories() {
		b.buckets[cat] = []Entry{}
	}

	if board.CountCards() < 3 {
		return b
	}

	dead := hero | board
	for _, label := range r.Labels() {
		for _, combo := range AvailableCombos(label, dead) {
			cat, ok := classification.Classify(combo.Hand(), board)
			if !ok {
				continue
			}
			b.buckets[cat] = append(b.buckets[cat], Entry{Label: label, Combo: combo})
			b.total++
		}
	}
	return b
}

// Bucket returns the entries classified into cat. The slice is shared with
// the breakdown and must not be modified.
func (b *Breakdown) Bucket(cat classification.Category) []Entry {
	return b.buckets[cat]
}

// Buckets returns every category bucket, keyed for all categories even when
// empty.
func (b *Breakdown) Buckets() map[classification.Category][]Entry {
	out := make(map[classification.Category][]Entry, len(b.buckets))
	for cat, entries := range b.buckets {
		out[cat] = entries
	}
	return out
}

// Count returns the number of combos in cat.
func (b *Breakdown) Count(cat classification.Category) int {
	return len(b.buckets[cat])
}

// Total returns the number of classified combos.
func (b *Breakdown) Total() int {
	return b.total
}

// Percent returns the share of classified combos in cat, or 0 when nothing
// was classified.
func (b *Breakdown) Percent(cat classification.Category) float64 {
	return percentOf(b.Count(cat), b.total)
}

// BeatsHero counts combos whose category is strictly stronger than heroCat
// and their share of all classified combos.
func (b *Breakdown) BeatsHero(heroCat classification.Category) (int, float64) {
	n := 0
	for cat, entries := range b.buckets {
		if cat.Beats(heroCat) {
			n += len(entries)
		}
	}
	return n, percentOf(n, b.total)
}

// LabelCounts groups a bucket by label, keeping first-seen order.
func (b *Breakdown) LabelCounts(cat classification.Category) []LabelCount {
	var counts []LabelCount
	index := make(map[Label]int)
	for _, e := range b.buckets[cat] {
		i, ok := index[e.Label]
		if !ok {
			i = len(counts)
			index[e.Label] = i
			counts = append(counts, LabelCount{Label: e.Label})
		}
		counts[i].Count++
	}
	return counts
}

// HeroCategory classifies the hero's own holding. It reports false until
// the hero has two cards and the board has at least three.
func HeroCategory(hero, board poker.Hand) (classification.Category, bool) {
	return classification.Classify(hero, board)
}

func percentOf(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
