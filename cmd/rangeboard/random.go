package main

import (
	"fmt"
	"io"
	"time"

	"github.com/lox/rangeboard/poker"
)

// RandomCmd deals random cards around a set of dead cards.
type RandomCmd struct {
	Dead  string `short:"d" help:"Cards that must not be picked, e.g. 'AhKh Ks9c3d'"`
	Count int    `short:"n" default:"2" help:"Number of cards to pick"`
	Seed  *int64 `help:"Deterministic RNG seed (optional)"`
}

func (c *RandomCmd) Run(g *Globals, out io.Writer) error {
	_, logger, err := g.setup()
	if err != nil {
		return err
	}

	dead, err := poker.ParseCards(c.Dead)
	if err != nil {
		return fmt.Errorf("dead cards: %w", err)
	}
	if c.Count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", c.Count)
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	logger.Debug("Picking random cards", "seed", seed, "count", c.Count, "dead", len(dead))

	rng := poker.NewRand(seed)
	cards, err := poker.RandomCards(rng, poker.NewHand(dead...), c.Count)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, poker.FormatCards(cards))
	return err
}
