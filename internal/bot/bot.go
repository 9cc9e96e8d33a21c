// Package bot provides decision providers for driving matches without
// humans.
package bot

import (
	"context"
	"fmt"
	"math/rand"

	"tressette/internal/domain"
	"tressette/internal/engine"
)

// Random plays a uniformly random card from the legal set.
type Random struct {
	rng *rand.Rand
}

// NewRandom builds a random agent over the given source.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (b *Random) PlayCard(_ context.Context, _ engine.Seat, _, legal []domain.Card, _ *engine.OngoingTrick) (domain.Card, error) {
	if len(legal) == 0 {
		return domain.Card{}, fmt.Errorf("no legal cards to choose from")
	}
	return legal[b.rng.Intn(len(legal))], nil
}

// Greedy wins the current trick as cheaply as it can: leading, it plays its
// strongest legal card; following, it plays the weakest card that still
// beats everything of the leading suit so far, or sheds its weakest card
// when it cannot win.
type Greedy struct {
	rules engine.Rules
}

// NewGreedy builds a greedy agent for the given rule set.
func NewGreedy(rules engine.Rules) *Greedy {
	return &Greedy{rules: rules}
}

func (b *Greedy) PlayCard(_ context.Context, _ engine.Seat, _, legal []domain.Card, trick *engine.OngoingTrick) (domain.Card, error) {
	if len(legal) == 0 {
		return domain.Card{}, fmt.Errorf("no legal cards to choose from")
	}
	lead := trick.LeadingSuit()
	if lead == nil {
		return b.extreme(legal, true)
	}

	// Strongest card of the leading suit played so far.
	bestOrder := -1
	seat := trick.First()
	for i := 0; i < trick.Plays(); i++ {
		card, ok := trick.CardAt(seat)
		seat = seat.Next()
		if !ok || card.Suit != *lead {
			continue
		}
		order, err := b.rules.RankOrder(card)
		if err != nil {
			return domain.Card{}, err
		}
		if order > bestOrder {
			bestOrder = order
		}
	}

	// Weakest card that still wins.
	var winner *domain.Card
	winnerOrder := 0
	for _, c := range legal {
		if c.Suit != *lead {
			continue
		}
		order, err := b.rules.RankOrder(c)
		if err != nil {
			return domain.Card{}, err
		}
		if order > bestOrder && (winner == nil || order < winnerOrder) {
			card := c
			winner, winnerOrder = &card, order
		}
	}
	if winner != nil {
		return *winner, nil
	}
	return b.extreme(legal, false)
}

// extreme returns the strongest (highest=true) or weakest legal card under
// the rule set's order.
func (b *Greedy) extreme(legal []domain.Card, highest bool) (domain.Card, error) {
	pick := legal[0]
	pickOrder, err := b.rules.RankOrder(pick)
	if err != nil {
		return domain.Card{}, err
	}
	for _, c := range legal[1:] {
		order, err := b.rules.RankOrder(c)
		if err != nil {
			return domain.Card{}, err
		}
		if (highest && order > pickOrder) || (!highest && order < pickOrder) {
			pick, pickOrder = c, order
		}
	}
	return pick, nil
}
