package domain

import (
	"fmt"
	"math/rand"
)

// NewDeck returns an ordered 40-card Italian deck.
func NewDeck() []Card {
	deck := make([]Card, 0, NumSuits*NumRanks)
	for s := Suit(0); s < NumSuits; s++ {
		for r := Rank(0); r < NumRanks; r++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// Shuffle returns a shuffled copy of the given deck.
func Shuffle(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Deal splits a deck into per-seat hands of handSize cards each. The deck must
// be consumed exactly, so players*handSize must equal len(deck).
func Deal(deck []Card, players, handSize int) ([][]Card, error) {
	if players <= 0 || handSize <= 0 {
		return nil, fmt.Errorf("invalid deal shape: %d players, %d cards each", players, handSize)
	}
	if players*handSize != len(deck) {
		return nil, fmt.Errorf("deck of %d cards cannot deal %d players %d cards each", len(deck), players, handSize)
	}
	hands := make([][]Card, players)
	for i := 0; i < players; i++ {
		hand := make([]Card, handSize)
		copy(hand, deck[i*handSize:(i+1)*handSize])
		hands[i] = hand
	}
	return hands, nil
}

// Contains reports whether hand holds the given card.
func Contains(hand []Card, c Card) bool {
	for _, h := range hand {
		if h == c {
			return true
		}
	}
	return false
}

// Remove returns hand without the first occurrence of c.
func Remove(hand []Card, c Card) []Card {
	out := make([]Card, 0, len(hand))
	removed := false
	for _, h := range hand {
		if !removed && h == c {
			removed = true
			continue
		}
		out = append(out, h)
	}
	return out
}
