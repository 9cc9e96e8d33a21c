package domain

import (
	"math/rand"
	"testing"
)

func TestNewDeckComposition(t *testing.T) {
	deck := NewDeck()
	if len(deck) != 40 {
		t.Fatalf("deck has %d cards, want 40", len(deck))
	}

	seen := make(map[Card]bool, len(deck))
	perSuit := make(map[Suit]int)
	for _, c := range deck {
		if seen[c] {
			t.Errorf("card %s appears twice", c)
		}
		seen[c] = true
		perSuit[c.Suit]++
	}
	for s := Suit(0); s < NumSuits; s++ {
		if perSuit[s] != NumRanks {
			t.Errorf("suit %s has %d cards, want %d", s, perSuit[s], NumRanks)
		}
	}
}

func TestShuffleKeepsCards(t *testing.T) {
	deck := NewDeck()
	shuffled := Shuffle(deck, rand.New(rand.NewSource(7)))

	if len(shuffled) != len(deck) {
		t.Fatalf("shuffle changed deck size: %d -> %d", len(deck), len(shuffled))
	}
	counts := make(map[Card]int)
	for _, c := range deck {
		counts[c]++
	}
	for _, c := range shuffled {
		counts[c]--
	}
	for c, n := range counts {
		if n != 0 {
			t.Errorf("card %s count off by %d after shuffle", c, n)
		}
	}
	// Original deck must be untouched.
	fresh := NewDeck()
	for i := range deck {
		if deck[i] != fresh[i] {
			t.Fatalf("shuffle mutated its input at index %d", i)
		}
	}
}

func TestDeal(t *testing.T) {
	tests := []struct {
		name     string
		players  int
		handSize int
		wantErr  bool
	}{
		{name: "four by ten", players: 4, handSize: 10},
		{name: "five by eight", players: 5, handSize: 8},
		{name: "uneven split", players: 3, handSize: 10, wantErr: true},
		{name: "zero players", players: 0, handSize: 10, wantErr: true},
		{name: "zero hand size", players: 4, handSize: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hands, err := Deal(NewDeck(), tt.players, tt.handSize)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("deal: %v", err)
			}
			if len(hands) != tt.players {
				t.Fatalf("dealt %d hands, want %d", len(hands), tt.players)
			}
			seen := make(map[Card]bool)
			for i, hand := range hands {
				if len(hand) != tt.handSize {
					t.Fatalf("hand %d has %d cards, want %d", i, len(hand), tt.handSize)
				}
				for _, c := range hand {
					if seen[c] {
						t.Errorf("card %s dealt twice", c)
					}
					seen[c] = true
				}
			}
			if len(seen) != 40 {
				t.Errorf("deal used %d distinct cards, want 40", len(seen))
			}
		})
	}
}

func TestRemove(t *testing.T) {
	hand := []Card{{Rank: Ace, Suit: Coppe}, {Rank: Two, Suit: Spade}, {Rank: Three, Suit: Coppe}}
	out := Remove(hand, Card{Rank: Two, Suit: Spade})
	if len(out) != 2 {
		t.Fatalf("got %d cards, want 2", len(out))
	}
	if Contains(out, Card{Rank: Two, Suit: Spade}) {
		t.Errorf("removed card still present")
	}
	if len(hand) != 3 {
		t.Errorf("Remove mutated its input")
	}

	// Removing an absent card is a no-op.
	same := Remove(hand, Card{Rank: King, Suit: Bastoni})
	if len(same) != 3 {
		t.Errorf("removing absent card changed hand size to %d", len(same))
	}
}
