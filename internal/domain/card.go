package domain

import "fmt"

// Suit is one of the four Italian card suits.
type Suit int

const (
	Denari Suit = iota
	Coppe
	Spade
	Bastoni
)

// NumSuits is the number of suits in an Italian deck.
const NumSuits = 4

func (s Suit) String() string {
	switch s {
	case Denari:
		return "Denari"
	case Coppe:
		return "Coppe"
	case Spade:
		return "Spade"
	case Bastoni:
		return "Bastoni"
	default:
		return "?"
	}
}

// Rank is a card rank in an Italian 40-card deck.
type Rank int

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Jack
	Knight
	King
)

// NumRanks is the number of ranks per suit in an Italian deck.
const NumRanks = 10

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Jack:
		return "J"
	case Knight:
		return "Kn"
	case King:
		return "K"
	default:
		return "?"
	}
}

// Card is a single playing card. Cards are comparable values: two cards are
// equal exactly when rank and suit both match.
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return fmt.Sprintf("%s-%s", c.Rank, c.Suit)
}
