package engine

import (
	"math/big"

	"tressette/internal/domain"
)

// Rules is the per-variant capability the engine runs against. A rule set
// fixes the table shape, ranks cards within a suit, decides which plays are
// legal, resolves a completed trick to its taker, scores a finished hand and
// declares the match over. The engine never inspects cards except through
// this interface.
type Rules interface {
	// Players returns the number of seats at the table.
	Players() int
	// Tricks returns the number of tricks in a hand.
	Tricks() int
	// Sides returns the number of scoring sides (partnerships).
	Sides() int
	// SideOf maps a seat to its scoring side.
	SideOf(s Seat) int

	// RankOrder returns the card's position in the variant's within-suit
	// order. Higher beats lower. The order must be strict and total over the
	// variant's card universe; a card outside it is an error.
	RankOrder(c domain.Card) (int, error)
	// Taker resolves a fully populated, duplicate-free trick to the seat
	// that wins it. first is the seat that led the trick.
	Taker(cards []domain.Card, first Seat) (Seat, error)
	// Playable returns the cards in hand that may legally be played given
	// the suit led this trick, or all of them when lead is nil.
	Playable(hand []domain.Card, lead *domain.Suit) []domain.Card

	// ScoreHand returns the exact point total of the cards a side won over a
	// hand. tookLast reports whether the side took the final trick.
	ScoreHand(won []domain.Card, tookLast bool) (*big.Rat, error)
	// WinThreshold returns the running score at which the match ends.
	WinThreshold() *big.Rat
	// IsMatchOver reports whether any side's running score has reached the
	// variant's threshold.
	IsMatchOver(scores []*big.Rat) bool
}

// HighestOfLeadingSuit is the taker algorithm shared by suit-following rule
// sets: the trick goes to the seat holding the highest-ranked card of the
// suit led by first. The leader's own card always has the leading suit, so a
// valid trick always has a taker; failing to find one, or finding two cards
// of equal rank, is an invariant breach.
func HighestOfLeadingSuit(r Rules, cards []domain.Card, first Seat) (Seat, error) {
	if len(cards) != r.Players() {
		return Seat{}, invariantf("trick has %d cards for %d players", len(cards), r.Players())
	}
	if first.Players() != r.Players() {
		return Seat{}, invariantf("leader bounded to %d seats at a %d-seat table", first.Players(), r.Players())
	}
	lead := cards[first.Index()].Suit
	best := -1
	bestOrder := 0
	for i, c := range cards {
		if c.Suit != lead {
			continue
		}
		order, err := r.RankOrder(c)
		if err != nil {
			return Seat{}, &InvariantError{Reason: "rank order lookup failed", Err: err}
		}
		if best >= 0 && order == bestOrder {
			return Seat{}, invariantf("rank order ties between %s and %s", cards[best], c)
		}
		if best < 0 || order > bestOrder {
			best, bestOrder = i, order
		}
	}
	if best < 0 {
		return Seat{}, invariantf("no card of leading suit %s in trick", lead)
	}
	return NewSeat(best, r.Players())
}

// MustFollowSuit is the legality policy shared by suit-following rule sets:
// a seat leading may play anything; a seat holding cards of the leading suit
// must play one of them; a seat void in the leading suit may discard
// anything. The returned slice is always a copy.
func MustFollowSuit(hand []domain.Card, lead *domain.Suit) []domain.Card {
	if lead == nil {
		return append([]domain.Card(nil), hand...)
	}
	var follow []domain.Card
	for _, c := range hand {
		if c.Suit == *lead {
			follow = append(follow, c)
		}
	}
	if len(follow) == 0 {
		return append([]domain.Card(nil), hand...)
	}
	return follow
}
