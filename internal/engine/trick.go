package engine

import (
	"fmt"

	"tressette/internal/domain"
)

// OngoingTrick accumulates one card per seat for the trick in progress. Slots
// fill in rotation starting at the leading seat; the next seat to play is
// always the leader advanced by the number of cards already played.
type OngoingTrick struct {
	slots []*domain.Card
	first Seat
	next  Seat
}

// NewOngoingTrick starts an empty trick led by first. The table size is taken
// from the seat's bound.
func NewOngoingTrick(first Seat) *OngoingTrick {
	return &OngoingTrick{
		slots: make([]*domain.Card, first.Players()),
		first: first,
		next:  first,
	}
}

// First returns the seat that leads the trick.
func (t *OngoingTrick) First() Seat { return t.first }

// Next returns the seat due to play. Once the trick is full this has wrapped
// back to the leader.
func (t *OngoingTrick) Next() Seat { return t.next }

// Plays returns the number of cards played so far.
func (t *OngoingTrick) Plays() int {
	n := 0
	for _, s := range t.slots {
		if s != nil {
			n++
		}
	}
	return n
}

// Full reports whether every seat has played.
func (t *OngoingTrick) Full() bool { return t.Plays() == len(t.slots) }

// LeadingSuit returns the suit of the leader's card, or nil before anyone
// has played.
func (t *OngoingTrick) LeadingSuit() *domain.Suit {
	c := t.slots[t.first.Index()]
	if c == nil {
		return nil
	}
	suit := c.Suit
	return &suit
}

// CardAt returns the card played by seat s, if it has played.
func (t *OngoingTrick) CardAt(s Seat) (domain.Card, bool) {
	if s.Players() != len(t.slots) || t.slots[s.Index()] == nil {
		return domain.Card{}, false
	}
	return *t.slots[s.Index()], true
}

// Play records card for the seat currently due. A card equal to one already
// in the trick is rejected; duplicate plays indicate a bug upstream, not a
// tactical mistake. Play does not check hand ownership or suit legality;
// those are the caller's checks, kept separate so illegal-move policy stays
// outside the accumulator.
func (t *OngoingTrick) Play(card domain.Card) error {
	if t.Full() {
		return ErrTrickFull
	}
	for _, s := range t.slots {
		if s != nil && *s == card {
			return fmt.Errorf("%s: %w", card, ErrDuplicateCard)
		}
	}
	c := card
	t.slots[t.next.Index()] = &c
	t.next = t.next.Next()
	return nil
}

// Clone returns an independent copy of the trick. The engine hands clones to
// decision providers so they can inspect the trick without owning it.
func (t *OngoingTrick) Clone() *OngoingTrick {
	slots := make([]*domain.Card, len(t.slots))
	for i, s := range t.slots {
		if s != nil {
			c := *s
			slots[i] = &c
		}
	}
	return &OngoingTrick{slots: slots, first: t.first, next: t.next}
}

// Finish resolves the trick under r without mutating it: the same full trick
// finished twice yields equal results. While any slot is empty it returns
// ErrTrickIncomplete, which is expected control flow rather than a failure.
func (t *OngoingTrick) Finish(r Rules) (*Trick, error) {
	if !t.Full() {
		return nil, ErrTrickIncomplete
	}
	cards := make([]domain.Card, len(t.slots))
	for i, s := range t.slots {
		cards[i] = *s
	}
	taker, err := r.Taker(cards, t.first)
	if err != nil {
		return nil, err
	}
	return &Trick{cards: cards, first: t.first, taker: taker}, nil
}

// Trick is an immutable record of a finished trick: one card per seat in seat
// order, the seat that led it and the seat that took it. Tricks are only ever
// produced by finishing a full OngoingTrick and are safe to share.
type Trick struct {
	cards []domain.Card
	first Seat
	taker Seat
}

// Cards returns the cards in seat order. The slice is a copy.
func (t *Trick) Cards() []domain.Card {
	return append([]domain.Card(nil), t.cards...)
}

// First returns the seat that led the trick.
func (t *Trick) First() Seat { return t.first }

// Taker returns the seat that won the trick.
func (t *Trick) Taker() Seat { return t.taker }

// TakenWith returns the card the trick was won with. It always has the
// leading suit.
func (t *Trick) TakenWith() domain.Card { return t.cards[t.taker.Index()] }

// Equal reports whether two tricks record the same plays, leader and taker.
func (t *Trick) Equal(o *Trick) bool {
	if o == nil || len(t.cards) != len(o.cards) || t.first != o.first || t.taker != o.taker {
		return false
	}
	for i := range t.cards {
		if t.cards[i] != o.cards[i] {
			return false
		}
	}
	return true
}
