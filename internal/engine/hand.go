package engine

import (
	"context"
	"fmt"
	"math/big"

	"tressette/internal/domain"
)

// Agent is a player decision provider. Given the seat's current hand and the
// legal subset of it, it must return exactly one card drawn from the legal
// set; anything else is treated as a fatal integration error, not a
// recoverable game error. The trick clone carries the plays so far.
type Agent interface {
	PlayCard(ctx context.Context, seat Seat, hand, legal []domain.Card, trick *OngoingTrick) (domain.Card, error)
}

// OngoingHand drives one hand through its tricks: Dealt, then Tricks()
// completed tricks in rotation, then scored. Each trick's taker leads the
// next one.
type OngoingHand struct {
	rules  Rules
	hands  [][]domain.Card
	leader Seat
	trick  *OngoingTrick
	tricks []*Trick
}

// NewOngoingHand starts a hand from the dealt cards. Every seat must hold
// exactly Tricks() cards and no card may appear twice across hands.
func NewOngoingHand(r Rules, hands [][]domain.Card, leader Seat) (*OngoingHand, error) {
	if len(hands) != r.Players() {
		return nil, fmt.Errorf("dealt %d hands for %d players", len(hands), r.Players())
	}
	if leader.Players() != r.Players() {
		return nil, fmt.Errorf("leader bounded to %d seats at a %d-seat table", leader.Players(), r.Players())
	}
	seen := make(map[domain.Card]bool, len(hands)*r.Tricks())
	owned := make([][]domain.Card, len(hands))
	for i, hand := range hands {
		if len(hand) != r.Tricks() {
			return nil, fmt.Errorf("seat %d dealt %d cards, want %d", i, len(hand), r.Tricks())
		}
		for _, c := range hand {
			if seen[c] {
				return nil, fmt.Errorf("card %s dealt twice", c)
			}
			seen[c] = true
		}
		owned[i] = append([]domain.Card(nil), hand...)
	}
	return &OngoingHand{
		rules:  r,
		hands:  owned,
		leader: leader,
		trick:  NewOngoingTrick(leader),
	}, nil
}

// Leader returns the seat leading the current trick.
func (h *OngoingHand) Leader() Seat { return h.leader }

// Turn returns the seat due to play.
func (h *OngoingHand) Turn() Seat { return h.trick.Next() }

// LeadingSuit returns the suit led this trick, or nil when leading.
func (h *OngoingHand) LeadingSuit() *domain.Suit { return h.trick.LeadingSuit() }

// HandOf returns a copy of the cards seat s still holds.
func (h *OngoingHand) HandOf(s Seat) []domain.Card {
	return append([]domain.Card(nil), h.hands[s.Index()]...)
}

// Legal returns the cards seat s may play right now, per the rule set.
func (h *OngoingHand) Legal(s Seat) []domain.Card {
	return h.rules.Playable(h.hands[s.Index()], h.trick.LeadingSuit())
}

// Trick returns a clone of the trick in progress.
func (h *OngoingHand) Trick() *OngoingTrick { return h.trick.Clone() }

// TricksPlayed returns the completed tricks so far.
func (h *OngoingHand) TricksPlayed() []*Trick {
	return append([]*Trick(nil), h.tricks...)
}

// Done reports whether all tricks have been played.
func (h *OngoingHand) Done() bool { return len(h.tricks) == h.rules.Tricks() }

// Play applies seat s playing card c. Out-of-turn, unheld and
// suit-illegal plays are rejected without touching any state, so the same
// seat can retry. When the play completes a trick, the finished trick is
// returned and its taker leads the next one.
func (h *OngoingHand) Play(s Seat, c domain.Card) (*Trick, error) {
	if h.Done() {
		return nil, ErrHandComplete
	}
	if s != h.Turn() {
		return nil, fmt.Errorf("%s: %w", s, ErrNotYourTurn)
	}
	hand := h.hands[s.Index()]
	if !domain.Contains(hand, c) {
		return nil, fmt.Errorf("%s does not hold %s: %w", s, c, ErrCardNotHeld)
	}
	if !domain.Contains(h.rules.Playable(hand, h.trick.LeadingSuit()), c) {
		return nil, fmt.Errorf("%s playing %s: %w", s, c, ErrMustFollowSuit)
	}
	if err := h.trick.Play(c); err != nil {
		return nil, err
	}
	h.hands[s.Index()] = domain.Remove(hand, c)
	if !h.trick.Full() {
		return nil, nil
	}
	trick, err := h.trick.Finish(h.rules)
	if err != nil {
		return nil, err
	}
	h.tricks = append(h.tricks, trick)
	h.leader = trick.Taker()
	h.trick = NewOngoingTrick(h.leader)
	return trick, nil
}

// Finish scores the completed hand: every trick's cards go to the taker's
// side and each side's pile is scored by the rule set.
func (h *OngoingHand) Finish() (*Hand, error) {
	if !h.Done() {
		return nil, ErrHandIncomplete
	}
	sides := h.rules.Sides()
	won := make([][]domain.Card, sides)
	for _, t := range h.tricks {
		side := h.rules.SideOf(t.Taker())
		won[side] = append(won[side], t.Cards()...)
	}
	lastSide := h.rules.SideOf(h.tricks[len(h.tricks)-1].Taker())
	scores := make([]*big.Rat, sides)
	for i := range scores {
		score, err := h.rules.ScoreHand(won[i], i == lastSide)
		if err != nil {
			return nil, err
		}
		scores[i] = score
	}
	return &Hand{
		tricks: append([]*Trick(nil), h.tricks...),
		scores: scores,
	}, nil
}

// Hand is an immutable record of a fully played hand: its tricks in play
// order and the per-side score deltas.
type Hand struct {
	tricks []*Trick
	scores []*big.Rat
}

// Tricks returns the hand's tricks in play order.
func (h *Hand) Tricks() []*Trick {
	return append([]*Trick(nil), h.tricks...)
}

// Scores returns the per-side score deltas. The values are copies.
func (h *Hand) Scores() []*big.Rat {
	out := make([]*big.Rat, len(h.scores))
	for i, s := range h.scores {
		out[i] = new(big.Rat).Set(s)
	}
	return out
}

// PlayHand runs a full hand from dealt cards, asking each seat's agent in
// rotation starting at leader. Aborting through ctx discards the hand in
// progress without scoring it.
func PlayHand(ctx context.Context, r Rules, hands [][]domain.Card, leader Seat, agents []Agent, rep Reporter) (*Hand, error) {
	if len(agents) != r.Players() {
		return nil, fmt.Errorf("%d agents for %d players", len(agents), r.Players())
	}
	if rep == nil {
		rep = NopReporter{}
	}
	oh, err := NewOngoingHand(r, hands, leader)
	if err != nil {
		return nil, err
	}
	for !oh.Done() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		seat := oh.Turn()
		legal := oh.Legal(seat)
		card, err := agents[seat.Index()].PlayCard(ctx, seat, oh.HandOf(seat), legal, oh.Trick())
		if err != nil {
			return nil, fmt.Errorf("agent for %s: %w", seat, err)
		}
		if !domain.Contains(legal, card) {
			return nil, invariantf("agent for %s returned %s, outside the legal set", seat, card)
		}
		trick, err := oh.Play(seat, card)
		if err != nil {
			return nil, err
		}
		if trick != nil {
			rep.ReportTrickCompleted(trick)
		}
	}
	hand, err := oh.Finish()
	if err != nil {
		return nil, err
	}
	rep.ReportHandCompleted(hand)
	return hand, nil
}
