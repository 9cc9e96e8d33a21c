package engine

import (
	"context"
	"fmt"
	"math/big"

	"github.com/google/uuid"

	"tressette/internal/domain"
)

// DealFunc supplies the per-seat hands for a new hand. The dealing
// collaborator guarantees the deal is card-unique and exhaustive.
type DealFunc func() ([][]domain.Card, error)

// Match tracks running per-side scores across hands until the rule set's
// threshold is reached. The dealer seat rotates every hand so the first-lead
// advantage cycles through all seats.
type Match struct {
	id     string
	rules  Rules
	dealer Seat
	scores []*big.Rat
	hands  int
}

// NewMatch starts a match under r with all side scores at zero and seat 0
// dealing first.
func NewMatch(r Rules) (*Match, error) {
	if r.Players() <= 0 || r.Tricks() <= 0 || r.Sides() <= 0 {
		return nil, fmt.Errorf("rule set declares %d players, %d tricks, %d sides", r.Players(), r.Tricks(), r.Sides())
	}
	dealer, err := NewSeat(0, r.Players())
	if err != nil {
		return nil, err
	}
	scores := make([]*big.Rat, r.Sides())
	for i := range scores {
		scores[i] = new(big.Rat)
	}
	return &Match{
		id:     uuid.NewString(),
		rules:  r,
		dealer: dealer,
		scores: scores,
	}, nil
}

// ID returns the match identifier.
func (m *Match) ID() string { return m.id }

// Dealer returns the seat dealing the next hand.
func (m *Match) Dealer() Seat { return m.dealer }

// HandsPlayed returns how many hands have been scored.
func (m *Match) HandsPlayed() int { return m.hands }

// Scores returns the running per-side totals. The values are copies.
func (m *Match) Scores() []*big.Rat {
	out := make([]*big.Rat, len(m.scores))
	for i, s := range m.scores {
		out[i] = new(big.Rat).Set(s)
	}
	return out
}

// Over reports whether any side has reached the winning threshold.
func (m *Match) Over() bool { return m.rules.IsMatchOver(m.scores) }

// AddHand folds a finished hand's side scores into the running totals and
// rotates the dealer.
func (m *Match) AddHand(h *Hand) error {
	deltas := h.Scores()
	if len(deltas) != len(m.scores) {
		return invariantf("hand scored %d sides, match tracks %d", len(deltas), len(m.scores))
	}
	for i, d := range deltas {
		m.scores[i].Add(m.scores[i], d)
	}
	m.hands++
	m.dealer = m.dealer.Next()
	return nil
}

// Winner returns the side with the highest score once the match is over.
// When both sides reached the threshold with equal totals there is no winner
// yet; the match continues with another hand.
func (m *Match) Winner() (int, error) {
	if !m.Over() {
		return -1, ErrMatchNotOver
	}
	best := 0
	tied := false
	for i := 1; i < len(m.scores); i++ {
		switch m.scores[i].Cmp(m.scores[best]) {
		case 1:
			best, tied = i, false
		case 0:
			tied = true
		}
	}
	if tied {
		return -1, fmt.Errorf("sides tied at %s: %w", m.scores[best].RatString(), ErrMatchNotOver)
	}
	return best, nil
}

// Play repeats hands until one side holds the highest score at or above the
// threshold: deal, play the hand with the seat after the dealer leading,
// accumulate, rotate the dealer. Cancelling ctx aborts mid-hand without
// scoring the partial hand.
func (m *Match) Play(ctx context.Context, deal DealFunc, agents []Agent, rep Reporter) (int, error) {
	if rep == nil {
		rep = NopReporter{}
	}
	for {
		if err := ctx.Err(); err != nil {
			return -1, err
		}
		hands, err := deal()
		if err != nil {
			return -1, fmt.Errorf("deal: %w", err)
		}
		hand, err := PlayHand(ctx, m.rules, hands, m.dealer.Next(), agents, rep)
		if err != nil {
			return -1, err
		}
		if err := m.AddHand(hand); err != nil {
			return -1, err
		}
		if !m.Over() {
			continue
		}
		winner, err := m.Winner()
		if err != nil {
			// Both sides at the threshold with equal totals: play on.
			continue
		}
		rep.ReportMatchCompleted(m.Scores(), winner)
		return winner, nil
	}
}
