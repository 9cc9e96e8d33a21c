// Package tressette implements the four-player partnership Tressette rule
// set: seats 0 and 2 against seats 1 and 3, ten tricks per hand over the
// 40-card Italian deck, card points counted in exact thirds.
package tressette

import (
	"fmt"
	"math/big"

	"tressette/internal/domain"
	"tressette/internal/engine"
)

const (
	// Players is the number of seats at a tressette table.
	Players = 4
	// Tricks is the number of tricks in a hand.
	Tricks = 10
	// Sides is the number of partnerships.
	Sides = 2
	// ScoreToWin is the classic winning threshold.
	ScoreToWin = 21
)

// Config tunes the variant-specific scoring knobs. Nothing here is
// hard-coded into the rules: house variants play to 31 or 41, or count the
// last trick as more than one point.
type Config struct {
	// WinThreshold is the running score at which the match ends.
	WinThreshold int
	// LastTrickBonusThirds is the bonus, in thirds of a point, for taking
	// the final trick of a hand.
	LastTrickBonusThirds int
	// FloorHandScore discards fractional thirds from each side's hand total,
	// the classic counting. Off, hand scores stay exact rationals.
	FloorHandScore bool
}

// DefaultConfig returns the classic game: play to 21, one point for the last
// trick, exact totals.
func DefaultConfig() Config {
	return Config{
		WinThreshold:         ScoreToWin,
		LastTrickBonusThirds: 3,
	}
}

// Rules implements engine.Rules for Tressette.
type Rules struct {
	cfg       Config
	threshold *big.Rat
}

// New validates cfg and builds the rule set.
func New(cfg Config) (*Rules, error) {
	if cfg.WinThreshold <= 0 {
		return nil, fmt.Errorf("win threshold must be positive, got %d", cfg.WinThreshold)
	}
	if cfg.LastTrickBonusThirds < 0 {
		return nil, fmt.Errorf("last trick bonus must not be negative, got %d thirds", cfg.LastTrickBonusThirds)
	}
	return &Rules{
		cfg:       cfg,
		threshold: big.NewRat(int64(cfg.WinThreshold), 1),
	}, nil
}

// rankOrder is the tressette within-suit order, weakest first:
// 4 5 6 7 J Kn K A 2 3. Absolute rank value is irrelevant.
var rankOrder = map[domain.Rank]int{
	domain.Four:   0,
	domain.Five:   1,
	domain.Six:    2,
	domain.Seven:  3,
	domain.Jack:   4,
	domain.Knight: 5,
	domain.King:   6,
	domain.Ace:    7,
	domain.Two:    8,
	domain.Three:  9,
}

// valueThirds is each rank's scoring weight in thirds of a point: the ace a
// full point, twos, threes and court cards a third, the rest nothing. A full
// deck sums to 32/3.
var valueThirds = map[domain.Rank]int64{
	domain.Ace:    3,
	domain.Two:    1,
	domain.Three:  1,
	domain.Jack:   1,
	domain.Knight: 1,
	domain.King:   1,
}

// Value returns a card's scoring weight as an exact fraction of a point.
func Value(c domain.Card) *big.Rat {
	return big.NewRat(valueThirds[c.Rank], 3)
}

func (r *Rules) Players() int { return Players }

func (r *Rules) Tricks() int { return Tricks }

func (r *Rules) Sides() int { return Sides }

// SideOf maps seats to partnerships: even seats against odd seats.
func (r *Rules) SideOf(s engine.Seat) int { return s.Index() % Sides }

func (r *Rules) RankOrder(c domain.Card) (int, error) {
	order, ok := rankOrder[c.Rank]
	if !ok {
		return 0, fmt.Errorf("rank %s outside the tressette rank universe", c.Rank)
	}
	return order, nil
}

func (r *Rules) Taker(cards []domain.Card, first engine.Seat) (engine.Seat, error) {
	return engine.HighestOfLeadingSuit(r, cards, first)
}

func (r *Rules) Playable(hand []domain.Card, lead *domain.Suit) []domain.Card {
	return engine.MustFollowSuit(hand, lead)
}

// ScoreHand sums the values of the cards a side won, in exact thirds, plus
// the configured bonus when the side took the last trick.
func (r *Rules) ScoreHand(won []domain.Card, tookLast bool) (*big.Rat, error) {
	total := new(big.Rat)
	for _, c := range won {
		total.Add(total, Value(c))
	}
	if tookLast {
		total.Add(total, big.NewRat(int64(r.cfg.LastTrickBonusThirds), 3))
	}
	if r.cfg.FloorHandScore {
		total.SetInt(new(big.Int).Quo(total.Num(), total.Denom()))
	}
	return total, nil
}

func (r *Rules) WinThreshold() *big.Rat {
	return new(big.Rat).Set(r.threshold)
}

func (r *Rules) IsMatchOver(scores []*big.Rat) bool {
	for _, s := range scores {
		if s.Cmp(r.threshold) >= 0 {
			return true
		}
	}
	return false
}
