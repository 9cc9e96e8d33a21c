package luarules

import (
	"math/big"
	"testing"

	"tressette/internal/domain"
	"tressette/internal/engine"
)

func TestLoadClassicVariant(t *testing.T) {
	r, err := Load("testdata/tressette.lua")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if r.Name() != "tressette" {
		t.Errorf("name = %q, want tressette", r.Name())
	}
	if r.Players() != 4 || r.Tricks() != 10 || r.Sides() != 2 {
		t.Errorf("got %d players, %d tricks, %d sides", r.Players(), r.Tricks(), r.Sides())
	}
	if want := big.NewRat(21, 1); r.WinThreshold().Cmp(want) != 0 {
		t.Errorf("threshold = %s, want 21", r.WinThreshold().RatString())
	}

	// The scripted order matches the built-in game: 4 weakest, 3 strongest.
	low, err := r.RankOrder(domain.Card{Rank: domain.Four, Suit: domain.Coppe})
	if err != nil {
		t.Fatalf("rank order: %v", err)
	}
	high, err := r.RankOrder(domain.Card{Rank: domain.Three, Suit: domain.Coppe})
	if err != nil {
		t.Fatalf("rank order: %v", err)
	}
	if low >= high {
		t.Errorf("4 ranks %d, 3 ranks %d; want ascending", low, high)
	}

	ace, err := r.ScoreHand([]domain.Card{{Rank: domain.Ace, Suit: domain.Denari}}, false)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if want := big.NewRat(1, 1); ace.Cmp(want) != 0 {
		t.Errorf("ace scores %s, want 1", ace.RatString())
	}
	withLast, err := r.ScoreHand(nil, true)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if want := big.NewRat(1, 1); withLast.Cmp(want) != 0 {
		t.Errorf("last trick bonus = %s, want 1", withLast.RatString())
	}
}

func TestScriptedVariantResolvesTricks(t *testing.T) {
	r, err := Load("testdata/tressette.lua")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	seat, err := engine.NewSeat(0, r.Players())
	if err != nil {
		t.Fatalf("seat: %v", err)
	}
	cards := []domain.Card{
		{Rank: domain.Ace, Suit: domain.Coppe},
		{Rank: domain.Two, Suit: domain.Coppe},
		{Rank: domain.Three, Suit: domain.Coppe},
		{Rank: domain.Four, Suit: domain.Coppe},
	}
	taker, err := r.Taker(cards, seat)
	if err != nil {
		t.Fatalf("taker: %v", err)
	}
	if taker.Index() != 2 {
		t.Errorf("taker = %d, want 2", taker.Index())
	}
}

func TestLoadStringErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{name: "syntax error", script: `variant = {`},
		{name: "no variant table", script: `other = 1`},
		{name: "variant not a table", script: `variant = 3`},
		{
			name: "missing players",
			script: `variant = { tricks = 10, sides = 2, win_threshold = 21,
				rank_order = { "A" } }`,
		},
		{
			name: "players do not split into sides",
			script: `variant = { players = 4, tricks = 10, sides = 3, win_threshold = 21,
				rank_order = { "A" } }`,
		},
		{
			name: "zero threshold",
			script: `variant = { players = 4, tricks = 10, sides = 2, win_threshold = 0,
				rank_order = { "A" } }`,
		},
		{
			name: "unknown rank in order",
			script: `variant = { players = 4, tricks = 10, sides = 2, win_threshold = 21,
				rank_order = { "A", "Q" } }`,
		},
		{
			name: "rank listed twice",
			script: `variant = { players = 4, tricks = 10, sides = 2, win_threshold = 21,
				rank_order = { "A", "A" } }`,
		},
		{
			name: "empty rank order",
			script: `variant = { players = 4, tricks = 10, sides = 2, win_threshold = 21,
				rank_order = {} }`,
		},
		{
			name: "unknown rank in values",
			script: `variant = { players = 4, tricks = 10, sides = 2, win_threshold = 21,
				rank_order = { "A" }, value_thirds = { Q = 1 } }`,
		},
		{
			name: "negative value",
			script: `variant = { players = 4, tricks = 10, sides = 2, win_threshold = 21,
				rank_order = { "A" }, value_thirds = { A = -1 } }`,
		},
		{
			name: "negative bonus",
			script: `variant = { players = 4, tricks = 10, sides = 2, win_threshold = 21,
				last_trick_bonus_thirds = -3, rank_order = { "A" } }`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadString(tt.script); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestUnrankedCardIsError(t *testing.T) {
	r, err := LoadString(`variant = { players = 4, tricks = 10, sides = 2,
		win_threshold = 21, rank_order = { "A", "2", "3" } }`)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := r.RankOrder(domain.Card{Rank: domain.King, Suit: domain.Coppe}); err == nil {
		t.Fatalf("expected error for unranked card")
	}
}
