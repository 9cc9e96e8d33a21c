// Package luarules adapts a variant definition written in Lua to
// engine.Rules, so house variants ship as scripts instead of Go code. The
// script is evaluated once at load time; play itself never re-enters Lua.
//
// A script sets a global `variant` table:
//
//	variant = {
//		name = "tressette",
//		players = 4,
//		tricks = 10,
//		sides = 2,
//		win_threshold = 21,
//		last_trick_bonus_thirds = 3,
//		rank_order = { "4", "5", "6", "7", "J", "Kn", "K", "A", "2", "3" },
//		value_thirds = { A = 3, ["2"] = 1, ["3"] = 1, J = 1, Kn = 1, K = 1 },
//	}
//
// rank_order lists ranks weakest first and must name each rank at most once;
// value_thirds gives per-rank scoring weights in thirds of a point, with
// omitted ranks worth nothing.
package luarules

import (
	"fmt"
	"math/big"

	lua "github.com/yuin/gopher-lua"

	"tressette/internal/domain"
	"tressette/internal/engine"
)

// Rules is a Lua-defined rule set.
type Rules struct {
	name      string
	players   int
	tricks    int
	sides     int
	order     map[domain.Rank]int
	thirds    map[domain.Rank]int64
	bonus     *big.Rat
	threshold *big.Rat
}

var rankNames = map[string]domain.Rank{
	"A":  domain.Ace,
	"2":  domain.Two,
	"3":  domain.Three,
	"4":  domain.Four,
	"5":  domain.Five,
	"6":  domain.Six,
	"7":  domain.Seven,
	"J":  domain.Jack,
	"Kn": domain.Knight,
	"K":  domain.King,
}

// Load evaluates the Lua script at path and builds the rule set it declares.
func Load(path string) (*Rules, error) {
	L := lua.NewState()
	defer L.Close()
	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("run rules script: %w", err)
	}
	return fromState(L)
}

// LoadString evaluates an in-memory script. Used by tests and embedded
// variants.
func LoadString(script string) (*Rules, error) {
	L := lua.NewState()
	defer L.Close()
	if err := L.DoString(script); err != nil {
		return nil, fmt.Errorf("run rules script: %w", err)
	}
	return fromState(L)
}

func fromState(L *lua.LState) (*Rules, error) {
	tbl, ok := L.GetGlobal("variant").(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("rules script must set a global 'variant' table")
	}

	r := &Rules{
		order:  make(map[domain.Rank]int),
		thirds: make(map[domain.Rank]int64),
	}
	r.name = lua.LVAsString(tbl.RawGetString("name"))

	var err error
	if r.players, err = intField(tbl, "players"); err != nil {
		return nil, err
	}
	if r.tricks, err = intField(tbl, "tricks"); err != nil {
		return nil, err
	}
	if r.sides, err = intField(tbl, "sides"); err != nil {
		return nil, err
	}
	if r.players <= 0 || r.tricks <= 0 || r.sides <= 0 {
		return nil, fmt.Errorf("variant %q declares %d players, %d tricks, %d sides", r.name, r.players, r.tricks, r.sides)
	}
	if r.players%r.sides != 0 {
		return nil, fmt.Errorf("variant %q: %d players do not split into %d sides", r.name, r.players, r.sides)
	}

	threshold, err := intField(tbl, "win_threshold")
	if err != nil {
		return nil, err
	}
	if threshold <= 0 {
		return nil, fmt.Errorf("variant %q: win threshold must be positive, got %d", r.name, threshold)
	}
	r.threshold = big.NewRat(int64(threshold), 1)

	bonus := 0
	if v := tbl.RawGetString("last_trick_bonus_thirds"); v != lua.LNil {
		if bonus, err = intField(tbl, "last_trick_bonus_thirds"); err != nil {
			return nil, err
		}
		if bonus < 0 {
			return nil, fmt.Errorf("variant %q: last trick bonus must not be negative, got %d thirds", r.name, bonus)
		}
	}
	r.bonus = big.NewRat(int64(bonus), 3)

	orderTbl, ok := tbl.RawGetString("rank_order").(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("variant %q: rank_order must be a list of rank names", r.name)
	}
	for i := 1; i <= orderTbl.Len(); i++ {
		name := lua.LVAsString(orderTbl.RawGetInt(i))
		rank, ok := rankNames[name]
		if !ok {
			return nil, fmt.Errorf("variant %q: unknown rank %q in rank_order", r.name, name)
		}
		if _, dup := r.order[rank]; dup {
			return nil, fmt.Errorf("variant %q: rank %q listed twice in rank_order", r.name, name)
		}
		r.order[rank] = i - 1
	}
	if len(r.order) == 0 {
		return nil, fmt.Errorf("variant %q: rank_order is empty", r.name)
	}

	if v := tbl.RawGetString("value_thirds"); v != lua.LNil {
		valueTbl, ok := v.(*lua.LTable)
		if !ok {
			return nil, fmt.Errorf("variant %q: value_thirds must be a table", r.name)
		}
		valueTbl.ForEach(func(k, v lua.LValue) {
			if err != nil {
				return
			}
			rank, ok := rankNames[lua.LVAsString(k)]
			if !ok {
				err = fmt.Errorf("variant %q: unknown rank %q in value_thirds", r.name, lua.LVAsString(k))
				return
			}
			n, ok := v.(lua.LNumber)
			if !ok || n < 0 {
				err = fmt.Errorf("variant %q: value for rank %q must be a non-negative number", r.name, lua.LVAsString(k))
				return
			}
			r.thirds[rank] = int64(n)
		})
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}

func intField(tbl *lua.LTable, name string) (int, error) {
	n, ok := tbl.RawGetString(name).(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("variant field %q must be a number", name)
	}
	return int(n), nil
}

// Name returns the variant's declared name.
func (r *Rules) Name() string { return r.name }

func (r *Rules) Players() int { return r.players }

func (r *Rules) Tricks() int { return r.tricks }

func (r *Rules) Sides() int { return r.sides }

func (r *Rules) SideOf(s engine.Seat) int { return s.Index() % r.sides }

func (r *Rules) RankOrder(c domain.Card) (int, error) {
	order, ok := r.order[c.Rank]
	if !ok {
		return 0, fmt.Errorf("rank %s outside variant %q's rank universe", c.Rank, r.name)
	}
	return order, nil
}

func (r *Rules) Taker(cards []domain.Card, first engine.Seat) (engine.Seat, error) {
	return engine.HighestOfLeadingSuit(r, cards, first)
}

func (r *Rules) Playable(hand []domain.Card, lead *domain.Suit) []domain.Card {
	return engine.MustFollowSuit(hand, lead)
}

func (r *Rules) ScoreHand(won []domain.Card, tookLast bool) (*big.Rat, error) {
	total := new(big.Rat)
	for _, c := range won {
		total.Add(total, big.NewRat(r.thirds[c.Rank], 3))
	}
	if tookLast {
		total.Add(total, r.bonus)
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
