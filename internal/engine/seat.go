package engine

import "fmt"

// Seat identifies a position at the table, bounded to [0, players). The zero
// value is not valid; construct seats through NewSeat.
type Seat struct {
	index   int
	players int
}

// NewSeat validates index against the table size. Any index outside
// [0, players) is a construction error, never a half-valid seat.
func NewSeat(index, players int) (Seat, error) {
	if players <= 0 {
		return Seat{}, fmt.Errorf("table size must be positive, got %d", players)
	}
	if index < 0 || index >= players {
		return Seat{}, fmt.Errorf("seat %d out of range [0,%d)", index, players)
	}
	return Seat{index: index, players: players}, nil
}

// Index returns the seat's position, in [0, players).
func (s Seat) Index() int { return s.index }

// Players returns the table size the seat is bounded by.
func (s Seat) Players() int { return s.players }

// Next returns the following seat in rotation, wrapping players-1 back to 0.
func (s Seat) Next() Seat {
	return Seat{index: (s.index + 1) % s.players, players: s.players}
}

func (s Seat) String() string {
	return fmt.Sprintf("seat %d", s.index)
}
