package game

import "fmt"

// Player identifies one of the two sides. Scores and per-player tables are
// indexed directly by it.
type Player int

const (
	PlayerA Player = iota
	PlayerB
)

// Players lists both sides in seating order.
var Players = [2]Player{PlayerA, PlayerB}

func (p Player) Opponent() Player {
	return 1 - p
}

func (p Player) String() string {
	switch p {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	default:
		return fmt.Sprintf("Player(%d)", int(p))
	}
}

// ParsePlayer accepts "A"/"B" (any case) as well as "1"/"2".
func ParsePlayer(s string) (Player, error) {
	switch s {
	case "A", "a", "1":
		return PlayerA, nil
	case "B", "b", "2":
		return PlayerB, nil
	}
	return 0, fmt.Errorf("unknown player %q", s)
}

// Score holds the accumulated points of both players.
type Score [2]float64

// Model is the game as seen by the agents. Implementations are mutable;
// searchers must work on a Clone and never on the live model.
type Model interface {
	// Neighbors returns the traversable cells adjacent to c.
	Neighbors(c Cell) []Cell
	// Apply executes a joint action for player p and advances the game by one
	// turn. Illegal joint actions are rejected with ErrIllegalAction and leave
	// the model untouched.
	Apply(ja JointAction, p Player) error
	Legal(ja JointAction, p Player) bool
	RemainingTurns() int
	Score() Score
	// Clone returns an independent copy with identical state.
	Clone() Model
	// Seed reseeds the model's source of randomness (marine patrols).
	Seed(seed uint64)

	// Read-only views used for action generation and heuristics.
	Ships(p Player) []Ship
	Ship(name string) (Ship, bool)
	Treasures() []Treasure
	Marines() []Cell
	Base() Cell
}
