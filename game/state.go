package game

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// Simulator is the reference Model. The board is shared between clones and
// never mutated; pieces, score and the marine rng are copied.
type Simulator struct {
	board     *Map
	rules     Rules
	ships     []Ship     // sorted by name
	treasures []Treasure // sorted by name
	marines   []Marine
	turns     int
	score     Score
	src       *rand.PCGSource
	rng       *rand.Rand
}

// NewSimulator sets up a game on m. Ships without an explicit capacity get
// the rules' capacity; free slots are derived from the treasures they carry.
func NewSimulator(m *Map, rules Rules, seed uint64) (*Simulator, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	s := &Simulator{
		board:     m,
		rules:     rules,
		ships:     slices.Clone(m.Ships),
		treasures: slices.Clone(m.Treasures),
		marines:   make([]Marine, len(m.Marines)),
		turns:     m.Turns,
		src:       &rand.PCGSource{},
	}
	s.src.Seed(seed)
	s.rng = rand.New(s.src)

	slices.SortFunc(s.ships, func(a, b Ship) int { return strings.Compare(a.Name, b.Name) })
	slices.SortFunc(s.treasures, func(a, b Treasure) int { return strings.Compare(a.Name, b.Name) })
	for i, mr := range m.Marines {
		s.marines[i] = Marine{Name: mr.Name, Path: mr.Path, Index: mr.Index}
	}

	for i := range s.ships {
		ship := &s.ships[i]
		if ship.MaxCapacity == 0 {
			ship.MaxCapacity = rules.ShipCapacity()
		}
		ship.Capacity = ship.MaxCapacity
		for _, t := range s.treasures {
			if t.Carrier == ship.Name {
				ship.Capacity--
			}
		}
		if ship.Capacity < 0 {
			return nil, fmt.Errorf("%w: ship %q carries more than %d treasures", ErrInvalidMap, ship.Name, ship.MaxCapacity)
		}
	}
	return s, nil
}

func (s *Simulator) Map() *Map {
	return s.board
}

func (s *Simulator) Neighbors(c Cell) []Cell {
	return s.board.Neighbors(c)
}

func (s *Simulator) RemainingTurns() int {
	return s.turns
}

func (s *Simulator) Score() Score {
	return s.score
}

func (s *Simulator) Base() Cell {
	return s.board.Base
}

func (s *Simulator) Ships(p Player) []Ship {
	owned := make([]Ship, 0, len(s.ships))
	for _, ship := range s.ships {
		if ship.Owner == p {
			owned = append(owned, ship)
		}
	}
	return owned
}

func (s *Simulator) Ship(name string) (Ship, bool) {
	if i := s.shipIndex(name); i >= 0 {
		return s.ships[i], true
	}
	return Ship{}, false
}

func (s *Simulator) Treasures() []Treasure {
	return slices.Clone(s.treasures)
}

func (s *Simulator) Marines() []Cell {
	cells := make([]Cell, len(s.marines))
	for i, mr := range s.marines {
		cells[i] = mr.Location()
	}
	return cells
}

func (s *Simulator) Seed(seed uint64) {
	s.src.Seed(seed)
}

func (s *Simulator) Clone() Model {
	src := *s.src
	return &Simulator{
		board:     s.board,
		rules:     s.rules,
		ships:     slices.Clone(s.ships),
		treasures: slices.Clone(s.treasures),
		marines:   slices.Clone(s.marines), // paths are immutable and may be shared
		turns:     s.turns,
		score:     s.score,
		src:       &src,
		rng:       rand.New(&src),
	}
}

func (s *Simulator) shipIndex(name string) int {
	for i := range s.ships {
		if s.ships[i].Name == name {
			return i
		}
	}
	return -1
}

func (s *Simulator) treasureIndex(name string) int {
	for i := range s.treasures {
		if s.treasures[i].Name == name {
			return i
		}
	}
	return -1
}

func (s *Simulator) Legal(ja JointAction, p Player) bool {
	return s.check(ja, p) == nil
}

// check explains why a joint action is illegal for p, or returns nil.
func (s *Simulator) check(ja JointAction, p Player) error {
	owned := s.Ships(p)
	if len(ja) != len(owned) {
		return fmt.Errorf("want %d actions for player %s, got %d", len(owned), p, len(ja))
	}
	collected := make(map[string]bool)
	for i, a := range ja {
		if a.Ship != owned[i].Name {
			return fmt.Errorf("action %d is for ship %q, want %q", i, a.Ship, owned[i].Name)
		}
		if err := s.checkAction(a, owned[i]); err != nil {
			return fmt.Errorf("%s: %w", a, err)
		}
		if a.Type == CollectAction {
			if collected[a.Treasure] {
				return fmt.Errorf("treasure %q collected twice", a.Treasure)
			}
			collected[a.Treasure] = true
		}
	}
	return nil
}

func (s *Simulator) checkAction(a Action, ship Ship) error {
	switch a.Type {
	case WaitAction:
		return nil
	case SailAction:
		if ship.Location.Distance(a.Target) != 1 || !s.board.Terrain(a.Target).Traversable() {
			return errors.New("target is not a traversable neighbour")
		}
		return nil
	case CollectAction:
		if ship.Capacity <= 0 {
			return errors.New("no free capacity")
		}
		i := s.treasureIndex(a.Treasure)
		if i < 0 {
			return errors.New("unknown treasure")
		}
		t := s.treasures[i]
		if !t.Available() {
			return errors.New("treasure is not lying at its cell")
		}
		if ship.Location.Distance(t.Origin) != 1 {
			return errors.New("treasure is not adjacent")
		}
		return nil
	case DepositAction:
		if ship.Location != s.board.Base {
			return errors.New("ship is not at base")
		}
		i := s.treasureIndex(a.Treasure)
		if i < 0 || s.treasures[i].Carrier != ship.Name {
			return errors.New("treasure is not carried by the ship")
		}
		return nil
	case PlunderAction:
		enemy, ok := s.Ship(a.Enemy)
		if !ok {
			return errors.New("unknown enemy ship")
		}
		if enemy.Owner == ship.Owner {
			return errors.New("cannot plunder an own ship")
		}
		if enemy.Location != ship.Location {
			return errors.New("enemy ship is not co-located")
		}
		return nil
	default:
		return fmt.Errorf("unknown action type %d", a.Type)
	}
}

// Apply executes ja for p, spends one turn, moves the marines and resolves
// marine encounters.
func (s *Simulator) Apply(ja JointAction, p Player) error {
	if s.turns <= 0 {
		return ErrGameOver
	}
	if err := s.check(ja, p); err != nil {
		return fmt.Errorf("%w: %v", ErrIllegalAction, err)
	}

	for _, a := range ja {
		ship := &s.ships[s.shipIndex(a.Ship)]
		switch a.Type {
		case SailAction:
			ship.Location = a.Target
		case CollectAction:
			s.treasures[s.treasureIndex(a.Treasure)].Carrier = ship.Name
			ship.Capacity--
		case DepositAction:
			t := &s.treasures[s.treasureIndex(a.Treasure)]
			s.score[p] += s.rules.DepositReward(*t)
			t.Carrier = ""
			t.Deposited = true
			ship.Capacity++
		case PlunderAction:
			s.dropCargo(s.shipIndex(a.Enemy))
		}
	}

	s.turns--
	s.moveMarines()
	s.resolveEncounters()
	return nil
}

// dropCargo returns everything the ship carries to the treasures' origins.
func (s *Simulator) dropCargo(shipIdx int) {
	ship := &s.ships[shipIdx]
	for i := range s.treasures {
		if s.treasures[i].Carrier == ship.Name {
			s.treasures[i].Carrier = ""
		}
	}
	ship.Capacity = ship.MaxCapacity
}

// moveMarines steps every marine back, forward or not at all along its path.
func (s *Simulator) moveMarines() {
	for i := range s.marines {
		mr := &s.marines[i]
		if len(mr.Path) < 2 {
			continue
		}
		choices := make([]int, 0, 3)
		if mr.Index > 0 {
			choices = append(choices, mr.Index-1)
		}
		choices = append(choices, mr.Index)
		if mr.Index < len(mr.Path)-1 {
			choices = append(choices, mr.Index+1)
		}
		mr.Index = choices[s.rng.Intn(len(choices))]
	}
}

func (s *Simulator) resolveEncounters() {
	if len(s.marines) == 0 {
		return
	}
	for i := range s.ships {
		ship := s.ships[i]
		for _, mr := range s.marines {
			if mr.Location() == ship.Location {
				s.dropCargo(i)
				s.score[ship.Owner] -= s.rules.MarinePenalty()
				break
			}
		}
	}
}
