package game

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Terrain byte

const (
	Sea    Terrain = 'S'
	Island Terrain = 'I'
	Base   Terrain = 'B'
)

// Traversable reports whether ships and marines may occupy the cell.
func (t Terrain) Traversable() bool {
	return t == Sea || t == Base
}

// Map is the static board plus the initial placement of every piece.
type Map struct {
	Name      string
	Grid      [][]Terrain
	Base      Cell
	Turns     int // total number of player moves in a game
	Ships     []Ship
	Treasures []Treasure
	Marines   []Marine
}

func (m *Map) Rows() int {
	return len(m.Grid)
}

func (m *Map) Cols() int {
	if len(m.Grid) == 0 {
		return 0
	}
	return len(m.Grid[0])
}

func (m *Map) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < m.Rows() && c.Col >= 0 && c.Col < m.Cols()
}

// Terrain returns the terrain at c. Out-of-bounds cells read as islands.
func (m *Map) Terrain(c Cell) Terrain {
	if !m.InBounds(c) {
		return Island
	}
	return m.Grid[c.Row][c.Col]
}

// Neighbors returns the in-bounds traversable cells orthogonally adjacent to c.
func (m *Map) Neighbors(c Cell) []Cell {
	neighbors := make([]Cell, 0, 4)
	for _, n := range c.Adjacent() {
		if m.Terrain(n).Traversable() {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// Validate checks the board and the initial placement for consistency.
func (m *Map) Validate() error {
	if m.Rows() == 0 || m.Cols() == 0 {
		return fmt.Errorf("%w: empty grid", ErrInvalidMap)
	}
	bases := 0
	for r, row := range m.Grid {
		if len(row) != m.Cols() {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidMap, r, len(row), m.Cols())
		}
		for c, t := range row {
			switch t {
			case Sea, Island:
			case Base:
				bases++
				if (Cell{r, c}) != m.Base {
					return fmt.Errorf("%w: base marker at %d,%d does not match base %v", ErrInvalidMap, r, c, m.Base)
				}
			default:
				return fmt.Errorf("%w: unknown terrain %q at %d,%d", ErrInvalidMap, t, r, c)
			}
		}
	}
	if bases != 1 {
		return fmt.Errorf("%w: want exactly one base, found %d", ErrInvalidMap, bases)
	}
	if m.Turns <= 0 {
		return fmt.Errorf("%w: turns must be positive", ErrInvalidMap)
	}

	ships := make(map[string]Ship, len(m.Ships))
	for _, s := range m.Ships {
		if s.Name == "" {
			return fmt.Errorf("%w: ship without a name", ErrInvalidMap)
		}
		if _, dup := ships[s.Name]; dup {
			return fmt.Errorf("%w: duplicate ship %q", ErrInvalidMap, s.Name)
		}
		if s.Owner != PlayerA && s.Owner != PlayerB {
			return fmt.Errorf("%w: ship %q has unknown owner %d", ErrInvalidMap, s.Name, s.Owner)
		}
		if !m.Terrain(s.Location).Traversable() {
			return fmt.Errorf("%w: ship %q starts on untraversable cell %v", ErrInvalidMap, s.Name, s.Location)
		}
		if s.MaxCapacity < 0 {
			return fmt.Errorf("%w: ship %q has negative capacity", ErrInvalidMap, s.Name)
		}
		ships[s.Name] = s
	}

	seen := make(map[string]bool, len(m.Treasures))
	cargo := make(map[string]int)
	for _, t := range m.Treasures {
		if t.Name == "" || seen[t.Name] {
			return fmt.Errorf("%w: missing or duplicate treasure name %q", ErrInvalidMap, t.Name)
		}
		seen[t.Name] = true
		if !m.InBounds(t.Origin) || m.Terrain(t.Origin) != Island {
			return fmt.Errorf("%w: treasure %q must lie on an island, got %v", ErrInvalidMap, t.Name, t.Origin)
		}
		if t.Carrier != "" {
			if _, ok := ships[t.Carrier]; !ok {
				return fmt.Errorf("%w: treasure %q carried by unknown ship %q", ErrInvalidMap, t.Name, t.Carrier)
			}
			cargo[t.Carrier]++
		}
	}
	for name, n := range cargo {
		if limit := ships[name].MaxCapacity; limit > 0 && n > limit {
			return fmt.Errorf("%w: ship %q carries %d treasures, capacity %d", ErrInvalidMap, name, n, limit)
		}
	}

	for _, mr := range m.Marines {
		if len(mr.Path) == 0 {
			return fmt.Errorf("%w: marine %q has an empty path", ErrInvalidMap, mr.Name)
		}
		if mr.Index < 0 || mr.Index >= len(mr.Path) {
			return fmt.Errorf("%w: marine %q index out of range", ErrInvalidMap, mr.Name)
		}
		for i, c := range mr.Path {
			if !m.Terrain(c).Traversable() {
				return fmt.Errorf("%w: marine %q path crosses untraversable cell %v", ErrInvalidMap, mr.Name, c)
			}
			if i > 0 && mr.Path[i-1].Distance(c) > 1 {
				return fmt.Errorf("%w: marine %q path jumps from %v to %v", ErrInvalidMap, mr.Name, mr.Path[i-1], c)
			}
		}
	}
	return nil
}

type mapFile struct {
	Name      string          `yaml:"name"`
	Turns     int             `yaml:"turns"`
	Grid      []string        `yaml:"grid"`
	Ships     []shipEntry     `yaml:"ships"`
	Treasures []treasureEntry `yaml:"treasures"`
	Marines   []marineEntry   `yaml:"marines"`
}

type shipEntry struct {
	Name     string `yaml:"name"`
	Player   string `yaml:"player"`
	Location []int  `yaml:"location"`
	Capacity int    `yaml:"capacity"`
}

type treasureEntry struct {
	Name     string  `yaml:"name"`
	Location []int   `yaml:"location"`
	Reward   float64 `yaml:"reward"`
	Carrier  string  `yaml:"carrier"`
}

type marineEntry struct {
	Name string  `yaml:"name"`
	Path [][]int `yaml:"path"`
}

// LoadMap reads and validates a YAML map file.
func LoadMap(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map: %w", err)
	}
	return ParseMap(data)
}

// ParseMap decodes and validates a YAML map definition. Ships without a
// location start at the base.
func ParseMap(data []byte) (*Map, error) {
	var f mapFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse map: %w", err)
	}

	m := &Map{Name: f.Name, Turns: f.Turns}
	for r, line := range f.Grid {
		row := []Terrain(strings.ReplaceAll(strings.ToUpper(line), " ", ""))
		for c, t := range row {
			if t == Base {
				m.Base = Cell{r, c}
			}
		}
		m.Grid = append(m.Grid, row)
	}

	for _, e := range f.Ships {
		owner, err := ParsePlayer(e.Player)
		if err != nil {
			return nil, fmt.Errorf("%w: ship %q: %v", ErrInvalidMap, e.Name, err)
		}
		loc := m.Base
		if e.Location != nil {
			if loc, err = toCell(e.Location); err != nil {
				return nil, fmt.Errorf("%w: ship %q: %v", ErrInvalidMap, e.Name, err)
			}
		}
		m.Ships = append(m.Ships, Ship{Name: e.Name, Owner: owner, Location: loc, MaxCapacity: e.Capacity})
	}

	for _, e := range f.Treasures {
		origin, err := toCell(e.Location)
		if err != nil {
			return nil, fmt.Errorf("%w: treasure %q: %v", ErrInvalidMap, e.Name, err)
		}
		m.Treasures = append(m.Treasures, Treasure{Name: e.Name, Origin: origin, Reward: e.Reward, Carrier: e.Carrier})
	}

	for _, e := range f.Marines {
		mr := Marine{Name: e.Name}
		for _, p := range e.Path {
			c, err := toCell(p)
			if err != nil {
				return nil, fmt.Errorf("%w: marine %q: %v", ErrInvalidMap, e.Name, err)
			}
			mr.Path = append(mr.Path, c)
		}
		m.Marines = append(m.Marines, mr)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func toCell(v []int) (Cell, error) {
	if len(v) != 2 {
		return Cell{}, fmt.Errorf("cell needs [row, col], got %v", v)
	}
	return Cell{Row: v[0], Col: v[1]}, nil
}

// CreateMap returns the built-in two-ships-a-side archipelago.
func CreateMap() *Map {
	grid := []string{
		"BSSSS",
		"SISIS",
		"SSSSS",
		"SISSS",
		"SSSIS",
	}
	m := &Map{
		Name:  "archipelago",
		Base:  Cell{0, 0},
		Turns: 40,
		Ships: []Ship{
			{Name: "a1", Owner: PlayerA, Location: Cell{0, 0}},
			{Name: "a2", Owner: PlayerA, Location: Cell{0, 0}},
			{Name: "b1", Owner: PlayerB, Location: Cell{0, 0}},
			{Name: "b2", Owner: PlayerB, Location: Cell{0, 0}},
		},
		Treasures: []Treasure{
			{Name: "t1", Origin: Cell{1, 1}, Reward: 3},
			{Name: "t2", Origin: Cell{1, 3}, Reward: 4},
			{Name: "t3", Origin: Cell{3, 1}, Reward: 2},
			{Name: "t4", Origin: Cell{4, 3}, Reward: 6},
		},
		Marines: []Marine{
			{Name: "m1", Path: []Cell{{2, 1}, {2, 2}, {2, 3}}},
		},
	}
	for _, row := range grid {
		m.Grid = append(m.Grid, []Terrain(row))
	}
	return m
}
