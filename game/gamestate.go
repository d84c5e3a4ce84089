package game

// Cell is a grid coordinate.
type Cell struct {
	Row int
	Col int
}

// Distance is the Manhattan (L1) distance between two cells.
func (c Cell) Distance(o Cell) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// Adjacent returns the four orthogonal neighbours, in up, down, left, right
// order. Bounds are not checked.
func (c Cell) Adjacent() [4]Cell {
	return [4]Cell{
		{c.Row - 1, c.Col},
		{c.Row + 1, c.Col},
		{c.Row, c.Col - 1},
		{c.Row, c.Col + 1},
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Ship is a pirate ship. Capacity counts free cargo slots.
type Ship struct {
	Name        string
	Owner       Player
	Location    Cell
	Capacity    int
	MaxCapacity int
}

// Carrying reports whether the ship holds at least one treasure.
func (s Ship) Carrying() bool {
	return s.Capacity < s.MaxCapacity
}

// Treasure lies on an island cell (Origin) until a ship carries it away.
// While in transit it is located at its Carrier.
type Treasure struct {
	Name      string
	Origin    Cell
	Reward    float64
	Carrier   string // ship name, empty while lying at Origin
	Deposited bool
}

// Available reports whether the treasure lies at its cell and can be collected.
func (t Treasure) Available() bool {
	return t.Carrier == "" && !t.Deposited
}

// Marine patrols back and forth along Path. Index is its current position.
type Marine struct {
	Name  string
	Path  []Cell
	Index int
}

func (m Marine) Location() Cell {
	return m.Path[m.Index]
}
