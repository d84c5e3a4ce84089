package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines    int
	Duration      time.Duration
	Episodes      int
	Rollouts      int // episodes that played out to the end of the game
	Nodes         int // tree nodes created
	StaleFiltered int // children skipped because their action went stale
	Reexpansions  int
}

type MoveMetric struct {
	Step   int
	Player string
	Action string
	Legal  bool // false when the engine had to replace the agent's move
	SearchMetric
}

type GameMetric struct {
	ID             string
	StartingPlayer string
	Winner         string // empty on a draw
	ScoreA         float64
	ScoreB         float64
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector records search statistics. Implementations are safe for
// concurrent use by root-parallel searches.
type Collector interface {
	Start(goroutines int)
	AddEpisode()
	AddRollout()
	AddNodes(n int)
	AddStaleFiltered(n int)
	AddReexpansion()
	Complete() SearchMetric
}

type collector struct {
	goroutines    int
	startTime     time.Time
	episodes      atomic.Int64
	rollouts      atomic.Int64
	nodes         atomic.Int64
	staleFiltered atomic.Int64
	reexpansions  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(goroutines int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.episodes.Store(0)
	m.rollouts.Store(0)
	m.nodes.Store(0)
	m.staleFiltered.Store(0)
	m.reexpansions.Store(0)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddRollout() {
	m.rollouts.Add(1)
}

func (m *collector) AddNodes(n int) {
	m.nodes.Add(int64(n))
}

func (m *collector) AddStaleFiltered(n int) {
	m.staleFiltered.Add(int64(n))
}

func (m *collector) AddReexpansion() {
	m.reexpansions.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:    m.goroutines,
		Duration:      time.Since(m.startTime),
		Episodes:      int(m.episodes.Load()),
		Rollouts:      int(m.rollouts.Load()),
		Nodes:         int(m.nodes.Load()),
		StaleFiltered: int(m.staleFiltered.Load()),
		Reexpansions:  int(m.reexpansions.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int)   {}
func (m *dummyCollector) AddEpisode()            {}
func (m *dummyCollector) AddRollout()            {}
func (m *dummyCollector) AddNodes(n int)         {}
func (m *dummyCollector) AddStaleFiltered(n int) {}
func (m *dummyCollector) AddReexpansion()        {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
