package searcher

import (
	"context"
	"fmt"
	"pirates/experiments/metrics"
	"pirates/game"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

type Option func(mcts *MCTS)

type MCTS struct {
	goroutines      int
	duration        time.Duration
	episodes        int
	cSquared        float64
	visitedDecision bool
	rng             *rand.Rand
	root            *Node
	metrics         metrics.Collector
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithExploration(cSquared float64) Option {
	return func(m *MCTS) {
		if cSquared >= 0 {
			m.cSquared = cSquared
		}
	}
}

// WithSeed makes the search reproducible for a fixed episode budget.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithGoroutines enables root parallelisation: every goroutine grows its own
// tree and the root statistics are summed before deciding.
func WithGoroutines(goroutines int) Option {
	return func(m *MCTS) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

// WithVisitedDecision decides among visited root children only, so the
// returned action always has statistics behind it.
func WithVisitedDecision() Option {
	return func(m *MCTS) {
		m.visitedDecision = true
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		goroutines: DefaultGoroutines,
		cSquared:   CSquared,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

// FindMove searches from the model's current state and returns the joint
// action for player. The model itself is never mutated. The search stops when
// the episode budget is used up, the duration has elapsed or ctx is done,
// whichever comes first, and always returns a joint action.
func (m *MCTS) FindMove(ctx context.Context, model game.Model, player game.Player) (game.JointAction, metrics.SearchMetric) {
	m.metrics.Start(m.goroutines)

	var deadline time.Time
	if m.duration > 0 {
		deadline = time.Now().Add(m.duration)
	}

	searches := make([]*search, m.goroutines)
	for i := range searches {
		searches[i] = &search{
			root:     newRoot(player),
			model:    model.Clone(),
			rng:      rand.New(rand.NewSource(m.rng.Uint64())),
			cSquared: m.cSquared,
			metrics:  m.metrics,
		}
	}

	if len(searches) == 1 {
		searches[0].run(ctx, share(m.episodes, 1, 0), deadline)
	} else {
		g, ctx := errgroup.WithContext(ctx)
		for i, s := range searches {
			episodes := share(m.episodes, len(searches), i)
			g.Go(func() error {
				s.run(ctx, episodes, deadline)
				return nil
			})
		}
		_ = g.Wait() // Searches never fail
	}

	roots := make([]*Node, len(searches))
	for i, s := range searches {
		roots[i] = s.root
	}
	m.root = mergeRoots(player, roots)

	var best *Node
	if m.visitedDecision {
		best = bestChildByValue(m.root, m.rng)
	} else {
		best = decisionChild(m.root, m.rng)
	}
	metric := m.metrics.Complete()

	if best == nil {
		log.Warn().Str("player", player.String()).Msg("search produced no candidate moves, waiting")
		return game.AllWait(model.Ships(player)), metric
	}

	log.Debug().
		Str("player", player.String()).
		Int("episodes", metric.Episodes).
		Int("visits", best.visits).
		Int("wins", best.wins).
		Msgf("selected %s", best.action)
	return best.action, metric
}

// RootStats returns the merged root child statistics of the last search.
func (m *MCTS) RootStats() []ChildStat {
	if m.root == nil {
		return nil
	}
	stats := make([]ChildStat, len(m.root.children))
	for i, child := range m.root.children {
		stats[i] = ChildStat{Action: child.action, Visits: child.visits, Wins: child.wins}
	}
	return stats
}

func (m *MCTS) String() string {
	return fmt.Sprintf("MCTS(goroutines=%d, episodes=%d, duration=%s, c2=%.2f)", m.goroutines, m.episodes, m.duration, m.cSquared)
}

// share splits an episode budget over n goroutines. Without a budget the
// share is -1, meaning unbounded (duration-bound search).
func share(episodes, n, i int) int {
	if episodes <= 0 {
		return -1
	}
	s := episodes / n
	if i < episodes%n {
		s++
	}
	return s
}

// mergeRoots sums the root children of several trees by joint action.
func mergeRoots(player game.Player, roots []*Node) *Node {
	if len(roots) == 1 {
		return roots[0]
	}

	merged := newRoot(player)
	index := make(map[string]*Node)
	for _, root := range roots {
		merged.visits += root.visits
		merged.wins += root.wins
		for _, child := range root.children {
			key := child.action.Key()
			target, ok := index[key]
			if !ok {
				target = &Node{parent: merged, player: child.player, action: child.action}
				index[key] = target
				merged.children = append(merged.children, target)
			}
			target.visits += child.visits
			target.wins += child.wins
		}
	}
	return merged
}

// search is the state owned by one goroutine: a tree, a pristine model clone
// to copy from every episode and an rng.
type search struct {
	root     *Node
	model    game.Model
	rng      *rand.Rand
	cSquared float64
	metrics  metrics.Collector
}

func (s *search) run(ctx context.Context, episodes int, deadline time.Time) {
	for i := 0; episodes < 0 || i < episodes; i++ {
		if ctx.Err() != nil {
			return
		}
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			return
		}
		s.simulate()
		s.metrics.AddEpisode()
	}
}

// simulate runs one select, expand, rollout and backup cycle.
func (s *search) simulate() {
	model := s.model.Clone()
	model.Seed(s.rng.Uint64())

	leaf := s.selectLeaf(model)
	if model.RemainingTurns() > 0 {
		leaf = s.rollout(leaf, model)
	}
	backup(leaf, model.Score())
}

// selectLeaf descends by UCT, replaying every chosen action on model, and
// stops at the first node without children or without eligible children.
func (s *search) selectLeaf(model game.Model) *Node {
	node := s.root
	for len(node.children) > 0 && model.RemainingTurns() > 0 {
		candidates, stale := eligible(node, model)
		s.metrics.AddStaleFiltered(stale)
		child := selectChild(node, candidates, s.cSquared, s.rng)
		if child == nil {
			return node
		}
		s.play(model, node, child)
		node = child
	}
	return node
}

// rollout plays uniformly random eligible children until the game is over,
// growing the tree along the way.
func (s *search) rollout(node *Node, model game.Model) *Node {
	for model.RemainingTurns() > 0 {
		child := s.randomChild(node, model)
		s.play(model, node, child)
		node = child
	}
	s.metrics.AddRollout()
	return node
}

func (s *search) randomChild(node *Node, model game.Model) *Node {
	if len(node.children) == 0 {
		actions := JointActions(model, node.player)
		node.expand(actions)
		s.metrics.AddNodes(len(actions))
	}

	candidates, stale := eligible(node, model)
	s.metrics.AddStaleFiltered(stale)
	if len(candidates) == 0 {
		added := node.extend(JointActions(model, node.player))
		s.metrics.AddReexpansion()
		s.metrics.AddNodes(added)
		candidates, _ = eligible(node, model)
	}
	if len(candidates) == 0 {
		// Enumeration always offers all-wait, which is legal in every state
		panic("no eligible child after re-expansion")
	}
	return candidates[s.rng.Intn(len(candidates))]
}

func (s *search) play(model game.Model, parent, child *Node) {
	if err := model.Apply(child.action, parent.player); err != nil {
		panic(fmt.Sprintf("eligible action %s was rejected: %v", child.action, err))
	}
}
