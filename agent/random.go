package agent

import (
	"context"
	"pirates/experiments/metrics"
	"pirates/game"
	"pirates/searcher"
	"time"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal joint
// action.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(_ context.Context, model game.Model, player game.Player) (game.JointAction, metrics.SearchMetric) {
	start := time.Now()
	moves := searcher.JointActions(model, player)
	move := moves[a.rng.Intn(len(moves))]
	return move, metrics.SearchMetric{Goroutines: 1, Duration: time.Since(start)}
}
