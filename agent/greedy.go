package agent

import (
	"context"
	"pirates/experiments/metrics"
	"pirates/game"
	"pirates/player"
	"time"
)

type greedyAgent struct {
	greedy *player.Greedy
}

func NewGreedyAgent(greedy *player.Greedy) Agent {
	return greedyAgent{greedy: greedy}
}

func (a greedyAgent) FindMove(_ context.Context, model game.Model, p game.Player) (game.JointAction, metrics.SearchMetric) {
	start := time.Now()
	move := a.greedy.FindMove(model, p)
	return move, metrics.SearchMetric{Goroutines: 1, Duration: time.Since(start)}
}
