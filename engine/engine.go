package engine

import (
	"context"
	"pirates/experiments/metrics"
	"pirates/game"
)

type Engine interface {
	// Run plays a game until no turns remain and returns the winner, empty on a draw
	Run(ctx context.Context) (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

// Update is published to observers after every applied move.
type Update struct {
	Step   int
	Player game.Player
	Move   game.JointAction
	Legal  bool // false when the proposed move was replaced by all-wait
	Score  game.Score
	Model  game.Model // snapshot after the move
}
