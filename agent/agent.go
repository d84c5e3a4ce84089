package agent

import (
	"context"
	"pirates/experiments/metrics"
	"pirates/game"
)

type Agent interface {
	// FindMove returns a joint action for player and performance metrics (if collected) from the move finding process
	FindMove(ctx context.Context, model game.Model, player game.Player) (game.JointAction, metrics.SearchMetric)
}
