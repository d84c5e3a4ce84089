package agent

import (
	"context"
	"pirates/experiments/metrics"
	"pirates/game"
	"pirates/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewUCTAgent returns an agent that plays the search's decision.
func NewUCTAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(ctx context.Context, model game.Model, player game.Player) (game.JointAction, metrics.SearchMetric) {
	return a.mcts.FindMove(ctx, model, player)
}
