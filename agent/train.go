package agent

import (
	"context"
	"math"
	"pirates/experiments/metrics"
	"pirates/game"
	"pirates/searcher"

	"golang.org/x/exp/rand"
)

type samplingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
}

// NewSamplingAgent returns an agent that samples its move from the root visit
// counts. Low temperatures approach the most visited move, high ones approach
// uniform play.
func NewSamplingAgent(mcts *searcher.MCTS, temperature float64, seed uint64) Agent {
	if temperature <= 0 {
		panic("temperature must be positive")
	}
	return &samplingAgent{
		mcts:        mcts,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a *samplingAgent) FindMove(ctx context.Context, model game.Model, player game.Player) (game.JointAction, metrics.SearchMetric) {
	move, metric := a.mcts.FindMove(ctx, model, player)
	stats := a.mcts.RootStats()
	if len(stats) == 0 {
		return move, metric
	}
	policy := adjustTemperature(stats, a.temperature)
	return stats[sample(policy, a.rng)].Action, metric
}

func adjustTemperature(stats []searcher.ChildStat, temperature float64) []float64 {
	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	policy := make([]float64, len(stats))
	for i, s := range stats {
		policy[i] = math.Pow(float64(s.Visits), exponent)
		sum += policy[i]
	}
	if sum == 0 { // Nothing visited
		for i := range policy {
			policy[i] = 1.0 / float64(len(policy))
		}
		return policy
	}
	// Normalize
	for i := range policy {
		policy[i] /= sum
	}
	return policy
}

func sample(policy []float64, rng *rand.Rand) int {
	sampled := rng.Float64()
	cumulative := 0.0
	for i, prob := range policy {
		cumulative += prob
		if sampled < cumulative {
			return i
		}
	}
	return len(policy) - 1 // Fallback in case of rounding errors
}
