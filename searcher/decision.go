package searcher

import (
	"math"
	"pirates/game"

	"golang.org/x/exp/rand"
)

// eligible returns the children of n whose joint action can still be played
// in the model's current state, and how many were filtered out. Treasures
// can vanish from their cells between expansion and replay (collected,
// or dropped and re-collected), so stored actions go stale.
func eligible(n *Node, model game.Model) ([]*Node, int) {
	lying := make(map[string]bool)
	for _, t := range model.Treasures() {
		if t.Available() {
			lying[t.Name] = true
		}
	}

	children := make([]*Node, 0, len(n.children))
	for _, child := range n.children {
		if collectsVanished(child.action, lying) || !model.Legal(child.action, n.player) {
			continue
		}
		children = append(children, child)
	}
	return children, len(n.children) - len(children)
}

func collectsVanished(ja game.JointAction, lying map[string]bool) bool {
	for _, name := range ja.Collects() {
		if !lying[name] {
			return true
		}
	}
	return false
}

// selectChild picks the candidate with the highest UCT score. Unvisited
// candidates score +Inf; ties are broken uniformly at random.
func selectChild(parent *Node, candidates []*Node, cSquared float64, rng *rand.Rand) *Node {
	if len(candidates) == 0 {
		return nil
	}
	if parent.visits == 0 {
		return candidates[rng.Intn(len(candidates))]
	}
	policy := newUCT(cSquared, float64(parent.visits))
	return argmax(candidates, policy.score, rng)
}

// bestChildByValue picks the child with the highest win ratio, ignoring
// children that were never visited unless nothing else is left.
func bestChildByValue(n *Node, rng *rand.Rand) *Node {
	return argmax(n.children, func(child *Node) float64 {
		return child.ratio(math.Inf(-1))
	}, rng)
}

// decisionChild picks the child with the highest win ratio, counting
// unvisited children as +Inf so that untried actions win over known losses.
func decisionChild(n *Node, rng *rand.Rand) *Node {
	return argmax(n.children, func(child *Node) float64 {
		return child.ratio(math.Inf(1))
	}, rng)
}

func argmax(nodes []*Node, value func(*Node) float64, rng *rand.Rand) *Node {
	if len(nodes) == 0 {
		return nil
	}

	best := make([]*Node, 0, 1)
	maxValue := math.Inf(-1)
	for _, node := range nodes {
		v := value(node)
		switch {
		case len(best) == 0 || v > maxValue:
			maxValue = v
			best = append(best[:0], node)
		case v == maxValue:
			best = append(best, node)
		}
	}
	if len(best) == 1 {
		return best[0]
	}
	return best[rng.Intn(len(best))]
}
