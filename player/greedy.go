package player

import (
	"math"
	"pirates/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// MaxRetries bounds how often an illegal greedy move is weakened before
// falling back to all-wait.
const MaxRetries = 3

// Greedy picks one action per ship by fixed priority: deposit, collect,
// plunder, then move toward the most valuable treasure or home.
type Greedy struct {
	retries int
}

func NewGreedy() *Greedy {
	return &Greedy{retries: MaxRetries}
}

// FindMove returns a joint action for p that the model accepts as legal.
func (g *Greedy) FindMove(model game.Model, p game.Player) game.JointAction {
	ships := model.Ships(p)
	claimed := make(map[string]bool)
	ja := make(game.JointAction, len(ships))
	for i, ship := range ships {
		ja[i] = g.shipAction(model, ship, claimed)
	}

	for attempt := 0; attempt <= g.retries; attempt++ {
		if model.Legal(ja, p) {
			return ja
		}
		log.Debug().Str("player", p.String()).Int("attempt", attempt).Msgf("greedy move %s is illegal", ja)
		if !weaken(ja) {
			break
		}
	}

	log.Warn().Str("player", p.String()).Msg("greedy agent found no legal move, waiting")
	return game.AllWait(ships)
}

// weaken turns the last non-wait action into a wait. It reports false when
// every action already waits.
func weaken(ja game.JointAction) bool {
	for i := len(ja) - 1; i >= 0; i-- {
		if ja[i].Type != game.WaitAction {
			ja[i] = game.Wait(ja[i].Ship)
			return true
		}
	}
	return false
}

func (g *Greedy) shipAction(model game.Model, ship game.Ship, claimed map[string]bool) game.Action {
	treasures := model.Treasures()

	// 1. Deposit
	if ship.Location == model.Base() {
		for _, t := range treasures {
			if t.Carrier == ship.Name {
				return game.Deposit(ship.Name, t.Name)
			}
		}
	}

	// 2. Collect the most valuable adjacent treasure
	if ship.Capacity > 0 {
		var best *game.Treasure
		for i, t := range treasures {
			if !t.Available() || claimed[t.Name] || ship.Location.Distance(t.Origin) != 1 {
				continue
			}
			if best == nil || t.Reward > best.Reward {
				best = &treasures[i]
			}
		}
		if best != nil {
			claimed[best.Name] = true
			return game.Collect(ship.Name, best.Name)
		}
	}

	// 3. Plunder an enemy that carries loot
	for _, enemy := range model.Ships(ship.Owner.Opponent()) {
		if enemy.Location == ship.Location && enemy.Capacity < enemy.MaxCapacity {
			return game.Plunder(ship.Name, enemy.Name)
		}
	}

	// 4. Move
	target, ok := g.target(model, ship, treasures, claimed)
	if !ok || target == ship.Location {
		return game.Wait(ship.Name)
	}
	next, ok := step(model, ship.Location, target)
	if !ok || slices.Contains(model.Marines(), next) {
		return game.Wait(ship.Name)
	}
	return game.Sail(ship.Name, next)
}

// target is the base when the ship is full or has nothing left to fetch,
// otherwise the approach cell of the treasure with the best reward per step.
func (g *Greedy) target(model game.Model, ship game.Ship, treasures []game.Treasure, claimed map[string]bool) (game.Cell, bool) {
	if ship.Capacity <= 0 {
		return model.Base(), true
	}

	bestScore := math.Inf(-1)
	var best game.Cell
	found := false
	for _, t := range treasures {
		if !t.Available() || claimed[t.Name] {
			continue
		}
		approach, ok := approachCell(model, ship.Location, t.Origin)
		if !ok {
			continue
		}
		score := t.Reward / float64(max(1, ship.Location.Distance(approach)))
		if score > bestScore {
			bestScore = score
			best = approach
			found = true
		}
	}
	if found {
		return best, true
	}
	if ship.Carrying() {
		return model.Base(), true
	}
	return game.Cell{}, false
}

// approachCell is the traversable neighbour of origin closest to from.
func approachCell(model game.Model, from, origin game.Cell) (game.Cell, bool) {
	neighbors := model.Neighbors(origin)
	if len(neighbors) == 0 {
		return game.Cell{}, false
	}
	best := neighbors[0]
	for _, c := range neighbors[1:] {
		if from.Distance(c) < from.Distance(best) {
			best = c
		}
	}
	return best, true
}

// step returns the neighbour of from on a shortest sea path to target.
func step(model game.Model, from, target game.Cell) (game.Cell, bool) {
	dist := distances(model, target)
	here, reachable := dist[from]
	if !reachable {
		return game.Cell{}, false
	}
	for _, n := range model.Neighbors(from) {
		if d, ok := dist[n]; ok && d < here {
			return n, true
		}
	}
	return game.Cell{}, false
}

// distances runs a breadth-first search over traversable cells from target.
func distances(model game.Model, target game.Cell) map[game.Cell]int {
	dist := map[game.Cell]int{target: 0}
	queue := []game.Cell{target}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range model.Neighbors(c) {
			if _, seen := dist[n]; !seen {
				dist[n] = dist[c] + 1
				queue = append(queue, n)
			}
		}
	}
	return dist
}
