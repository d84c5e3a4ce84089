package searcher

import "pirates/game"

// ShipActions lists every action available to ship in the model's current
// state: sails, collects, deposits, plunders and finally wait.
func ShipActions(model game.Model, ship game.Ship) []game.Action {
	var actions []game.Action
	for _, cell := range model.Neighbors(ship.Location) {
		actions = append(actions, game.Sail(ship.Name, cell))
	}

	treasures := model.Treasures()
	if ship.Capacity > 0 {
		for _, t := range treasures {
			if t.Available() && ship.Location.Distance(t.Origin) == 1 {
				actions = append(actions, game.Collect(ship.Name, t.Name))
			}
		}
	}
	if ship.Location == model.Base() {
		for _, t := range treasures {
			if t.Carrier == ship.Name {
				actions = append(actions, game.Deposit(ship.Name, t.Name))
			}
		}
	}
	for _, enemy := range model.Ships(ship.Owner.Opponent()) {
		if enemy.Location == ship.Location {
			actions = append(actions, game.Plunder(ship.Name, enemy.Name))
		}
	}

	return append(actions, game.Wait(ship.Name))
}

// JointActions enumerates the cartesian product of the ship actions of p,
// leaving out combinations in which two ships collect the same treasure.
func JointActions(model game.Model, p game.Player) []game.JointAction {
	ships := model.Ships(p)
	options := make([][]game.Action, len(ships))
	for i, ship := range ships {
		options[i] = ShipActions(model, ship)
	}

	var joint []game.JointAction
	current := make(game.JointAction, 0, len(ships))
	claimed := make(map[string]bool)

	var build func(i int)
	build = func(i int) {
		if i == len(options) {
			joint = append(joint, append(game.JointAction(nil), current...))
			return
		}
		for _, a := range options[i] {
			if a.Type == game.CollectAction {
				if claimed[a.Treasure] {
					continue
				}
				claimed[a.Treasure] = true
			}
			current = append(current, a)
			build(i + 1)
			current = current[:len(current)-1]
			if a.Type == game.CollectAction {
				delete(claimed, a.Treasure)
			}
		}
	}
	build(0)

	return joint
}
