package player

import (
	"pirates/game"
	"testing"

	"github.com/stretchr/testify/require"
)

// reef is a 3x3 board with two treasure islands.
//
//	B S I
//	S I S
//	S S S
func reef(t *testing.T, ships []game.Ship, treasures []game.Treasure, marines []game.Marine) *game.Simulator {
	t.Helper()
	m := &game.Map{
		Name:      "reef",
		Grid:      [][]game.Terrain{[]game.Terrain("BSI"), []game.Terrain("SIS"), []game.Terrain("SSS")},
		Base:      game.Cell{Row: 0, Col: 0},
		Turns:     20,
		Ships:     ships,
		Treasures: treasures,
		Marines:   marines,
	}
	sim, err := game.NewSimulator(m, game.NewStandardRules(), 3)
	require.NoError(t, err)
	return sim
}

// picky accepts only joint actions approved by allow.
type picky struct {
	*game.Simulator
	allow func(game.JointAction) bool
}

func (p picky) Legal(ja game.JointAction, player game.Player) bool {
	return p.allow(ja) && p.Simulator.Legal(ja, player)
}

func TestGreedyCollectThenDeposit(t *testing.T) {
	sim := reef(t,
		[]game.Ship{{Name: "a1", Owner: game.PlayerA, Location: game.Cell{Row: 0, Col: 1}}},
		[]game.Treasure{{Name: "t1", Origin: game.Cell{Row: 1, Col: 1}, Reward: 4}},
		nil)
	g := NewGreedy()

	move := g.FindMove(sim, game.PlayerA)
	require.Equal(t, game.JointAction{game.Collect("a1", "t1")}, move, "Adjacent treasure should be collected first")
	require.NoError(t, sim.Apply(move, game.PlayerA))

	move = g.FindMove(sim, game.PlayerA)
	require.Equal(t, game.JointAction{game.Sail("a1", game.Cell{Row: 0, Col: 0})}, move, "Loaded ship with nothing left to fetch should head home")
	require.NoError(t, sim.Apply(move, game.PlayerA))

	move = g.FindMove(sim, game.PlayerA)
	require.Equal(t, game.JointAction{game.Deposit("a1", "t1")}, move)
	require.NoError(t, sim.Apply(move, game.PlayerA))
	require.Equal(t, game.Score{4, 0}, sim.Score())
}

func TestGreedyPlunder(t *testing.T) {
	sim := reef(t,
		[]game.Ship{
			{Name: "a1", Owner: game.PlayerA, Location: game.Cell{Row: 0, Col: 1}, MaxCapacity: 1},
			{Name: "b1", Owner: game.PlayerB, Location: game.Cell{Row: 0, Col: 1}},
		},
		[]game.Treasure{
			{Name: "t1", Origin: game.Cell{Row: 0, Col: 2}, Reward: 1, Carrier: "a1"},
			{Name: "t2", Origin: game.Cell{Row: 0, Col: 2}, Reward: 5, Carrier: "b1"},
			{Name: "t3", Origin: game.Cell{Row: 1, Col: 1}, Reward: 2},
		},
		nil)

	move := NewGreedy().FindMove(sim, game.PlayerA)

	require.Equal(t, game.JointAction{game.Plunder("a1", "b1")}, move, "Plunder should win over sailing home")
}

func TestGreedyCollectBeforePlunder(t *testing.T) {
	sim := reef(t,
		[]game.Ship{
			{Name: "a1", Owner: game.PlayerA, Location: game.Cell{Row: 0, Col: 1}},
			{Name: "b1", Owner: game.PlayerB, Location: game.Cell{Row: 0, Col: 1}},
		},
		[]game.Treasure{
			{Name: "t1", Origin: game.Cell{Row: 0, Col: 2}, Reward: 1, Carrier: "b1"},
			{Name: "t2", Origin: game.Cell{Row: 1, Col: 1}, Reward: 2},
		},
		nil)

	move := NewGreedy().FindMove(sim, game.PlayerA)

	require.Equal(t, game.JointAction{game.Collect("a1", "t2")}, move)
}

func TestGreedyClaimsTreasureOnce(t *testing.T) {
	sim := reef(t,
		[]game.Ship{
			{Name: "a1", Owner: game.PlayerA, Location: game.Cell{Row: 0, Col: 1}},
			{Name: "a2", Owner: game.PlayerA, Location: game.Cell{Row: 1, Col: 0}},
		},
		[]game.Treasure{{Name: "t1", Origin: game.Cell{Row: 1, Col: 1}, Reward: 3}},
		nil)

	move := NewGreedy().FindMove(sim, game.PlayerA)

	require.Equal(t, game.Collect("a1", "t1"), move[0])
	require.Equal(t, game.Wait("a2"), move[1], "Second ship has nothing left to fetch")
	require.True(t, sim.Legal(move, game.PlayerA))
}

func TestGreedyMovesTowardBestTreasure(t *testing.T) {
	sim := reef(t,
		[]game.Ship{{Name: "a1", Owner: game.PlayerA, Location: game.Cell{Row: 2, Col: 0}}},
		[]game.Treasure{
			{Name: "t1", Origin: game.Cell{Row: 1, Col: 1}, Reward: 1},
			{Name: "t2", Origin: game.Cell{Row: 0, Col: 2}, Reward: 9},
		},
		nil)

	move := NewGreedy().FindMove(sim, game.PlayerA)

	require.Equal(t, game.JointAction{game.Sail("a1", game.Cell{Row: 2, Col: 1})}, move, "Should head for the richer treasure")
}

func TestGreedyWaitsForMarine(t *testing.T) {
	sim := reef(t,
		[]game.Ship{{Name: "a1", Owner: game.PlayerA, Location: game.Cell{Row: 0, Col: 1}, MaxCapacity: 1}},
		[]game.Treasure{{Name: "t1", Origin: game.Cell{Row: 1, Col: 1}, Reward: 4, Carrier: "a1"}},
		[]game.Marine{{Name: "m1", Path: []game.Cell{{Row: 0, Col: 0}}}})

	move := NewGreedy().FindMove(sim, game.PlayerA)

	require.Equal(t, game.JointAction{game.Wait("a1")}, move, "Should not sail into a marine")
}

func TestGreedyRetries(t *testing.T) {
	ships := []game.Ship{
		{Name: "a1", Owner: game.PlayerA, Location: game.Cell{Row: 0, Col: 1}},
		{Name: "a2", Owner: game.PlayerA, Location: game.Cell{Row: 1, Col: 0}},
	}
	treasures := []game.Treasure{
		{Name: "t1", Origin: game.Cell{Row: 1, Col: 1}, Reward: 3},
		{Name: "t2", Origin: game.Cell{Row: 0, Col: 2}, Reward: 1},
	}

	t.Run("weakens the move until it is accepted", func(t *testing.T) {
		model := picky{
			Simulator: reef(t, ships, treasures, nil),
			allow: func(ja game.JointAction) bool {
				for _, a := range ja {
					if a.Type == game.SailAction {
						return false
					}
				}
				return true
			},
		}

		move := NewGreedy().FindMove(model, game.PlayerA)

		require.Equal(t, game.JointAction{game.Collect("a1", "t1"), game.Wait("a2")}, move)
	})

	t.Run("falls back to all wait", func(t *testing.T) {
		model := picky{
			Simulator: reef(t, ships, treasures, nil),
			allow:     func(game.JointAction) bool { return false },
		}

		move := NewGreedy().FindMove(model, game.PlayerA)

		require.Equal(t, game.AllWait(model.Ships(game.PlayerA)), move)
	})
}
