package searcher

import (
	"pirates/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJointActions(t *testing.T) {
	t.Run("cartesian product without double collects", func(t *testing.T) {
		sim := shoal(t, 10,
			[]game.Ship{
				{Name: "a1", Owner: game.PlayerA, Location: game.Cell{Row: 0, Col: 1}},
				{Name: "a2", Owner: game.PlayerA, Location: game.Cell{Row: 1, Col: 0}},
			},
			[]game.Treasure{{Name: "t1", Origin: game.Cell{Row: 1, Col: 1}, Reward: 2}})

		actions := JointActions(sim, game.PlayerA)

		require.Len(t, actions, 8, "3x3 combinations minus both ships collecting t1")
		keys := make(map[string]bool)
		for _, ja := range actions {
			require.False(t, keys[ja.Key()], "Joint action %s is duplicated", ja)
			keys[ja.Key()] = true
			require.True(t, sim.Legal(ja, game.PlayerA), "Enumerated %s should be legal", ja)
			require.LessOrEqual(t, len(ja.Collects()), 1)
		}
	})

	t.Run("expansion yields one distinct child per joint action", func(t *testing.T) {
		sim := shoal(t, 10,
			[]game.Ship{
				{Name: "a1", Owner: game.PlayerA, Location: game.Cell{Row: 0, Col: 0}},
				{Name: "a2", Owner: game.PlayerA, Location: game.Cell{Row: 0, Col: 1}},
			}, nil)

		actions := JointActions(sim, game.PlayerA)
		root := newRoot(game.PlayerA)
		root.expand(actions)

		require.Len(t, root.Children(), len(actions))
		keys := make(map[string]bool)
		for _, child := range root.Children() {
			keys[child.Action().Key()] = true
		}
		require.Len(t, keys, len(actions))
	})

	t.Run("plunder is offered against a co-located enemy", func(t *testing.T) {
		sim := shoal(t, 10,
			[]game.Ship{
				{Name: "a1", Owner: game.PlayerA, Location: game.Cell{Row: 0, Col: 1}},
				{Name: "b1", Owner: game.PlayerB, Location: game.Cell{Row: 0, Col: 1}},
			},
			[]game.Treasure{{Name: "t1", Origin: game.Cell{Row: 1, Col: 1}, Reward: 2, Carrier: "b1"}})

		ship, _ := sim.Ship("a1")
		require.Contains(t, ShipActions(sim, ship), game.Plunder("a1", "b1"))
	})

	t.Run("deposit only at base", func(t *testing.T) {
		sim := shoal(t, 10,
			[]game.Ship{
				{Name: "a1", Owner: game.PlayerA, Location: game.Cell{Row: 0, Col: 0}},
				{Name: "a2", Owner: game.PlayerA, Location: game.Cell{Row: 0, Col: 1}},
			},
			[]game.Treasure{
				{Name: "t1", Origin: game.Cell{Row: 1, Col: 1}, Reward: 2, Carrier: "a1"},
			})

		atBase, _ := sim.Ship("a1")
		require.Contains(t, ShipActions(sim, atBase), game.Deposit("a1", "t1"))
		require.Equal(t, game.Wait("a1"), ShipActions(sim, atBase)[len(ShipActions(sim, atBase))-1], "Wait should always be offered last")

		away, _ := sim.Ship("a2")
		for _, a := range ShipActions(sim, away) {
			require.NotEqual(t, game.DepositAction, a.Type)
		}
	})

	t.Run("no ships", func(t *testing.T) {
		sim := shoal(t, 10, []game.Ship{{Name: "a1", Owner: game.PlayerA}}, nil)

		actions := JointActions(sim, game.PlayerB)
		require.Len(t, actions, 1, "A player without ships has a single empty joint action")
		require.Empty(t, actions[0])
	})
}
