package searcher

import (
	"pirates/game"
	"testing"

	"github.com/stretchr/testify/require"
)

// shoal is a 2x2 board with the base top-left and one treasure island.
//
//	B S
//	S I
func shoal(t *testing.T, turns int, ships []game.Ship, treasures []game.Treasure) *game.Simulator {
	t.Helper()
	m := &game.Map{
		Name:      "shoal",
		Grid:      [][]game.Terrain{[]game.Terrain("BS"), []game.Terrain("SI")},
		Base:      game.Cell{Row: 0, Col: 0},
		Turns:     turns,
		Ships:     ships,
		Treasures: treasures,
	}
	sim, err := game.NewSimulator(m, game.NewStandardRules(), 42)
	require.NoError(t, err)
	return sim
}

func waits(ships ...string) game.JointAction {
	ja := make(game.JointAction, len(ships))
	for i, s := range ships {
		ja[i] = game.Wait(s)
	}
	return ja
}

func TestNewRoot(t *testing.T) {
	root := newRoot(game.PlayerB)

	require.Equal(t, game.PlayerB, root.Player())
	require.Nil(t, root.Action(), "Root should have no action")
	require.Nil(t, root.Parent())
	require.Empty(t, root.Children())
	require.Zero(t, root.Visits())
	require.Zero(t, root.Wins())
}

func TestExpand(t *testing.T) {
	t.Run("one child per joint action with the player flipped", func(t *testing.T) {
		root := newRoot(game.PlayerA)
		actions := []game.JointAction{
			{game.Sail("a1", game.Cell{Row: 0, Col: 1})},
			waits("a1"),
		}
		root.expand(actions)

		require.Len(t, root.Children(), 2)
		for i, child := range root.Children() {
			require.Equal(t, game.PlayerB, child.Player(), "Children should belong to the opponent")
			require.Equal(t, actions[i], child.Action())
			require.Same(t, root, child.Parent())
		}
	})

	t.Run("expanding twice panics", func(t *testing.T) {
		root := newRoot(game.PlayerA)
		root.expand([]game.JointAction{waits("a1")})

		require.Panics(t, func() {
			root.expand([]game.JointAction{waits("a1")})
		}, "Should not duplicate children")
	})

	t.Run("extend only adds missing actions", func(t *testing.T) {
		root := newRoot(game.PlayerA)
		sail := game.JointAction{game.Sail("a1", game.Cell{Row: 0, Col: 1})}
		root.expand([]game.JointAction{waits("a1")})

		added := root.extend([]game.JointAction{waits("a1"), sail})

		require.Equal(t, 1, added)
		require.Len(t, root.Children(), 2)
		require.Equal(t, sail, root.Children()[1].Action())
	})
}

func TestBackup(t *testing.T) {
	t.Run("wins are credited to the mover", func(t *testing.T) {
		root := newRoot(game.PlayerA)
		root.expand([]game.JointAction{waits("a1")})
		child := root.Children()[0]
		child.expand([]game.JointAction{waits("b1")})
		grandChild := child.Children()[0]

		backup(grandChild, game.Score{3, 1})

		require.Equal(t, 1, root.Visits())
		require.Equal(t, 1, child.Visits())
		require.Equal(t, 1, grandChild.Visits())
		require.Equal(t, 1, child.Wins(), "A moved into child and won")
		require.Zero(t, grandChild.Wins(), "B moved into grandchild and lost")
	})

	t.Run("a draw is not a win", func(t *testing.T) {
		root := newRoot(game.PlayerA)
		root.expand([]game.JointAction{waits("a1")})

		backup(root.Children()[0], game.Score{2, 2})

		require.Zero(t, root.Children()[0].Wins())
		require.Equal(t, 1, root.Children()[0].Visits())
	})

	t.Run("wins never exceed visits", func(t *testing.T) {
		root := newRoot(game.PlayerA)
		root.expand([]game.JointAction{waits("a1")})
		child := root.Children()[0]
		child.expand([]game.JointAction{waits("b1")})
		leaf := child.Children()[0]

		scores := []game.Score{{1, 0}, {0, 1}, {1, 1}, {5, 2}, {0, 4}}
		for i := 0; i < 50; i++ {
			backup(leaf, scores[i%len(scores)])
			for _, n := range []*Node{root, child, leaf} {
				require.LessOrEqual(t, n.Wins(), n.Visits())
			}
		}
		require.Equal(t, 50, root.Visits())
	})
}
