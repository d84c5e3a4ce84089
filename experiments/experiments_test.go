package experiments

import (
	"context"
	"pirates/experiments/metrics"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunExperiment(t *testing.T) {
	uct := metrics.AgentConfig{ID: 1, Kind: "uct", Episodes: 5}
	greedy := metrics.AgentConfig{ID: 2, Kind: "greedy"}
	random := metrics.AgentConfig{ID: 3, Kind: "random"}
	x := Experiment{
		Name:     "smoke",
		Root:     t.TempDir(),
		Configs:  []metrics.AgentConfig{uct, greedy, random},
		MatchUps: [][2]metrics.AgentConfig{{uct, greedy}, {greedy, random}},
		Games:    2,
		Parallel: 2,
		Seed:     1,
	}

	dir, err := x.Run(context.Background())
	require.NoError(t, err)

	games, err := metrics.ReadGameRecords(dir)
	require.NoError(t, err)
	require.Len(t, games, 4)
	for i, g := range games {
		require.Equal(t, i, g.Index, "Records should keep game order")
		require.NotEmpty(t, g.ID)
		require.Equal(t, 40, g.TotalMoves)
	}
	require.Equal(t, "A", games[0].StartingPlayer)
	require.Equal(t, "B", games[1].StartingPlayer, "Starting seat should alternate")
	require.Equal(t, 2, games[2].Agent1)
	require.Equal(t, 3, games[2].Agent2)

	moves, err := metrics.ReadMoveRecords(dir)
	require.NoError(t, err)
	require.Len(t, moves, 4*40)
	require.Equal(t, games[0].ID, moves[0].Game)
	for _, m := range moves {
		require.True(t, m.Legal)
	}
}

func TestNewAgent(t *testing.T) {
	for _, kind := range []string{"", "uct", "sampling", "greedy", "random"} {
		a, err := NewAgent(metrics.AgentConfig{Kind: kind, Episodes: 3}, 1)
		require.NoError(t, err, kind)
		require.NotNil(t, a)
	}

	_, err := NewAgent(metrics.AgentConfig{Kind: "oracle"}, 1)
	require.Error(t, err)
}

func TestPresets(t *testing.T) {
	require.Equal(t, []string{"baseline", "exploration", "parallelization_to_strength", "parallelization_to_throughput"}, PresetNames())

	for _, name := range PresetNames() {
		x, ok := Preset(name)
		require.True(t, ok)
		require.Equal(t, name, x.Name)
		require.NotEmpty(t, x.MatchUps)
		ids := make(map[int]bool)
		for _, c := range x.Configs {
			ids[c.ID] = true
		}
		for _, m := range x.MatchUps {
			require.True(t, ids[m[0].ID] && ids[m[1].ID], "%s matchups should only use listed configs", name)
		}
	}

	_, ok := Preset("missing")
	require.False(t, ok)
}
