package metrics

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "smoke")
	require.NoError(t, err)

	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
		{ID: 1, Kind: "uct", Goroutines: 1, Episodes: 50, Exploration: 2, Seed: 9},
		{ID: 2, Kind: "greedy"},
	}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		Index:  0,
		Agent1: 1,
		Agent2: 2,
		GameMetric: GameMetric{
			ID:             "g-1",
			StartingPlayer: "A",
			Winner:         "B",
			ScoreA:         2,
			ScoreB:         7,
			StartTime:      start,
			EndTime:        start.Add(3 * time.Second),
			Duration:       3 * time.Second,
			TotalMoves:     20,
		},
	}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
		Game: "g-1",
		MoveMetric: MoveMetric{
			Step:         1,
			Player:       "A",
			Action:       "[wait(a1)]",
			Legal:        true,
			SearchMetric: SearchMetric{Episodes: 50, Rollouts: 48, Nodes: 300},
		},
	}}))

	configs, err := parquet.ReadFile[agentConfigRow](filepath.Join(w.Dir(), "agent_configs.parquet"))
	require.NoError(t, err)
	require.Len(t, configs, 2)
	require.Equal(t, "uct", configs[0].Kind)
	require.Equal(t, int64(9), configs[0].Seed)

	games, err := parquet.ReadFile[gameRecordRow](filepath.Join(w.Dir(), "game_records.parquet"))
	require.NoError(t, err)
	require.Len(t, games, 1)
	require.Equal(t, "B", games[0].Winner)
	require.Equal(t, int64(3000), games[0].DurationMs)
	require.Equal(t, start.UnixMilli(), games[0].StartUnixMs)

	moves, err := parquet.ReadFile[moveRecordRow](filepath.Join(w.Dir(), "move_records.parquet"))
	require.NoError(t, err)
	require.Len(t, moves, 1)
	require.Equal(t, int64(48), moves[0].Rollouts)
	require.True(t, moves[0].Legal)
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(2)
	c.AddEpisode()
	c.AddEpisode()
	c.AddRollout()
	c.AddNodes(5)
	c.AddStaleFiltered(3)
	c.AddReexpansion()

	got := c.Complete()
	require.Equal(t, 2, got.Goroutines)
	require.Equal(t, 2, got.Episodes)
	require.Equal(t, 1, got.Rollouts)
	require.Equal(t, 5, got.Nodes)
	require.Equal(t, 3, got.StaleFiltered)
	require.Equal(t, 1, got.Reexpansions)

	c.Start(1)
	c.AddEpisode()
	require.Equal(t, 1, c.Complete().Episodes, "Start should reset the counters")

	require.Equal(t, SearchMetric{}, NewDummyCollector().Complete(), "Dummy collector should record nothing")
}
