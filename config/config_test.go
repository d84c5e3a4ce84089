package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pirates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	require.Equal(t, Episodes, cfg.Search.Episodes)
	require.Equal(t, 1, cfg.Search.Goroutines, "Search should be sequential by default")
	require.Equal(t, 2.0, cfg.Search.Exploration)
	require.Equal(t, zerolog.InfoLevel, cfg.LogLevel())

	m, err := cfg.LoadMap()
	require.NoError(t, err)
	require.Equal(t, "archipelago", m.Name)
}

func TestLoad(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
seed: 7
log:
  level: debug
search:
  episodes: 0
  duration: 250ms
  goroutines: 4
arena:
  games: 2
`)
		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, uint64(7), cfg.Seed)
		require.Equal(t, zerolog.DebugLevel, cfg.LogLevel())
		require.Equal(t, 250*time.Millisecond, cfg.Search.Duration)
		require.Zero(t, cfg.Search.Episodes)
		require.Equal(t, 4, cfg.Search.Goroutines)
		require.Equal(t, 2.0, cfg.Search.Exploration, "Missing fields should keep defaults")
		require.Equal(t, 2, cfg.Arena.Games)
		require.Equal(t, "baseline", cfg.Arena.Experiment)
		require.Len(t, cfg.SearchOptions(), 6)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, "search:\n  episodes: 0\n  goroutines: 0\nlog:\n  level: loud\n"))

		require.Error(t, err)
		require.Contains(t, err.Error(), "goroutines")
		require.Contains(t, err.Error(), "log.level")
		require.Contains(t, err.Error(), "episodes or duration")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "search: [\n"))
		require.Error(t, err)
	})
}
