// Package config holds the settings shared by the pirates commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"pirates/game"
	"pirates/searcher"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	Episodes   = 150 // Default search episodes per move
	Goroutines = 1
	NumGames   = 10 // Default arena games per match up
)

type Config struct {
	// Map is a YAML map file. The built-in archipelago is used when empty.
	Map    string       `yaml:"map"`
	Seed   uint64       `yaml:"seed"`
	Log    LogConfig    `yaml:"log"`
	Search SearchConfig `yaml:"search"`
	Arena  ArenaConfig  `yaml:"arena"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"` // human readable output instead of JSON
}

type SearchConfig struct {
	Episodes        int           `yaml:"episodes"`
	Duration        time.Duration `yaml:"duration"`
	Goroutines      int           `yaml:"goroutines"`
	Exploration     float64       `yaml:"exploration"`
	VisitedDecision bool          `yaml:"visited_decision"`
}

type ArenaConfig struct {
	Experiment string `yaml:"experiment"`
	Output     string `yaml:"output"`
	Games      int    `yaml:"games"`
	Parallel   int    `yaml:"parallel"`
}

func Default() Config {
	return Config{
		Log: LogConfig{
			Level:   "info",
			Console: true,
		},
		Search: SearchConfig{
			Episodes:    Episodes,
			Goroutines:  Goroutines,
			Exploration: searcher.CSquared,
		},
		Arena: ArenaConfig{
			Experiment: "baseline",
			Output:     "results",
			Games:      NumGames,
		},
	}
}

// Load reads path over the defaults. Fields missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Search.Episodes <= 0 && c.Search.Duration <= 0 {
		errs = append(errs, errors.New("search: episodes or duration must be positive"))
	}
	if c.Search.Episodes < 0 || c.Search.Duration < 0 {
		errs = append(errs, errors.New("search: episodes and duration cannot be negative"))
	}
	if c.Search.Goroutines < 1 {
		errs = append(errs, fmt.Errorf("search.goroutines must be at least 1, got %d", c.Search.Goroutines))
	}
	if c.Search.Exploration < 0 {
		errs = append(errs, fmt.Errorf("search.exploration cannot be negative, got %v", c.Search.Exploration))
	}
	if c.Arena.Games < 0 || c.Arena.Parallel < 0 {
		errs = append(errs, errors.New("arena: games and parallel cannot be negative"))
	}
	return errors.Join(errs...)
}

// SearchOptions translates the search settings into searcher options.
func (c Config) SearchOptions() []searcher.Option {
	options := []searcher.Option{
		searcher.WithEpisodes(c.Search.Episodes),
		searcher.WithDuration(c.Search.Duration),
		searcher.WithGoroutines(c.Search.Goroutines),
		searcher.WithExploration(c.Search.Exploration),
		searcher.WithSeed(c.Seed),
		searcher.WithMetrics(),
	}
	if c.Search.VisitedDecision {
		options = append(options, searcher.WithVisitedDecision())
	}
	return options
}

// LoadMap returns the configured map.
func (c Config) LoadMap() (*game.Map, error) {
	if c.Map == "" {
		return game.CreateMap(), nil
	}
	return game.LoadMap(c.Map)
}

func (c Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
