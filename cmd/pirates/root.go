package main

import (
	"fmt"
	"os"
	"pirates/config"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:               "pirates",
		Short:             "Pirate treasure hunt played by UCT search and heuristic agents",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	cfg   config.Config
	flags struct {
		config      string
		logLevel    string
		mapPath     string
		seed        uint64
		episodes    int
		duration    time.Duration
		goroutines  int
		exploration float64
	}
)

func init() {
	defaults := config.Default()
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.config, "config", "", "YAML config file")
	pf.StringVar(&flags.logLevel, "log-level", defaults.Log.Level, "Log level (trace, debug, info, warn, error)")
	pf.StringVar(&flags.mapPath, "map", "", "YAML map file (built-in archipelago when empty)")
	pf.Uint64Var(&flags.seed, "seed", 0, "Seed for the simulator and the agents (0 picks one from the clock)")

	rootCmd.AddCommand(playCmd, arenaCmd, searchCmd)
}

// addSearchFlags adds the search budget flags to cmd.
func addSearchFlags(cmd *cobra.Command) {
	defaults := config.Default().Search
	cmd.Flags().IntVar(&flags.episodes, "episodes", defaults.Episodes, "Search episodes per move")
	cmd.Flags().DurationVar(&flags.duration, "duration", defaults.Duration, "Search time per move")
	cmd.Flags().IntVar(&flags.goroutines, "goroutines", defaults.Goroutines, "Number of root-parallel searches")
	cmd.Flags().Float64Var(&flags.exploration, "exploration", defaults.Exploration, "UCT exploration constant c^2")
}

// setup loads the config file and lets explicitly set flags override it.
func setup(cmd *cobra.Command, _ []string) error {
	cfg = config.Default()
	if flags.config != "" {
		loaded, err := config.Load(flags.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	set := cmd.Flags().Changed
	if set("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if set("map") {
		cfg.Map = flags.mapPath
	}
	if set("seed") {
		cfg.Seed = flags.seed
	}
	if set("episodes") {
		cfg.Search.Episodes = flags.episodes
	}
	if set("duration") {
		cfg.Search.Duration = flags.duration
	}
	if set("goroutines") {
		cfg.Search.Goroutines = flags.goroutines
	}
	if set("exploration") {
		cfg.Search.Exploration = flags.exploration
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	zerolog.SetGlobalLevel(cfg.LogLevel())
	if cfg.Log.Console {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}
	log.Debug().Uint64("seed", cfg.Seed).Msg("configured")
	return nil
}
