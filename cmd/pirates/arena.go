package main

import (
	"fmt"
	"os"
	"pirates/experiments"
	"pirates/experiments/metrics"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var arenaCmd = &cobra.Command{
	Use:   "arena [experiment]",
	Short: "Run an experiment and write parquet records",
	Long: `Plays every match up of a preset experiment and writes agent configs, game records and
move records as parquet files. Presets: ` + strings.Join(experiments.PresetNames(), ", ") + `.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runArena,
}

func init() {
	arenaCmd.Flags().Int("games", 0, "Games per match up (config arena.games when zero)")
	arenaCmd.Flags().Int("parallel", 0, "Concurrent games (config arena.parallel when zero)")
	arenaCmd.Flags().String("output", "", "Output root directory (config arena.output when empty)")
}

func runArena(cmd *cobra.Command, args []string) error {
	name := cfg.Arena.Experiment
	if len(args) == 1 {
		name = args[0]
	}
	x, ok := experiments.Preset(name)
	if !ok {
		return fmt.Errorf("unknown experiment %q, want one of %s", name, strings.Join(experiments.PresetNames(), ", "))
	}

	m, err := cfg.LoadMap()
	if err != nil {
		return err
	}
	x.Map = m
	x.Seed = cfg.Seed
	x.Root = cfg.Arena.Output
	x.Games = cfg.Arena.Games
	x.Parallel = cfg.Arena.Parallel
	if v, _ := cmd.Flags().GetInt("games"); v > 0 {
		x.Games = v
	}
	if v, _ := cmd.Flags().GetInt("parallel"); v > 0 {
		x.Parallel = v
	}
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		x.Root = v
	}

	dir, err := x.Run(cmd.Context())
	if err != nil {
		return err
	}
	log.Info().Str("dir", dir).Msg("records written")

	records, err := metrics.ReadGameRecords(dir)
	if err != nil {
		return err
	}
	printStandings(records)
	return nil
}

type standing struct {
	agent1, agent2     int
	wins1, wins2, draw int
}

// printStandings tallies wins per match up. Agent1 always plays A.
func printStandings(records []metrics.GameRecord) {
	var order []string
	table := make(map[string]*standing)
	for _, r := range records {
		key := fmt.Sprintf("%d-%d", r.Agent1, r.Agent2)
		s, ok := table[key]
		if !ok {
			s = &standing{agent1: r.Agent1, agent2: r.Agent2}
			table[key] = s
			order = append(order, key)
		}
		switch r.Winner {
		case "A":
			s.wins1++
		case "B":
			s.wins2++
		default:
			s.draw++
		}
	}
	for _, key := range order {
		s := table[key]
		fmt.Fprintf(os.Stdout, "agent %d vs agent %d: %d - %d (%d draws)\n", s.agent1, s.agent2, s.wins1, s.wins2, s.draw)
	}
}
