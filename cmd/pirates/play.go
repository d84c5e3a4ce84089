package main

import (
	"fmt"
	"os"
	"pirates/agent"
	"pirates/engine"
	"pirates/experiments"
	"pirates/experiments/metrics"
	"pirates/game"

	"github.com/spf13/cobra"
)

var (
	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Play one game between two agents",
		Long:  `Plays a full game on the configured map. Agent kinds are uct, sampling, greedy and random.`,
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}
	agentA    string
	agentB    string
	starting  string
	showBoard bool
)

func init() {
	playCmd.Flags().StringVar(&agentA, "agent-a", "uct", "Agent kind for player A")
	playCmd.Flags().StringVar(&agentB, "agent-b", "greedy", "Agent kind for player B")
	playCmd.Flags().StringVar(&starting, "start", "A", "Player moving first")
	playCmd.Flags().BoolVar(&showBoard, "board", false, "Print the board after every move")
	addSearchFlags(playCmd)
}

// agentConfig describes an agent of kind with the configured search budget.
func agentConfig(id int, kind string) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:          id,
		Kind:        kind,
		Goroutines:  cfg.Search.Goroutines,
		Duration:    cfg.Search.Duration,
		Episodes:    cfg.Search.Episodes,
		Exploration: cfg.Search.Exploration,
	}
}

func runPlay(cmd *cobra.Command, _ []string) error {
	m, err := cfg.LoadMap()
	if err != nil {
		return err
	}
	first, err := game.ParsePlayer(starting)
	if err != nil {
		return err
	}
	sim, err := game.NewSimulator(m, game.NewStandardRules(), cfg.Seed)
	if err != nil {
		return err
	}

	agents := [2]agent.Agent{}
	for i, kind := range []string{agentA, agentB} {
		agents[i], err = experiments.NewAgent(agentConfig(i+1, kind), cfg.Seed+uint64(i)+1)
		if err != nil {
			return err
		}
	}

	options := []engine.Option{engine.WithStartingPlayer(first)}
	b := newBoard(os.Stdout)
	if showBoard {
		fmt.Fprintln(os.Stdout, b.render(sim))
		options = append(options, engine.WithObserver(b.observe))
	}

	winner, gameMetric, _, err := engine.LocalEngine(sim, agents, options...).Run(cmd.Context())
	if err != nil {
		return err
	}
	if winner == "" {
		winner = "draw"
	}
	fmt.Fprintf(os.Stdout, "A (%s) %.0f : %.0f B (%s), winner %s after %d moves in %s\n",
		agentA, gameMetric.ScoreA, gameMetric.ScoreB, agentB, winner, gameMetric.TotalMoves, gameMetric.Duration)
	return nil
}
