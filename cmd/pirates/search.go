package main

import (
	"fmt"
	"os"
	"pirates/game"
	"pirates/searcher"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

var (
	searchCmd = &cobra.Command{
		Use:   "search",
		Short: "Run one search from the start position and print the root statistics",
		Args:  cobra.NoArgs,
		RunE:  runSearch,
	}
	searchPlayer string
	topN         int
)

func init() {
	searchCmd.Flags().StringVar(&searchPlayer, "player", "A", "Player to move")
	searchCmd.Flags().IntVar(&topN, "top", 10, "Number of root moves to print")
	addSearchFlags(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	m, err := cfg.LoadMap()
	if err != nil {
		return err
	}
	p, err := game.ParsePlayer(searchPlayer)
	if err != nil {
		return err
	}
	sim, err := game.NewSimulator(m, game.NewStandardRules(), cfg.Seed)
	if err != nil {
		return err
	}

	mcts := searcher.NewMCTS(cfg.SearchOptions()...)
	move, metric := mcts.FindMove(cmd.Context(), sim, p)

	stats := mcts.RootStats()
	slices.SortStableFunc(stats, func(a, b searcher.ChildStat) int {
		return b.Visits - a.Visits
	})
	if topN > 0 && len(stats) > topN {
		stats = stats[:topN]
	}

	fmt.Fprintf(os.Stdout, "%s: %d episodes, %d nodes, %d stale children skipped, %d re-expansions in %s\n",
		mcts, metric.Episodes, metric.Nodes, metric.StaleFiltered, metric.Reexpansions, metric.Duration)
	for _, s := range stats {
		ratio := 0.0
		if s.Visits > 0 {
			ratio = float64(s.Wins) / float64(s.Visits)
		}
		fmt.Fprintf(os.Stdout, "%8d visits %6.3f  %s\n", s.Visits, ratio, s.Action)
	}
	fmt.Fprintf(os.Stdout, "selected %s\n", move)
	return nil
}
