package experiments

import (
	"context"
	"fmt"
	"pirates/agent"
	"pirates/engine"
	"pirates/experiments/metrics"
	"pirates/game"
	"pirates/player"
	"pirates/searcher"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

const (
	NumGames   = 30 // Per match up
	TimeBudget = 10 * time.Millisecond
)

// Experiment plays every match up NumGames times and records the results.
type Experiment struct {
	Name     string
	Root     string // output directory, results go to Root/Name/<timestamp>
	Map      *game.Map
	Rules    game.Rules
	Configs  []metrics.AgentConfig
	MatchUps [][2]metrics.AgentConfig
	Games    int    // per match up, NumGames when zero
	Parallel int    // concurrent games, GOMAXPROCS when zero
	Seed     uint64 // derives every simulator and agent seed
}

type gameResult struct {
	record metrics.GameRecord
	moves  []metrics.MoveMetric
}

// Run plays all games and writes agent configs, game records and move
// records. It returns the directory the records were written to.
func (x Experiment) Run(ctx context.Context) (string, error) {
	if x.Map == nil {
		x.Map = game.CreateMap()
	}
	if x.Rules == nil {
		x.Rules = game.NewStandardRules()
	}
	if x.Games <= 0 {
		x.Games = NumGames
	}
	if x.Parallel <= 0 {
		x.Parallel = runtime.GOMAXPROCS(0)
	}

	log.Info().Msgf("starting %s experiment...", x.Name)

	// Seeds are drawn up front so results do not depend on scheduling
	rng := rand.New(rand.NewSource(x.Seed))
	total := len(x.MatchUps) * x.Games
	seeds := make([][3]uint64, total)
	for i := range seeds {
		seeds[i] = [3]uint64{rng.Uint64(), rng.Uint64(), rng.Uint64()}
	}

	results := make([]gameResult, total)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(x.Parallel)
	for mi, matchup := range x.MatchUps {
		for i := 0; i < x.Games; i++ {
			index := mi*x.Games + i
			g.Go(func() error {
				// Alternate the starting seat between games of a match up
				starting := game.Players[i%2]
				result, err := x.runGame(ctx, matchup, starting, seeds[index])
				if err != nil {
					return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
				}
				result.record.Index = index
				results[index] = result
				log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %q",
					mi+1, len(x.MatchUps), i+1, x.Games, result.record.Winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	log.Info().Msgf("completed %s experiment", x.Name)

	gameRecords := make([]metrics.GameRecord, 0, total)
	moveRecords := []metrics.MoveRecord{}
	for _, r := range results {
		gameRecords = append(gameRecords, r.record)
		for _, mm := range r.moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: r.record.ID, MoveMetric: mm})
		}
	}

	return x.write(gameRecords, moveRecords)
}

func (x Experiment) write(gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(x.Root, x.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(x.Configs); err != nil {
		return "", err
	}
	log.Info().Msg("stored agent configs")
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}

// runGame plays one game with matchup[0] as PlayerA and matchup[1] as PlayerB.
func (x Experiment) runGame(ctx context.Context, matchup [2]metrics.AgentConfig, starting game.Player, seeds [3]uint64) (gameResult, error) {
	sim, err := game.NewSimulator(x.Map, x.Rules, seeds[0])
	if err != nil {
		return gameResult{}, err
	}
	agents := [2]agent.Agent{}
	for i, config := range matchup {
		agents[i], err = NewAgent(config, seeds[i+1])
		if err != nil {
			return gameResult{}, err
		}
	}

	e := engine.LocalEngine(sim, agents, engine.WithStartingPlayer(starting))
	_, gameMetric, moveMetrics, err := e.Run(ctx)
	if err != nil {
		return gameResult{}, err
	}

	return gameResult{
		record: metrics.GameRecord{
			Agent1:     matchup[0].ID,
			Agent2:     matchup[1].ID,
			GameMetric: gameMetric,
		},
		moves: moveMetrics,
	}, nil
}

// NewAgent builds the agent described by config. A config seed overrides
// seed.
func NewAgent(config metrics.AgentConfig, seed uint64) (agent.Agent, error) {
	if config.Seed != 0 {
		seed = config.Seed
	}
	switch config.Kind {
	case "", "uct":
		return agent.NewUCTAgent(CreateMCTS(config, seed)), nil
	case "sampling":
		temperature := config.Temperature
		if temperature <= 0 {
			temperature = 1
		}
		return agent.NewSamplingAgent(CreateMCTS(config, seed), temperature, seed+1), nil
	case "greedy":
		return agent.NewGreedyAgent(player.NewGreedy()), nil
	case "random":
		return agent.NewRandomAgent(seed), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}

func CreateMCTS(config metrics.AgentConfig, seed uint64) *searcher.MCTS {
	options := []searcher.Option{searcher.WithSeed(seed)}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Episodes <= 0 && config.Duration <= 0 {
		options = append(options, searcher.WithDuration(TimeBudget))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(options...)
}
