package engine

import (
	"context"
	"fmt"
	"pirates/agent"
	"pirates/experiments/metrics"
	"pirates/game"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Option func(e *localEngine)

// WithStartingPlayer lets p move first. PlayerA starts by default.
func WithStartingPlayer(p game.Player) Option {
	return func(e *localEngine) {
		e.starting = p
	}
}

func WithGameID(id string) Option {
	return func(e *localEngine) {
		if id != "" {
			e.id = id
		}
	}
}

// WithObserver registers fn to be called after every move.
func WithObserver(fn func(Update)) Option {
	return func(e *localEngine) {
		if fn != nil {
			e.observers = append(e.observers, fn)
		}
	}
}

type localEngine struct {
	id        string
	model     game.Model
	agents    [2]agent.Agent
	starting  game.Player
	observers []func(Update)
}

// LocalEngine plays agents against each other on model, which it owns and
// mutates. agents[p] moves for player p.
func LocalEngine(model game.Model, agents [2]agent.Agent, options ...Option) Engine {
	for _, a := range agents {
		if a == nil {
			panic("both agents are required")
		}
	}
	e := &localEngine{
		id:       uuid.NewString(),
		model:    model,
		agents:   agents,
		starting: game.PlayerA,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *localEngine) Run(ctx context.Context) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:             e.id,
		StartingPlayer: e.starting.String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Str("game", e.id).Msgf("player %s is starting", e.starting)

	player := e.starting
	for step := 1; e.model.RemainingTurns() > 0; step++ {
		if err := ctx.Err(); err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("game %s interrupted at step %d: %w", e.id, step, err)
		}

		move, searchMetric := e.agents[player].FindMove(ctx, e.model.Clone(), player)
		legal := e.model.Legal(move, player)
		if !legal {
			log.Warn().Str("game", e.id).Str("player", player.String()).Int("step", step).
				Msgf("illegal move %s replaced by all-wait", move)
			move = game.AllWait(e.model.Ships(player))
		}
		if err := e.model.Apply(move, player); err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("game %s step %d: %w", e.id, step, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.String(),
			Action:       move.String(),
			Legal:        legal,
			SearchMetric: searchMetric,
		})
		e.publish(Update{
			Step:   step,
			Player: player,
			Move:   move,
			Legal:  legal,
			Score:  e.model.Score(),
			Model:  e.model.Clone(),
		})

		player = player.Opponent()
	}

	score := e.model.Score()
	winner := ""
	if p, ok := score.Winner(); ok {
		winner = p.String()
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Winner = winner
	gameMetric.ScoreA = score[game.PlayerA]
	gameMetric.ScoreB = score[game.PlayerB]
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Str("game", e.id).Float64("scoreA", gameMetric.ScoreA).Float64("scoreB", gameMetric.ScoreB).
		Msgf("game over after %d moves, winner %q", gameMetric.TotalMoves, winner)
	return winner, gameMetric, moveMetrics, nil
}

func (e *localEngine) publish(u Update) {
	for _, fn := range e.observers {
		fn(u)
	}
}
