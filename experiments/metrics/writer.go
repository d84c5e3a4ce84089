package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// AgentConfig describes one contestant of an experiment.
type AgentConfig struct {
	ID          int
	Kind        string // "uct", "sampling", "greedy" or "random"
	Goroutines  int
	Duration    time.Duration
	Episodes    int
	Exploration float64
	Temperature float64 // sampling only
	Seed        uint64
}

type GameRecord struct {
	Index  int
	Agent1 int // AgentConfig.ID seated as the matchup's first agent
	Agent2 int
	GameMetric
}

type MoveRecord struct {
	Game string // GameMetric.ID
	MoveMetric
}

type agentConfigRow struct {
	ID          int64   `parquet:"id"`
	Kind        string  `parquet:"kind,dict"`
	Goroutines  int64   `parquet:"goroutines"`
	DurationMs  int64   `parquet:"duration_ms"`
	Episodes    int64   `parquet:"episodes"`
	Exploration float64 `parquet:"exploration"`
	Temperature float64 `parquet:"temperature"`
	Seed        int64   `parquet:"seed"`
}

type gameRecordRow struct {
	GameID         string  `parquet:"game_id"`
	Index          int64   `parquet:"index"`
	Agent1         int64   `parquet:"agent1"`
	Agent2         int64   `parquet:"agent2"`
	StartingPlayer string  `parquet:"starting_player,dict"`
	Winner         string  `parquet:"winner,dict"`
	ScoreA         float64 `parquet:"score_a"`
	ScoreB         float64 `parquet:"score_b"`
	StartUnixMs    int64   `parquet:"start_unix_ms"`
	EndUnixMs      int64   `parquet:"end_unix_ms"`
	DurationMs     int64   `parquet:"duration_ms"`
	TotalMoves     int64   `parquet:"total_moves"`
}

type moveRecordRow struct {
	GameID        string `parquet:"game_id,dict"`
	Step          int64  `parquet:"step"`
	Player        string `parquet:"player,dict"`
	Action        string `parquet:"action"`
	Legal         bool   `parquet:"legal"`
	DurationUs    int64  `parquet:"duration_us"`
	Episodes      int64  `parquet:"episodes"`
	Rollouts      int64  `parquet:"rollouts"`
	Nodes         int64  `parquet:"nodes"`
	StaleFiltered int64  `parquet:"stale_filtered"`
	Reexpansions  int64  `parquet:"reexpansions"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> and writes records into it.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([]agentConfigRow, len(configs))
	for i, c := range configs {
		rows[i] = agentConfigRow{
			ID:          int64(c.ID),
			Kind:        c.Kind,
			Goroutines:  int64(c.Goroutines),
			DurationMs:  c.Duration.Milliseconds(),
			Episodes:    int64(c.Episodes),
			Exploration: c.Exploration,
			Temperature: c.Temperature,
			Seed:        int64(c.Seed),
		}
	}
	if err := writeRows(filepath.Join(w.baseDir, "agent_configs.parquet"), rows); err != nil {
		return fmt.Errorf("failed to write agent configs: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([]gameRecordRow, len(records))
	for i, r := range records {
		rows[i] = gameRecordRow{
			GameID:         r.ID,
			Index:          int64(r.Index),
			Agent1:         int64(r.Agent1),
			Agent2:         int64(r.Agent2),
			StartingPlayer: r.StartingPlayer,
			Winner:         r.Winner,
			ScoreA:         r.ScoreA,
			ScoreB:         r.ScoreB,
			StartUnixMs:    r.StartTime.UnixMilli(),
			EndUnixMs:      r.EndTime.UnixMilli(),
			DurationMs:     r.Duration.Milliseconds(),
			TotalMoves:     int64(r.TotalMoves),
		}
	}
	if err := writeRows(filepath.Join(w.baseDir, "game_records.parquet"), rows); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([]moveRecordRow, len(records))
	for i, r := range records {
		rows[i] = moveRecordRow{
			GameID:        r.Game,
			Step:          int64(r.Step),
			Player:        r.Player,
			Action:        r.Action,
			Legal:         r.Legal,
			DurationUs:    r.Duration.Microseconds(),
			Episodes:      int64(r.Episodes),
			Rollouts:      int64(r.Rollouts),
			Nodes:         int64(r.Nodes),
			StaleFiltered: int64(r.StaleFiltered),
			Reexpansions:  int64(r.Reexpansions),
		}
	}
	if err := writeRows(filepath.Join(w.baseDir, "move_records.parquet"), rows); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	return nil
}

func writeRows[T any](path string, rows []T) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	pw := parquet.NewGenericWriter[T](f, parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}))
	if _, err := pw.Write(rows); err != nil {
		return err
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return f.Sync()
}

// ReadGameRecords loads the game records written to dir.
func ReadGameRecords(dir string) ([]GameRecord, error) {
	rows, err := parquet.ReadFile[gameRecordRow](filepath.Join(dir, "game_records.parquet"))
	if err != nil {
		return nil, fmt.Errorf("failed to read game records: %w", err)
	}
	records := make([]GameRecord, len(rows))
	for i, r := range rows {
		records[i] = GameRecord{
			Index:  int(r.Index),
			Agent1: int(r.Agent1),
			Agent2: int(r.Agent2),
			GameMetric: GameMetric{
				ID:             r.GameID,
				StartingPlayer: r.StartingPlayer,
				Winner:         r.Winner,
				ScoreA:         r.ScoreA,
				ScoreB:         r.ScoreB,
				StartTime:      time.UnixMilli(r.StartUnixMs),
				EndTime:        time.UnixMilli(r.EndUnixMs),
				Duration:       time.Duration(r.DurationMs) * time.Millisecond,
				TotalMoves:     int(r.TotalMoves),
			},
		}
	}
	return records, nil
}

// ReadMoveRecords loads the move records written to dir.
func ReadMoveRecords(dir string) ([]MoveRecord, error) {
	rows, err := parquet.ReadFile[moveRecordRow](filepath.Join(dir, "move_records.parquet"))
	if err != nil {
		return nil, fmt.Errorf("failed to read move records: %w", err)
	}
	records := make([]MoveRecord, len(rows))
	for i, r := range rows {
		records[i] = MoveRecord{
			Game: r.GameID,
			MoveMetric: MoveMetric{
				Step:   int(r.Step),
				Player: r.Player,
				Action: r.Action,
				Legal:  r.Legal,
				SearchMetric: SearchMetric{
					Duration:      time.Duration(r.DurationUs) * time.Microsecond,
					Episodes:      int(r.Episodes),
					Rollouts:      int(r.Rollouts),
					Nodes:         int(r.Nodes),
					StaleFiltered: int(r.StaleFiltered),
					Reexpansions:  int(r.Reexpansions),
				},
			},
		}
	}
	return records, nil
}
