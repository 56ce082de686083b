package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

type GameRecord struct {
	ID     int
	Config int // RunConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// gameRow is the parquet layout of a GameRecord.
type gameRow struct {
	ID              int32  `parquet:"id"`
	Config          int32  `parquet:"config"`
	GameID          string `parquet:"game_id"`
	Difficulty      string `parquet:"difficulty,dict"`
	Winner          string `parquet:"winner,dict"`
	StartTimeMs     int64  `parquet:"start_time_ms"`
	DurationNs      int64  `parquet:"duration_ns"`
	TotalMoves      int32  `parquet:"total_moves"`
	PlayerHazards   int32  `parquet:"player_hazards"`
	AIHazards       int32  `parquet:"ai_hazards"`
	IgnoredHazards  int32  `parquet:"ignored_hazards"`
	AdjustedRolls   int32  `parquet:"adjusted_rolls"`
	Overshoots      int32  `parquet:"overshoots"`
	ImmunityGranted bool   `parquet:"immunity_granted"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> to hold one experiment's output.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
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

func (w *Writer) WriteRunConfigs(configs []RunConfig) error {
	header := []string{"id", "difficulty", "size", "hazards", "boosts"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Difficulty,
			strconv.Itoa(config.Size),
			strconv.Itoa(config.Hazards),
			strconv.Itoa(config.Boosts),
		})
	}
	return w.writeCSV("run_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "config", "game_id", "difficulty", "winner", "start_time", "end_time", "duration",
		"total_moves", "player_hazards", "ai_hazards", "ignored_hazards", "adjusted_rolls", "overshoots", "immunity_granted"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Config),
			record.GameID,
			record.Difficulty,
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.PlayerHazards),
			strconv.Itoa(record.AIHazards),
			strconv.Itoa(record.IgnoredHazards),
			strconv.Itoa(record.AdjustedRolls),
			strconv.Itoa(record.Overshoots),
			strconv.FormatBool(record.ImmunityGranted),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "agent", "from", "to", "rolls", "adjusted", "hazards", "boosts", "power_ups"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Agent,
			strconv.Itoa(record.From),
			strconv.Itoa(record.To),
			strconv.Itoa(record.Rolls),
			strconv.FormatBool(record.Adjusted),
			strconv.Itoa(record.Hazards),
			strconv.Itoa(record.Boosts),
			strconv.Itoa(record.PowerUps),
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}

// WriteParquet stores game records as game_records.parquet for columnar analysis.
func (w *Writer) WriteParquet(records []GameRecord) error {
	rows := make([]gameRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, gameRow{
			ID:              int32(r.ID),
			Config:          int32(r.Config),
			GameID:          r.GameID,
			Difficulty:      r.Difficulty,
			Winner:          r.Winner,
			StartTimeMs:     r.StartTime.UnixMilli(),
			DurationNs:      int64(r.Duration),
			TotalMoves:      int32(r.TotalMoves),
			PlayerHazards:   int32(r.PlayerHazards),
			AIHazards:       int32(r.AIHazards),
			IgnoredHazards:  int32(r.IgnoredHazards),
			AdjustedRolls:   int32(r.AdjustedRolls),
			Overshoots:      int32(r.Overshoots),
			ImmunityGranted: r.ImmunityGranted,
		})
	}

	path := filepath.Join(w.baseDir, "game_records.parquet")
	err := parquet.WriteFile(path, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "snakes_game_record_v1"),
	)
	if err != nil {
		return fmt.Errorf("failed to write game records parquet: %w", err)
	}
	return nil
}

func (w *Writer) writeCSV(filename string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", filename, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", filename, err)
	}
	return nil
}
