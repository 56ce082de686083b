package experiments

import (
	"fmt"
	"snakes/engine"
	"snakes/experiments/metrics"
	"snakes/game"
	"snakes/meta"

	"github.com/rs/zerolog/log"
)

var difficultyConfigs = []metrics.RunConfig{
	{ID: 1, Difficulty: string(game.Normal), Size: meta.BOARD_SIZE, Hazards: meta.NUM_HAZARDS, Boosts: meta.NUM_BOOSTS},
	{ID: 2, Difficulty: string(game.Hard), Size: meta.BOARD_SIZE, Hazards: meta.NUM_HAZARDS, Boosts: meta.NUM_BOOSTS},
	{ID: 3, Difficulty: string(game.Normal), Size: meta.BOARD_SIZE, Hazards: 2 * meta.NUM_HAZARDS, Boosts: meta.NUM_BOOSTS},
	{ID: 4, Difficulty: string(game.Hard), Size: meta.BOARD_SIZE, Hazards: 2 * meta.NUM_HAZARDS, Boosts: meta.NUM_BOOSTS},
}

type Options struct {
	OutDir   string
	NumGames int // Per config
	MaxTurns int
	Random   game.Random
}

// Result holds everything recorded during an experiment.
type Result struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

// Wins counts wins by agent for one config.
func (r Result) Wins(config int) map[string]int {
	wins := map[string]int{}
	for _, g := range r.Games {
		if g.Config == config {
			wins[g.Winner]++
		}
	}
	return wins
}

// RunDifficultyExperiment compares normal and hard AI on the same board
// parameters and stores the results under opts.OutDir.
func RunDifficultyExperiment(opts Options) (Result, error) {
	return runExperiment("difficulty", difficultyConfigs, opts)
}

func runExperiment(name string, configs []metrics.RunConfig, opts Options) (Result, error) {
	result, err := Play(configs, opts)
	if err != nil {
		return result, err
	}

	writer, err := metrics.NewWriter(opts.OutDir, name)
	if err != nil {
		return result, fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteRunConfigs(configs)
	if err != nil {
		return result, fmt.Errorf("failed to store run configs: %w", err)
	}
	log.Info().Msg("stored run configs")

	err = writer.WriteGameRecords(result.Games)
	if err != nil {
		return result, fmt.Errorf("failed to write game records: %w", err)
	}
	err = writer.WriteParquet(result.Games)
	if err != nil {
		return result, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(result.Moves)
	if err != nil {
		return result, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())

	return result, nil
}

// Play runs opts.NumGames autoplayed games for each config without writing anything.
func Play(configs []metrics.RunConfig, opts Options) (Result, error) {
	if opts.NumGames <= 0 {
		opts.NumGames = meta.EXPERIMENT_GAMES
	}
	if opts.MaxTurns <= 0 {
		opts.MaxTurns = meta.MAX_TURNS
	}

	count := 0
	result := Result{}

	for ci, config := range configs {
		log.Info().Msgf("starting config %d of %d: %+v", ci+1, len(configs), config)

		for i := 0; i < opts.NumGames; i++ {
			gameMetric, moveMetrics, err := runGame(config, opts)
			if err != nil {
				return result, fmt.Errorf("config %d game %d: %w", config.ID, i+1, err)
			}
			count++
			result.Games = append(result.Games, metrics.GameRecord{
				ID:         count,
				Config:     config.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				result.Moves = append(result.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed config %d game %d with winner: %q", config.ID, i+1, gameMetric.Winner)
		}
		log.Info().Msgf("completed config %d of %d: wins %v", ci+1, len(configs), result.Wins(config.ID))
	}

	return result, nil
}

// runGame autoplays a single game and returns its metrics.
func runGame(config metrics.RunConfig, opts Options) (metrics.GameMetric, []metrics.MoveMetric, error) {
	collector := metrics.NewCollector()
	cfg := engine.Config{
		Size:       config.Size,
		Difficulty: game.Difficulty(config.Difficulty),
		Hazards:    config.Hazards,
		Boosts:     config.Boosts,
	}
	e, err := engine.NewGame(cfg, engine.WithRandom(opts.Random), engine.WithCollector(collector))
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	winner := e.Run(opts.MaxTurns)

	gameMetric, moveMetrics := collector.Complete(winner)
	return gameMetric, moveMetrics, nil
}
