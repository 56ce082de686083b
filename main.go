package main

import (
	"flag"
	"fmt"
	"os"
	"snakes/console"
	"snakes/engine"
	"snakes/experiments"
	"snakes/game"
	"snakes/meta"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage: snakes <command> [flags]

commands:
  play        play one game against the AI in the terminal
  experiment  autoplay normal vs hard games and store the results
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := meta.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "play":
		err = runPlay(cfg, os.Args[2:])
	case "experiment":
		err = runExperiment(cfg, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Error().Err(err).Msg("exiting")
		os.Exit(1)
	}
}

func runPlay(cfg meta.Config, args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	size := fs.Int("size", cfg.Size, "Number of squares on the board")
	hazards := fs.Int("snakes", cfg.Hazards, "Number of snakes to place")
	boosts := fs.Int("ladders", cfg.Boosts, "Number of ladders to place")
	difficulty := fs.String("difficulty", cfg.Difficulty, "AI difficulty: normal or hard")
	seed := fs.Uint64("seed", cfg.Seed, "Random seed, 0 seeds from the clock")
	logFile := fs.String("log", "snakes.log", "File to write logs to while the game is on screen")
	fs.Parse(args)

	// The terminal belongs to the game, so logs go to a file.
	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()
	setupLogging(cfg.LogLevel, f)

	d, err := game.ParseDifficulty(*difficulty)
	if err != nil {
		return err
	}

	e, err := engine.NewGame(engine.Config{
		Size:       *size,
		Difficulty: d,
		Hazards:    *hazards,
		Boosts:     *boosts,
	}, engine.WithRandom(newRandom(*seed)))
	if err != nil {
		return err
	}

	return console.Run(e)
}

func runExperiment(cfg meta.Config, args []string) error {
	fs := flag.NewFlagSet("experiment", flag.ExitOnError)
	games := fs.Int("games", cfg.Games, "Games per configuration")
	maxTurns := fs.Int("max-turns", cfg.MaxTurns, "Rounds before a game is abandoned")
	out := fs.String("out", cfg.OutDir, "Directory to store results in")
	seed := fs.Uint64("seed", cfg.Seed, "Random seed, 0 seeds from the clock")
	fs.Parse(args)

	setupLogging(cfg.LogLevel, os.Stderr)

	log.Info().Msg("running difficulty experiment...")
	result, err := experiments.RunDifficultyExperiment(experiments.Options{
		OutDir:   *out,
		NumGames: *games,
		MaxTurns: *maxTurns,
		Random:   newRandom(*seed),
	})
	if err != nil {
		return err
	}
	log.Info().Msgf("finished difficulty experiment: %d games", len(result.Games))
	return nil
}

func setupLogging(level string, w *os.File) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: w != os.Stderr})
}

func newRandom(seed uint64) game.Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return game.NewRandom(seed)
}
