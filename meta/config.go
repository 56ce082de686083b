package meta

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds runtime settings. Values come from the defaults above, then an
// optional .env file, then the process environment; flags are applied by main.
type Config struct {
	Size       int
	Hazards    int
	Boosts     int
	Difficulty string
	Seed       uint64 // 0 seeds from the clock
	MaxTurns   int
	Games      int
	OutDir     string
	LogLevel   string
}

func Defaults() Config {
	return Config{
		Size:       BOARD_SIZE,
		Hazards:    NUM_HAZARDS,
		Boosts:     NUM_BOOSTS,
		Difficulty: DIFFICULTY,
		MaxTurns:   MAX_TURNS,
		Games:      EXPERIMENT_GAMES,
		OutDir:     OUT_DIR,
		LogLevel:   LOG_LEVEL,
	}
}

// Load reads the given env files (".env" if none are given and it exists).
// Variables already set in the process environment win over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err == nil {
			files = []string{".env"}
		}
	}

	fileEnv := map[string]string{}
	if len(files) > 0 {
		var err error
		fileEnv, err = godotenv.Read(files...)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read env files: %w", err)
		}
	}

	return FromLookup(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	})
}

// FromLookup applies SNAKES_* variables found by lookup on top of the defaults.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Defaults()

	ints := []struct {
		key string
		dst *int
	}{
		{"SNAKES_SIZE", &cfg.Size},
		{"SNAKES_HAZARDS", &cfg.Hazards},
		{"SNAKES_BOOSTS", &cfg.Boosts},
		{"SNAKES_MAX_TURNS", &cfg.MaxTurns},
		{"SNAKES_GAMES", &cfg.Games},
	}
	for _, v := range ints {
		raw, ok := lookup(v.key)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s=%q: %w", v.key, raw, err)
		}
		*v.dst = n
	}

	if raw, ok := lookup("SNAKES_SEED"); ok && raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SNAKES_SEED=%q: %w", raw, err)
		}
		cfg.Seed = seed
	}
	if raw, ok := lookup("SNAKES_DIFFICULTY"); ok && raw != "" {
		cfg.Difficulty = raw
	}
	if raw, ok := lookup("SNAKES_OUT_DIR"); ok && raw != "" {
		cfg.OutDir = raw
	}
	if raw, ok := lookup("SNAKES_LOG_LEVEL"); ok && raw != "" {
		cfg.LogLevel = raw
	}
	return cfg, nil
}
