// meta/meta.go
package meta

// BOARD_SIZE is the default number of squares; the last one is the goal.
const BOARD_SIZE = 100

// NUM_HAZARDS defines how many hazards (snakes) are generated.
const NUM_HAZARDS = 10

// NUM_BOOSTS defines how many boosts (ladders) are generated.
const NUM_BOOSTS = 10

// DIFFICULTY is the default AI difficulty.
const DIFFICULTY = "normal"

// MAX_TURNS caps autoplayed games.
const MAX_TURNS = 300

// EXPERIMENT_GAMES defines the number of games per experiment configuration.
const EXPERIMENT_GAMES = 30

// OUT_DIR is where experiment results are written.
const OUT_DIR = "experiments"

// LOG_LEVEL is the default zerolog level.
const LOG_LEVEL = "info"
