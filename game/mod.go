package game

import (
	"errors"
	"fmt"
)

// Agent identifies one of the two sides racing to the goal square.
type Agent string

const (
	Player Agent = "player"
	AI     Agent = "ai"
)

// Difficulty controls whether the AI biases its own dice.
type Difficulty string

const (
	Normal Difficulty = "normal"
	Hard   Difficulty = "hard"
)

const (
	MinBoardSize = 20
	DieFaces     = 6
)

// ErrInvalidConfiguration is returned when a board or game cannot be built from the requested parameters.
var ErrInvalidConfiguration = errors.New("invalid configuration")

func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(s); d {
	case Normal, Hard:
		return d, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfiguration, s)
	}
}
