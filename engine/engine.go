package engine

import (
	"errors"
	"snakes/game"
)

// ErrInvalidMoveRequest is returned when a move is submitted after the game has ended.
var ErrInvalidMoveRequest = errors.New("invalid move request")

// State is the turn state machine: whose move is next, or who has won.
type State int

const (
	PlayerTurn State = iota
	AITurn
	PlayerWon
	AIWon
)

func (s State) String() string {
	switch s {
	case PlayerTurn:
		return "player_turn"
	case AITurn:
		return "ai_turn"
	case PlayerWon:
		return "player_won"
	case AIWon:
		return "ai_won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the game is over.
func (s State) Terminal() bool {
	return s == PlayerWon || s == AIWon
}

// Outcome is one resolved move of one agent.
type Outcome struct {
	Agent  game.Agent
	From   int
	To     int
	Events []game.Event
}

// MoveResult is everything that happened during one SubmitHumanMove call.
// AI is nil when the player's move ended the game.
type MoveResult struct {
	Player   Outcome
	AI       *Outcome
	GameOver bool
	Winner   game.Agent // "" while the game is running
}

// Snapshot is a read-only copy of the game for display.
type Snapshot struct {
	GameID         string
	Size           int
	Difficulty     game.Difficulty
	PlayerPosition int
	AIPosition     int
	Turn           game.Agent // Agent to move next, "" once the game is over
	State          State
	Hazards        map[int]int
	Boosts         map[int]int
	PowerUps       game.PowerUps
	Risky          map[int]int // AI hazard memory
	Immune         bool        // AI holds snake immunity
	Moves          int
}
