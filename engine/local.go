package engine

import (
	"fmt"
	"snakes/experiments/metrics"
	"snakes/game"
	"snakes/meta"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Size       int
	Difficulty game.Difficulty
	Hazards    int
	Boosts     int
}

func DefaultConfig() Config {
	return Config{
		Size:       meta.BOARD_SIZE,
		Difficulty: game.Difficulty(meta.DIFFICULTY),
		Hazards:    meta.NUM_HAZARDS,
		Boosts:     meta.NUM_BOOSTS,
	}
}

type Option func(e *Engine)

// WithRandom sets the source for board generation and every roll.
func WithRandom(rng game.Random) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithBoard plays on a fixed board instead of generating one. The board's
// size replaces Config.Size.
func WithBoard(board *game.Board) Option {
	return func(e *Engine) {
		if board != nil {
			e.board = board
		}
	}
}

func WithPowerUps(powerUps game.PowerUps) Option {
	return func(e *Engine) {
		if powerUps != nil {
			e.powerUps = powerUps.Copy()
		}
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(e *Engine) {
		if c != nil {
			e.metrics = c
		}
	}
}

// Engine owns one game session: the board, both positions, the AI's memory
// and the turn state. It is not safe for concurrent use.
type Engine struct {
	ID       uuid.UUID
	config   Config
	board    *game.Board
	powerUps game.PowerUps
	memory   *game.Memory
	resolver *game.Resolver
	rng      game.Random
	metrics  metrics.Collector

	playerPosition int
	aiPosition     int
	state          State
	moves          int
	events         []game.Event
}

// NewGame validates the configuration, lays out the board and places both
// agents on the first square with the player to move.
func NewGame(cfg Config, options ...Option) (*Engine, error) {
	if _, err := game.ParseDifficulty(string(cfg.Difficulty)); err != nil {
		return nil, err
	}

	e := &Engine{ // Default values
		powerUps: game.DefaultPowerUps(),
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	if e.rng == nil {
		e.rng = game.NewRandom(uint64(time.Now().UnixNano()))
	}

	if e.board == nil {
		board, err := game.Generate(cfg.Size, cfg.Hazards, cfg.Boosts, e.rng)
		if err != nil {
			return nil, fmt.Errorf("failed to generate board: %w", err)
		}
		e.board = board
	}
	cfg.Size = e.board.Size()
	if err := e.powerUps.Validate(); err != nil {
		return nil, err
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("failed to create game id: %w", err)
	}

	e.ID = id
	e.config = cfg
	e.memory = game.NewMemory()
	e.resolver = game.NewResolver(e.board, e.powerUps, e.memory, game.StrategyFor(cfg.Difficulty), e.rng)
	e.playerPosition = 1
	e.aiPosition = 1
	e.state = PlayerTurn
	e.metrics.Start(id.String(), cfg.Difficulty)

	log.Info().Str("game", id.String()).Msgf("new game: size=%d difficulty=%s hazards=%v boosts=%v",
		cfg.Size, cfg.Difficulty, e.board.Hazards(), e.board.Boosts())
	return e, nil
}

// SubmitHumanMove plays the player's move and, unless that ends the game, the
// AI's reply. A finished game rejects the call and stays unchanged.
func (e *Engine) SubmitHumanMove() (MoveResult, error) {
	if e.state.Terminal() {
		return MoveResult{}, fmt.Errorf("%w: game is over - no moves allowed", ErrInvalidMoveRequest)
	}

	e.events = nil
	result := MoveResult{Player: e.play(game.Player)}
	if !e.state.Terminal() {
		ai := e.play(game.AI)
		result.AI = &ai
	}
	result.GameOver = e.state.Terminal()
	result.Winner = e.Winner()
	return result, nil
}

// play resolves one move for the agent whose turn it is and advances the turn.
func (e *Engine) play(agent game.Agent) Outcome {
	var events game.EventLog
	from := e.position(agent)
	to := e.resolver.Resolve(from, agent, &events)
	e.setPosition(agent, to)
	e.moves++
	e.events = append(e.events, events...)
	e.metrics.AddMove(agent, from, to, events)

	switch {
	case to >= e.config.Size && agent == game.Player:
		e.state = PlayerWon
	case to >= e.config.Size:
		e.state = AIWon
	case agent == game.Player:
		e.state = AITurn
	default:
		e.state = PlayerTurn
	}
	if e.state.Terminal() {
		log.Info().Str("game", e.ID.String()).Msgf("%s wins after %d moves", agent, e.moves)
	}

	return Outcome{Agent: agent, From: from, To: to, Events: events}
}

// Run auto-submits moves until the game ends or maxTurns rounds have been
// played, and returns the winner ("" when cut off).
func (e *Engine) Run(maxTurns int) game.Agent {
	log.Debug().Str("game", e.ID.String()).Msg("autoplay started")

	turnCount := 0
	for !e.state.Terminal() && turnCount < maxTurns {
		if _, err := e.SubmitHumanMove(); err != nil {
			break
		}
		turnCount++
	}

	if !e.state.Terminal() {
		log.Info().Str("game", e.ID.String()).Msgf("stopped after %d turns (no winner yet)", maxTurns)
	}
	return e.Winner()
}

func (e *Engine) Winner() game.Agent {
	switch e.state {
	case PlayerWon:
		return game.Player
	case AIWon:
		return game.AI
	default:
		return ""
	}
}

func (e *Engine) State() State {
	return e.state
}

// Events returns the events of the most recent SubmitHumanMove call.
func (e *Engine) Events() []game.Event {
	return append([]game.Event(nil), e.events...)
}

func (e *Engine) Snapshot() Snapshot {
	var turn game.Agent
	switch e.state {
	case PlayerTurn:
		turn = game.Player
	case AITurn:
		turn = game.AI
	}
	return Snapshot{
		GameID:         e.ID.String(),
		Size:           e.config.Size,
		Difficulty:     e.config.Difficulty,
		PlayerPosition: e.playerPosition,
		AIPosition:     e.aiPosition,
		Turn:           turn,
		State:          e.state,
		Hazards:        e.board.Hazards(),
		Boosts:         e.board.Boosts(),
		PowerUps:       e.powerUps.Copy(),
		Risky:          e.memory.Risky(),
		Immune:         e.memory.HasImmunity(),
		Moves:          e.moves,
	}
}

func (e *Engine) position(agent game.Agent) int {
	if agent == game.AI {
		return e.aiPosition
	}
	return e.playerPosition
}

func (e *Engine) setPosition(agent game.Agent, position int) {
	if agent == game.AI {
		e.aiPosition = position
	} else {
		e.playerPosition = position
	}
}
