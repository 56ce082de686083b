package engine

import (
	"os"
	"snakes/experiments/metrics"
	"snakes/game"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

type scriptedDice struct {
	t     *testing.T
	faces []int
}

func (s *scriptedDice) Intn(n int) int {
	s.t.Helper()
	require.NotEmpty(s.t, s.faces, "Unexpected Intn(%d) draw", n)
	require.Equal(s.t, game.DieFaces, n, "Only die rolls are scripted")
	f := s.faces[0]
	s.faces = s.faces[1:]
	return f - 1
}

func (s *scriptedDice) Float64() float64 {
	s.t.Fatal("Unexpected Float64 draw")
	return 0
}

func newTestGame(t *testing.T, board *game.Board, faces ...int) *Engine {
	t.Helper()
	e, err := NewGame(Config{Difficulty: game.Normal},
		WithBoard(board),
		WithPowerUps(game.PowerUps{}),
		WithRandom(&scriptedDice{t: t, faces: faces}),
	)
	require.NoError(t, err)
	return e
}

func mustBoard(t *testing.T, size int, hazards, boosts map[int]int) *game.Board {
	t.Helper()
	b, err := game.NewBoard(size, hazards, boosts)
	require.NoError(t, err)
	return b
}

func TestNewGame(t *testing.T) {
	t.Run("generates a board and starts with the player", func(t *testing.T) {
		e, err := NewGame(DefaultConfig(), WithRandom(game.NewRandom(7)))
		require.NoError(t, err)

		snap := e.Snapshot()
		require.NotEmpty(t, snap.GameID)
		require.Equal(t, 100, snap.Size)
		require.Equal(t, game.Normal, snap.Difficulty)
		require.Equal(t, 1, snap.PlayerPosition)
		require.Equal(t, 1, snap.AIPosition)
		require.Equal(t, game.Player, snap.Turn)
		require.Equal(t, PlayerTurn, snap.State)
		require.NotEmpty(t, snap.Hazards)
		require.NotEmpty(t, snap.Boosts)
		require.Equal(t, game.DefaultPowerUps(), snap.PowerUps)
		require.Empty(t, snap.Risky)
		require.False(t, snap.Immune)
		require.Zero(t, snap.Moves)
	})

	t.Run("each game gets its own id and memory", func(t *testing.T) {
		e1, err := NewGame(DefaultConfig(), WithRandom(game.NewRandom(1)))
		require.NoError(t, err)
		e2, err := NewGame(DefaultConfig(), WithRandom(game.NewRandom(1)))
		require.NoError(t, err)

		require.NotEqual(t, e1.ID, e2.ID)
		require.NotSame(t, e1.memory, e2.memory)
		require.Equal(t, e1.Snapshot().Hazards, e2.Snapshot().Hazards, "Same seed should lay out the same board")
	})

	t.Run("rejects boards that are too small", func(t *testing.T) {
		_, err := NewGame(Config{Size: 19, Difficulty: game.Normal, Hazards: 1, Boosts: 1})

		require.ErrorIs(t, err, game.ErrInvalidConfiguration)
	})

	t.Run("rejects unknown difficulty", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Difficulty = "impossible"

		_, err := NewGame(cfg)

		require.ErrorIs(t, err, game.ErrInvalidConfiguration)
	})

	t.Run("rejects unknown power-ups", func(t *testing.T) {
		_, err := NewGame(DefaultConfig(), WithPowerUps(game.PowerUps{12: "warp"}))

		require.ErrorIs(t, err, game.ErrInvalidConfiguration)
	})

	t.Run("fixed board sets the size", func(t *testing.T) {
		e := newTestGame(t, mustBoard(t, 25, map[int]int{15: 5}, nil))

		snap := e.Snapshot()
		require.Equal(t, 25, snap.Size)
		require.Equal(t, map[int]int{15: 5}, snap.Hazards)
		require.Empty(t, snap.PowerUps)
	})
}

func TestSubmitHumanMove(t *testing.T) {
	t.Run("plays the player then the AI", func(t *testing.T) {
		e := newTestGame(t, mustBoard(t, 20, nil, nil), 3, 4)

		result, err := e.SubmitHumanMove()

		require.NoError(t, err)
		require.Equal(t, Outcome{Agent: game.Player, From: 1, To: 4, Events: result.Player.Events}, result.Player)
		require.NotNil(t, result.AI)
		require.Equal(t, 1, result.AI.From)
		require.Equal(t, 5, result.AI.To)
		require.False(t, result.GameOver)
		require.Equal(t, game.Agent(""), result.Winner)

		snap := e.Snapshot()
		require.Equal(t, 4, snap.PlayerPosition)
		require.Equal(t, 5, snap.AIPosition)
		require.Equal(t, PlayerTurn, snap.State, "Turn should come back to the player")
		require.Equal(t, 2, snap.Moves)

		events := e.Events()
		require.Len(t, events, 2)
		require.Equal(t, game.Player, events[0].Agent)
		require.Equal(t, game.AI, events[1].Agent)
	})

	t.Run("events only cover the latest call", func(t *testing.T) {
		e := newTestGame(t, mustBoard(t, 20, map[int]int{6: 2}, nil), 1, 1, 1, 1)

		_, err := e.SubmitHumanMove()
		require.NoError(t, err)
		result, err := e.SubmitHumanMove()
		require.NoError(t, err)

		require.Len(t, e.Events(), 2)
		require.Equal(t, 3, result.Player.To)
	})

	t.Run("player reaching the goal ends the game before the AI moves", func(t *testing.T) {
		e := newTestGame(t, mustBoard(t, 20, nil, map[int]int{5: 20}), 4)

		result, err := e.SubmitHumanMove()

		require.NoError(t, err)
		require.True(t, result.GameOver)
		require.Equal(t, game.Player, result.Winner)
		require.Nil(t, result.AI, "AI should not move after the player wins")
		require.Equal(t, PlayerWon, e.State())
		require.Equal(t, game.Agent(""), e.Snapshot().Turn)
	})

	t.Run("AI reaching the goal wins", func(t *testing.T) {
		e := newTestGame(t, mustBoard(t, 20, nil, map[int]int{5: 20}), 3, 4)

		result, err := e.SubmitHumanMove()

		require.NoError(t, err)
		require.True(t, result.GameOver)
		require.Equal(t, game.AI, result.Winner)
		require.Equal(t, 20, result.AI.To)
		require.Equal(t, AIWon, e.State())
	})

	t.Run("moves after game over are rejected without changing state", func(t *testing.T) {
		e := newTestGame(t, mustBoard(t, 20, nil, map[int]int{5: 20}), 4)
		_, err := e.SubmitHumanMove()
		require.NoError(t, err)
		before := e.Snapshot()
		events := e.Events()

		_, err = e.SubmitHumanMove()

		require.ErrorIs(t, err, ErrInvalidMoveRequest)
		require.EqualError(t, err, "invalid move request: game is over - no moves allowed")
		require.Equal(t, before, e.Snapshot(), "State should not change")
		require.Equal(t, events, e.Events(), "Events should not change")
	})

	t.Run("overshoot keeps the player in place", func(t *testing.T) {
		e := newTestGame(t, mustBoard(t, 20, nil, map[int]int{2: 18}), 1, 1, 3, 1)
		_, err := e.SubmitHumanMove()
		require.NoError(t, err)

		result, err := e.SubmitHumanMove()

		require.NoError(t, err)
		require.Equal(t, 18, result.Player.From)
		require.Equal(t, 18, result.Player.To)
		require.Equal(t, game.EventOvershoot, result.Player.Events[1].Kind)
	})

	t.Run("extra roll counts as one move with two rolls", func(t *testing.T) {
		e, err := NewGame(Config{Difficulty: game.Normal},
			WithBoard(mustBoard(t, 100, nil, map[int]int{2: 28})),
			WithRandom(&scriptedDice{t: t, faces: []int{1, 1, 2, 4, 1}}),
		)
		require.NoError(t, err)
		_, err = e.SubmitHumanMove() // Player 1 -> 2 -> 28, AI 1 -> 2 -> 28
		require.NoError(t, err)

		result, err := e.SubmitHumanMove() // Player 28 -> 30, bonus 28 -> 32

		require.NoError(t, err)
		require.Equal(t, 28, result.Player.From)
		require.Equal(t, 32, result.Player.To, "Player should end on the bonus move's result")
		require.Equal(t, 2, game.EventLog(result.Player.Events).Count(game.EventRoll))
		require.Equal(t, 29, result.AI.To)
	})

	t.Run("AI immunity shows up in snapshots", func(t *testing.T) {
		e, err := NewGame(Config{Difficulty: game.Hard},
			WithBoard(mustBoard(t, 100, map[int]int{8: 3}, nil)),
			WithPowerUps(game.PowerUps{7: game.SnakeImmunity}),
			WithRandom(&scriptedDice{t: t, faces: []int{1, 6, 1, 1}}),
		)
		require.NoError(t, err)

		result, err := e.SubmitHumanMove() // AI 1 -> 7, immunity
		require.NoError(t, err)

		require.Equal(t, 7, result.AI.To)
		require.True(t, e.Snapshot().Immune)
		require.Contains(t, game.EventLog(e.Events()).Kinds(), game.EventImmunity)
		require.Equal(t, game.AI, e.Events()[len(e.Events())-1].Agent)

		result, err = e.SubmitHumanMove() // AI 7 -> 8, hazard ignored
		require.NoError(t, err)

		require.Equal(t, 8, result.AI.To)
		require.Equal(t, 1, game.EventLog(result.AI.Events).Count(game.EventHazardIgnored))
		require.Empty(t, e.Snapshot().Risky)
	})

	t.Run("AI memory shows up in snapshots", func(t *testing.T) {
		e, err := NewGame(Config{Difficulty: game.Hard},
			WithBoard(mustBoard(t, 100, map[int]int{8: 3}, nil)),
			WithPowerUps(game.PowerUps{}),
			WithRandom(&scriptedDice{t: t, faces: []int{1, 1, 1, 6}}),
		)
		require.NoError(t, err)

		_, err = e.SubmitHumanMove() // AI 1 -> 2
		require.NoError(t, err)
		result, err := e.SubmitHumanMove() // AI 2 -> 8 -> 3
		require.NoError(t, err)

		require.Equal(t, 3, result.AI.To)
		require.Equal(t, map[int]int{3: 1}, e.Snapshot().Risky)
		require.False(t, e.Snapshot().Immune)
	})
}

func TestRun(t *testing.T) {
	t.Run("autoplays until someone wins", func(t *testing.T) {
		e, err := NewGame(Config{Difficulty: game.Hard},
			WithBoard(mustBoard(t, 20, nil, nil)),
			WithRandom(game.NewRandom(3)),
		)
		require.NoError(t, err)

		winner := e.Run(1000)

		require.Contains(t, []game.Agent{game.Player, game.AI}, winner)
		require.True(t, e.State().Terminal())
	})

	t.Run("stops at the turn cap without a winner", func(t *testing.T) {
		e := newTestGame(t, mustBoard(t, 20, nil, nil), 1, 1)

		winner := e.Run(1)

		require.Equal(t, game.Agent(""), winner)
		require.Equal(t, 2, e.Snapshot().Moves, "One round is one player and one AI move")
	})

	t.Run("feeds the collector", func(t *testing.T) {
		c := metrics.NewCollector()
		e, err := NewGame(Config{Difficulty: game.Normal},
			WithBoard(mustBoard(t, 20, map[int]int{15: 5}, nil)),
			WithPowerUps(game.PowerUps{}),
			WithRandom(&scriptedDice{t: t, faces: []int{6, 1, 6, 1}}),
			WithCollector(c),
		)
		require.NoError(t, err)

		e.Run(2) // Player 1 -> 7 -> 13, AI 1 -> 2 -> 3

		gm, moves := c.Complete(e.Winner())
		require.Equal(t, e.ID.String(), gm.GameID)
		require.Equal(t, 4, gm.TotalMoves)
		require.Len(t, moves, 4)
		require.Equal(t, "player", moves[2].Agent)
		require.Equal(t, 13, moves[2].To)
	})
}
