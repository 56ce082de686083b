package metrics

import (
	"snakes/game"
	"time"
)

type MoveMetric struct {
	Step     int
	Agent    string
	From     int
	To       int
	Rolls    int  // Dice rolled during the move, including extra rolls
	Adjusted bool // The AI strategy changed at least one roll
	Hazards  int
	Boosts   int
	PowerUps int
}

type GameMetric struct {
	GameID          string
	Difficulty      string
	Winner          string // "" if the turn cap was hit
	StartTime       time.Time
	EndTime         time.Time
	Duration        time.Duration
	TotalMoves      int
	PlayerHazards   int
	AIHazards       int
	IgnoredHazards  int
	AdjustedRolls   int
	Overshoots      int
	ImmunityGranted bool
}

type Collector interface {
	Start(gameID string, difficulty game.Difficulty)
	AddMove(agent game.Agent, from, to int, events []game.Event)
	Complete(winner game.Agent) (GameMetric, []MoveMetric)
}

type collector struct {
	game  GameMetric
	moves []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(gameID string, difficulty game.Difficulty) {
	c.game = GameMetric{
		GameID:     gameID,
		Difficulty: string(difficulty),
		StartTime:  time.Now(),
	}
	c.moves = nil
}

func (c *collector) AddMove(agent game.Agent, from, to int, events []game.Event) {
	move := MoveMetric{
		Step:  len(c.moves) + 1,
		Agent: string(agent),
		From:  from,
		To:    to,
	}
	for _, e := range events {
		switch e.Kind {
		case game.EventRoll:
			move.Rolls++
			if e.Adjusted() {
				move.Adjusted = true
				c.game.AdjustedRolls++
			}
		case game.EventHazard:
			move.Hazards++
			if agent == game.AI {
				c.game.AIHazards++
			} else {
				c.game.PlayerHazards++
			}
		case game.EventHazardIgnored:
			c.game.IgnoredHazards++
		case game.EventBoost:
			move.Boosts++
		case game.EventPowerUp:
			move.PowerUps++
		case game.EventOvershoot:
			c.game.Overshoots++
		case game.EventImmunity:
			c.game.ImmunityGranted = true
		}
	}
	c.moves = append(c.moves, move)
}

func (c *collector) Complete(winner game.Agent) (GameMetric, []MoveMetric) {
	c.game.Winner = string(winner)
	c.game.EndTime = time.Now()
	c.game.Duration = c.game.EndTime.Sub(c.game.StartTime)
	c.game.TotalMoves = len(c.moves)
	return c.game, c.moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(gameID string, difficulty game.Difficulty)             {}
func (c *dummyCollector) AddMove(agent game.Agent, from, to int, events []game.Event) {}
func (c *dummyCollector) Complete(winner game.Agent) (GameMetric, []MoveMetric) {
	return GameMetric{}, nil
}
