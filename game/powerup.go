package game

import (
	"fmt"
	"maps"
)

// PowerUp is the effect of a special square.
type PowerUp string

const (
	Teleport      PowerUp = "teleport"
	ExtraRoll     PowerUp = "extra_roll"
	SnakeImmunity PowerUp = "snake_immunity"
)

const maxTeleportJump = 20

// PowerUps maps special squares to their effect. The layout is fixed for a
// game and not randomized.
type PowerUps map[int]PowerUp

func DefaultPowerUps() PowerUps {
	return PowerUps{
		10: Teleport,
		30: ExtraRoll,
		55: SnakeImmunity,
	}
}

func (p PowerUps) At(square int) (PowerUp, bool) {
	kind, ok := p[square]
	return kind, ok
}

func (p PowerUps) Copy() PowerUps {
	return maps.Clone(p)
}

// Validate rejects unknown effects and squares below the first one. Squares
// beyond the board are never landed on and are ignored.
func (p PowerUps) Validate() error {
	for square, kind := range p {
		switch kind {
		case Teleport, ExtraRoll, SnakeImmunity:
		default:
			return fmt.Errorf("%w: unknown power-up %q at %d", ErrInvalidConfiguration, kind, square)
		}
		if square < 1 {
			return fmt.Errorf("%w: power-up square %d", ErrInvalidConfiguration, square)
		}
	}
	return nil
}

// activate applies the power-up at square and returns the agent's position
// afterwards. origin is where the move that reached square started.
func (r *Resolver) activate(square int, kind PowerUp, agent Agent, origin int, n Notifier) int {
	n.Notify(Event{Kind: EventPowerUp, Agent: agent, Square: square, Detail: string(kind)})

	switch kind {
	case Teleport:
		// Near the end of the board the jump collapses onto the last square.
		hi := min(r.board.Size(), square+maxTeleportJump)
		target := between(r.rng, min(square+minJump, hi), hi)
		n.Notify(Event{Kind: EventTeleport, Agent: agent, Square: square, Target: target})
		return target
	case ExtraRoll:
		n.Notify(Event{Kind: EventExtraRoll, Agent: agent, Square: square})
		// The bonus move replaces the one that got here and may chain.
		return r.Resolve(origin, agent, n)
	case SnakeImmunity:
		// Only the AI can hold immunity; the player gets nothing here.
		if agent == AI {
			r.memory.GrantImmunity()
			n.Notify(Event{Kind: EventImmunity, Agent: agent, Square: square})
		}
	}
	return square
}
