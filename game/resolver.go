package game

import (
	"github.com/rs/zerolog/log"
)

// Resolver turns a position into the next position for one agent: it rolls,
// lets the AI strategy adjust the roll, then follows at most one hazard, one
// boost and one power-up.
type Resolver struct {
	board    *Board
	powerUps PowerUps
	memory   *Memory
	strategy Strategy
	rng      Random
}

func NewResolver(board *Board, powerUps PowerUps, memory *Memory, strategy Strategy, rng Random) *Resolver {
	return &Resolver{
		board:    board,
		powerUps: powerUps,
		memory:   memory,
		strategy: strategy,
		rng:      rng,
	}
}

// Resolve performs one move from position and returns where the agent ends
// up. A roll that would pass the last square forfeits the move. Positions
// produced by hazards, boosts or power-ups are not bounds checked again. An
// extra roll moves again from position, not from the power-up square.
func (r *Resolver) Resolve(position int, agent Agent, n Notifier) int {
	raw := RollDie(r.rng)
	roll := raw
	if agent == AI {
		roll = r.strategy.BiasRoll(raw, position, r.board, r.memory, r.rng)
	}
	n.Notify(Event{Kind: EventRoll, Agent: agent, Square: position, Roll: roll, Raw: raw})
	log.Debug().Str("agent", string(agent)).Int("position", position).Int("raw", raw).Int("roll", roll).Msg("rolled")

	candidate := position + roll
	if candidate > r.board.Size() {
		n.Notify(Event{Kind: EventOvershoot, Agent: agent, Square: position, Target: candidate})
		return position
	}

	if dst, ok := r.board.Hazard(candidate); ok {
		if agent == AI && r.memory.HasImmunity() {
			n.Notify(Event{Kind: EventHazardIgnored, Agent: agent, Square: candidate, Target: dst})
		} else {
			n.Notify(Event{Kind: EventHazard, Agent: agent, Square: candidate, Target: dst})
			log.Debug().Str("agent", string(agent)).Msgf("hazard %d->%d", candidate, dst)
			candidate = dst
			if agent == AI {
				r.memory.RecordHazardHit(dst)
			}
		}
	}

	// A single boost step, even if it lands on another hazard or boost.
	if dst, ok := r.board.Boost(candidate); ok {
		n.Notify(Event{Kind: EventBoost, Agent: agent, Square: candidate, Target: dst})
		log.Debug().Str("agent", string(agent)).Msgf("boost %d->%d", candidate, dst)
		candidate = dst
	}

	if kind, ok := r.powerUps.At(candidate); ok {
		return r.activate(candidate, kind, agent, position, n)
	}
	return candidate
}
