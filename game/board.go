package game

import (
	"fmt"
	"maps"
)

const (
	// Hazard sources are kept this far from both ends of the board.
	hazardMargin = 10
	// Minimum drop of a hazard and minimum climb of a boost.
	minJump = 5
	// Maximum climb of a boost.
	maxBoostJump = 20
)

// Board is the static layout of a game: its size plus hazard ("snake") and
// boost ("ladder") redirections keyed by source square. It never changes after
// construction.
type Board struct {
	size    int
	hazards map[int]int
	boosts  map[int]int
}

// Generate places hazards and boosts at random. Entries that draw the same
// source square overwrite earlier ones, so a board may hold fewer entries than
// requested. Hazards and boosts are drawn independently and may share a source.
func Generate(size, numHazards, numBoosts int, rng Random) (*Board, error) {
	if size < MinBoardSize {
		return nil, fmt.Errorf("%w: board size %d is below %d", ErrInvalidConfiguration, size, MinBoardSize)
	}
	if numHazards < 0 || numBoosts < 0 {
		return nil, fmt.Errorf("%w: negative hazard (%d) or boost (%d) count", ErrInvalidConfiguration, numHazards, numBoosts)
	}

	b := &Board{
		size:    size,
		hazards: make(map[int]int, numHazards),
		boosts:  make(map[int]int, numBoosts),
	}
	for i := 0; i < numHazards; i++ {
		start := between(rng, hazardMargin, size-hazardMargin)
		b.hazards[start] = between(rng, 1, start-minJump)
	}
	for i := 0; i < numBoosts; i++ {
		start := between(rng, 1, size-hazardMargin)
		b.boosts[start] = between(rng, start+minJump, min(size, start+maxBoostJump))
	}
	return b, nil
}

// NewBoard builds a board from fixed maps. Hazards must lead strictly down and
// boosts strictly up; sources must lie on the board.
func NewBoard(size int, hazards, boosts map[int]int) (*Board, error) {
	if size < MinBoardSize {
		return nil, fmt.Errorf("%w: board size %d is below %d", ErrInvalidConfiguration, size, MinBoardSize)
	}
	for src, dst := range hazards {
		if src < 1 || src > size || dst < 1 || dst >= src {
			return nil, fmt.Errorf("%w: hazard %d->%d", ErrInvalidConfiguration, src, dst)
		}
	}
	for src, dst := range boosts {
		if src < 1 || src > size || dst <= src {
			return nil, fmt.Errorf("%w: boost %d->%d", ErrInvalidConfiguration, src, dst)
		}
	}
	return &Board{
		size:    size,
		hazards: maps.Clone(nonNil(hazards)),
		boosts:  maps.Clone(nonNil(boosts)),
	}, nil
}

func nonNil(m map[int]int) map[int]int {
	if m == nil {
		return map[int]int{}
	}
	return m
}

func (b *Board) Size() int {
	return b.size
}

// Hazard reports where a hazard at square leads, if there is one.
func (b *Board) Hazard(square int) (int, bool) {
	dst, ok := b.hazards[square]
	return dst, ok
}

// Boost reports where a boost at square leads, if there is one.
func (b *Board) Boost(square int) (int, bool) {
	dst, ok := b.boosts[square]
	return dst, ok
}

func (b *Board) Hazards() map[int]int {
	return maps.Clone(b.hazards)
}

func (b *Board) Boosts() map[int]int {
	return maps.Clone(b.boosts)
}
