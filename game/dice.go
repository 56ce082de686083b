package game

import (
	"golang.org/x/exp/rand"
)

// Random is the source of every dice roll and probability draw in a game.
// Each engine owns its own source so tests can script outcomes.
type Random interface {
	// Intn returns a random int in [0, n).
	Intn(n int) int
	// Float64 returns a random float in [0.0, 1.0).
	Float64() float64
}

func NewRandom(seed uint64) Random {
	return rand.New(rand.NewSource(seed))
}

// RollDie returns a value in [1, DieFaces].
func RollDie(rng Random) int {
	return rng.Intn(DieFaces) + 1
}

// between returns a value in [lo, hi]. Callers guarantee lo <= hi.
func between(rng Random, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
