package game

import "maps"

// Memory is what the AI has learned during one game: how often it has been
// dropped onto each hazard destination, and whether it holds snake immunity.
// Counts never decay.
type Memory struct {
	hits   map[int]int
	immune bool
}

func NewMemory() *Memory {
	return &Memory{hits: make(map[int]int)}
}

// RecordHazardHit counts one more drop onto square.
func (m *Memory) RecordHazardHit(square int) {
	m.hits[square]++
}

// RiskLevel is the number of recorded hits at square, 0 if none.
func (m *Memory) RiskLevel(square int) int {
	return m.hits[square]
}

func (m *Memory) HasImmunity() bool {
	return m.immune
}

// GrantImmunity is permanent for the rest of the game.
func (m *Memory) GrantImmunity() {
	m.immune = true
}

// Risky returns a copy of all recorded hit counts.
func (m *Memory) Risky() map[int]int {
	return maps.Clone(m.hits)
}
