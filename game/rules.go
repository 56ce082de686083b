package game

// Strategy decides the die value the AI actually moves by.
type Strategy interface {
	BiasRoll(roll, position int, board *Board, memory *Memory, rng Random) int
}

// StrategyFor returns the AI strategy for a difficulty.
func StrategyFor(d Difficulty) Strategy {
	if d == Hard {
		return NewHardStrategy()
	}
	return NormalStrategy{}
}
