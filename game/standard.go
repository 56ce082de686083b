package game

// NormalStrategy moves by whatever was rolled.
type NormalStrategy struct{}

func (NormalStrategy) BiasRoll(roll, _ int, _ *Board, _ *Memory, _ Random) int {
	return roll
}

// HardStrategy shies away from hazards it remembers. When the roll would land
// on a hazard source whose recorded risk exceeds RiskThreshold, it rerolls to a
// short step with probability AvoidChance.
//
// Risk is recorded against hazard destinations but looked up here by the
// source square, so avoidance only fires when a source is itself a square the
// AI was dropped onto more than once.
type HardStrategy struct {
	AvoidChance   float64
	RiskThreshold int
	ShortSteps    []int
}

func NewHardStrategy() *HardStrategy {
	return &HardStrategy{
		AvoidChance:   0.7,
		RiskThreshold: 1,
		ShortSteps:    []int{1, 2, 3},
	}
}

func (s *HardStrategy) BiasRoll(roll, position int, board *Board, memory *Memory, rng Random) int {
	predicted := position + roll
	if _, ok := board.Hazard(predicted); !ok || memory.RiskLevel(predicted) <= s.RiskThreshold {
		return roll
	}
	if len(s.ShortSteps) == 0 {
		return roll
	}
	if rng.Float64() < s.AvoidChance {
		return s.ShortSteps[rng.Intn(len(s.ShortSteps))]
	}
	return roll
}
