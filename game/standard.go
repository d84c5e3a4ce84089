package game

type StandardRules struct {
	Capacity int
	Penalty  float64
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Capacity: 2,
		Penalty:  1,
	}
}

func (sr *StandardRules) ShipCapacity() int {
	return sr.Capacity
}

func (sr *StandardRules) MarinePenalty() float64 {
	return sr.Penalty
}

func (sr *StandardRules) DepositReward(t Treasure) float64 {
	return t.Reward
}
