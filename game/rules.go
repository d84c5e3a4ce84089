package game

type Rules interface {
	// ShipCapacity is the cargo size of ships whose map entry does not set one.
	ShipCapacity() int
	// MarinePenalty is deducted from a player each time a marine catches one
	// of its ships.
	MarinePenalty() float64
	// DepositReward is the score for bringing t to base.
	DepositReward(t Treasure) float64
}
