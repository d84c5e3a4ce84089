package game

import "errors"

var (
	// ErrIllegalAction is returned by Apply for joint actions that break the
	// adjacency, capacity or ownership rules.
	ErrIllegalAction = errors.New("illegal action")
	// ErrGameOver is returned by Apply once no turns remain.
	ErrGameOver = errors.New("game is over")
	// ErrInvalidMap reports a structurally broken map definition.
	ErrInvalidMap = errors.New("invalid map")
)
