// Package searcher implements UCT Monte Carlo tree search over joint actions.
package searcher

import "pirates/game"

// ChildStat is the aggregated statistics of one root child.
type ChildStat struct {
	Action game.JointAction
	Visits int
	Wins   int
}
