package game

import "fmt"

// ActionType is the kind of a single ship order.
type ActionType int

const (
	SailAction ActionType = iota
	CollectAction
	DepositAction
	PlunderAction
	WaitAction
)

func (t ActionType) String() string {
	switch t {
	case SailAction:
		return "sail"
	case CollectAction:
		return "collect"
	case DepositAction:
		return "deposit"
	case PlunderAction:
		return "plunder"
	case WaitAction:
		return "wait"
	default:
		return fmt.Sprintf("ActionType(%d)", int(t))
	}
}

// Action is one order for one ship. Only the fields relevant to Type are set.
type Action struct {
	Type     ActionType
	Ship     string
	Target   Cell   // sail
	Treasure string // collect, deposit
	Enemy    string // plunder
}

func Sail(ship string, target Cell) Action {
	return Action{Type: SailAction, Ship: ship, Target: target}
}

func Collect(ship, treasure string) Action {
	return Action{Type: CollectAction, Ship: ship, Treasure: treasure}
}

func Deposit(ship, treasure string) Action {
	return Action{Type: DepositAction, Ship: ship, Treasure: treasure}
}

func Plunder(ship, enemy string) Action {
	return Action{Type: PlunderAction, Ship: ship, Enemy: enemy}
}

func Wait(ship string) Action {
	return Action{Type: WaitAction, Ship: ship}
}

func (a Action) String() string {
	switch a.Type {
	case SailAction:
		return fmt.Sprintf("sail(%s,%d,%d)", a.Ship, a.Target.Row, a.Target.Col)
	case CollectAction, DepositAction:
		return fmt.Sprintf("%s(%s,%s)", a.Type, a.Ship, a.Treasure)
	case PlunderAction:
		return fmt.Sprintf("plunder(%s,%s)", a.Ship, a.Enemy)
	default:
		return fmt.Sprintf("%s(%s)", a.Type, a.Ship)
	}
}
