package game

import "strings"

// JointAction is one Action per owned ship, in the order returned by
// Model.Ships for the acting player.
type JointAction []Action

// Key is a stable identity for the joint action, usable as a map key.
func (ja JointAction) Key() string {
	var b strings.Builder
	for i, a := range ja {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(a.String())
	}
	return b.String()
}

func (ja JointAction) String() string {
	return "[" + ja.Key() + "]"
}

// Collects returns the names of the treasures this joint action collects.
func (ja JointAction) Collects() []string {
	var names []string
	for _, a := range ja {
		if a.Type == CollectAction {
			names = append(names, a.Treasure)
		}
	}
	return names
}

// AllWait builds the joint action in which every ship waits. It is legal in
// every state.
func AllWait(ships []Ship) JointAction {
	ja := make(JointAction, len(ships))
	for i, s := range ships {
		ja[i] = Wait(s.Name)
	}
	return ja
}
