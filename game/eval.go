package game

// Beats reports whether p strictly out-scores its opponent.
func (s Score) Beats(p Player) bool {
	return s[p] > s[p.Opponent()]
}

// Margin is p's lead over its opponent (negative when behind).
func (s Score) Margin(p Player) float64 {
	return s[p] - s[p.Opponent()]
}

// Winner returns the leading player, or false on a tie.
func (s Score) Winner() (Player, bool) {
	switch {
	case s.Beats(PlayerA):
		return PlayerA, true
	case s.Beats(PlayerB):
		return PlayerB, true
	default:
		return 0, false
	}
}
