package game

import "strings"

// Render draws the board as text, one row per line. Marines are M, ships are
// their owner's letter in lower case, treasures lying at their cell are T.
func (s *Simulator) Render() string {
	rows := make([][]byte, s.board.Rows())
	for r := range rows {
		rows[r] = make([]byte, s.board.Cols())
		for c := range rows[r] {
			rows[r][c] = byte(s.board.Grid[r][c])
		}
	}
	put := func(c Cell, b byte) {
		if s.board.InBounds(c) {
			rows[c.Row][c.Col] = b
		}
	}
	for _, t := range s.treasures {
		if t.Available() {
			put(t.Origin, 'T')
		}
	}
	for _, ship := range s.ships {
		put(ship.Location, strings.ToLower(ship.Owner.String())[0])
	}
	for _, mr := range s.marines {
		put(mr.Location(), 'M')
	}

	var b strings.Builder
	for _, row := range rows {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}
