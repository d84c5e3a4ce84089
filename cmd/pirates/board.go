package main

import (
	"fmt"
	"io"
	"pirates/engine"
	"pirates/game"
	"strings"

	"github.com/muesli/termenv"
)

// board draws the simulator's text board with a colour per piece.
type board struct {
	out *termenv.Output
}

func newBoard(w io.Writer) *board {
	return &board{out: termenv.NewOutput(w)}
}

func (b *board) style(r rune) termenv.Style {
	s := b.out.String(string(r))
	switch r {
	case 'S':
		return s.Foreground(b.out.Color("#157483"))
	case 'I':
		return s.Foreground(b.out.Color("#8B6D3F"))
	case 'B':
		return s.Foreground(b.out.Color("#2CD7C7")).Bold()
	case 'T':
		return s.Foreground(b.out.Color("#E5C07B")).Bold()
	case 'M':
		return s.Foreground(b.out.Color("#E06C75")).Bold()
	case 'a':
		return s.Foreground(b.out.Color("#61AFEF")).Bold()
	case 'b':
		return s.Foreground(b.out.Color("#C678DD")).Bold()
	default:
		return s
	}
}

func (b *board) render(sim *game.Simulator) string {
	var sb strings.Builder
	for _, r := range sim.Render() {
		if r == '\n' {
			sb.WriteByte('\n')
			continue
		}
		sb.WriteString(b.style(r).String())
		sb.WriteByte(' ')
	}
	return sb.String()
}

// observe prints every move and, when the snapshot can be drawn, the board.
func (b *board) observe(u engine.Update) {
	status := ""
	if !u.Legal {
		status = " (illegal, replaced)"
	}
	fmt.Fprintf(b.out, "step %d: %s plays %s%s  score A=%.0f B=%.0f\n",
		u.Step, u.Player, u.Move, status, u.Score[game.PlayerA], u.Score[game.PlayerB])
	if sim, ok := u.Model.(*game.Simulator); ok {
		fmt.Fprintln(b.out, b.render(sim))
	}
}
