package main

import (
	"strings"

	"github.com/IlikeChooros/ox-mcts/pkg/ox"
	"github.com/muesli/termenv"
)

// Draws boards with colored marks, the last move is highlighted
type renderer struct {
	out *termenv.Output
}

func newRenderer(out *termenv.Output) renderer {
	return renderer{out: out}
}

func (r renderer) mark(m ox.Mark) termenv.Style {
	style := r.out.String(m.String())
	switch m {
	case ox.Cross:
		return style.Foreground(r.out.Color("#E88388")).Bold()
	case ox.Circle:
		return style.Foreground(r.out.Color("#71BEF2")).Bold()
	}
	return style.Faint()
}

func (r renderer) board(b *ox.Board, last int) string {
	builder := strings.Builder{}
	size := b.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if col > 0 {
				builder.WriteByte(' ')
			}
			style := r.mark(b.Cell(row, col))
			if row*size+col == last {
				style = style.Reverse()
			}
			builder.WriteString(style.String())
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}
