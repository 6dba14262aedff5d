package ox

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidNotation = errors.New("ox: invalid notation")

// String notation of the board, much like FEN for chess:
//
//	<row>/<row>/.../<row> <turn>
//
// each row lists its cells left to right, 'x' and 'o' are marks and a number
// is a run of empty cells ('.' is accepted as a single one when parsing).
// <turn> is either 'x' or 'o'.
//
// Examples:
//
// * 3/3/3 x (empty 3x3 board, x to move)
//
// * xx1/oo1/3 x (x completes the top row with action 2)
func (b *Board) Notation() string {
	builder := strings.Builder{}

	for row := 0; row < b.size; row++ {
		counter := 0
		for col := 0; col < b.size; col++ {
			mark := b.Cell(row, col)
			if mark == Empty {
				counter++
				continue
			}

			if counter > 0 {
				builder.WriteString(strconv.Itoa(counter))
				counter = 0
			}
			builder.WriteByte(MarksAsChar[mark])
		}

		if counter > 0 {
			builder.WriteString(strconv.Itoa(counter))
		}
		if row != b.size-1 {
			builder.WriteByte('/')
		}
	}

	builder.WriteByte(' ')
	builder.WriteByte(MarksAsChar[PlayerToMark[b.player]])
	return builder.String()
}

// Parse a board from its notation (see Notation), the board is square
// with as many rows as there are '/' separated sections
func FromNotation(notation string, winLength int) (*Board, error) {
	sections := strings.Fields(notation)
	if len(sections) != 2 {
		return nil, fmt.Errorf("%w: expected '<rows> <turn>', got %q", ErrInvalidNotation, notation)
	}

	rows := strings.Split(sections[0], "/")
	size := len(rows)
	if winLength < 1 || winLength > size {
		return nil, fmt.Errorf("%w: win length %d for a %dx%d board", ErrInvalidNotation, winLength, size, size)
	}

	board := NewBoard(size, winLength)
	for r, row := range rows {
		col, err := board.parseRow(r, row)
		if err != nil {
			return nil, err
		}
		if col != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidNotation, r+1, col, size)
		}
	}

	switch sections[1] {
	case "x":
		board.player = 0
	case "o":
		board.player = 1
	default:
		return nil, fmt.Errorf("%w: unknown turn %q", ErrInvalidNotation, sections[1])
	}

	board.evaluateTermination()
	return board, nil
}

// Fill row 'r' from its notation, returns the number of cells read
func (b *Board) parseRow(r int, row string) (int, error) {
	col := 0
	for i := 0; i < len(row); {
		if col > b.size {
			break
		}

		switch c := row[i]; {
		case c >= '0' && c <= '9':
			j := i
			for j < len(row) && row[j] >= '0' && row[j] <= '9' {
				j++
			}
			n, err := strconv.Atoi(row[i:j])
			if err != nil || n > b.size-col {
				return col, fmt.Errorf("%w: run %q too long in row %d", ErrInvalidNotation, row[i:j], r+1)
			}
			col += n
			i = j
		case c == '.':
			if col >= b.size {
				return col + 1, nil
			}
			col++
			i++
		case c == 'x' || c == 'o':
			if col >= b.size {
				return col + 1, nil
			}
			mark := Cross
			if c == 'o' {
				mark = Circle
			}
			b.cells[r*b.size+col] = mark
			b.filled++
			col++
			i++
		default:
			return col, fmt.Errorf("%w: unexpected %q in row %d", ErrInvalidNotation, c, r+1)
		}
	}
	return col, nil
}

// Set the termination flag by looking at the whole board
func (b *Board) evaluateTermination() {
	b.termination = TerminationNone
	for i := range b.cells {
		if b.wins(i) {
			if b.cells[i] == Cross {
				b.termination = TerminationCrossWon
			} else {
				b.termination = TerminationCircleWon
			}
			return
		}
	}

	if b.filled == len(b.cells) {
		b.termination = TerminationDraw
	}
}
