package ox

import (
	"fmt"
	"strings"

	"github.com/IlikeChooros/ox-mcts/pkg/mcts"
)

// Square k-in-a-row board: players alternate placing their mark on an empty
// cell, the first one to get 'winLength' marks in a row, column or diagonal wins.
// Actions are cell indices row*size+col
type Board struct {
	size        int
	winLength   int
	cells       []Mark
	player      int
	filled      int
	termination Termination
}

func NewBoard(size, winLength int) *Board {
	if size < 1 || winLength < 1 || winLength > size {
		panic(fmt.Sprintf("ox: invalid board size=%d winLength=%d", size, winLength))
	}

	return &Board{
		size:      size,
		winLength: winLength,
		cells:     make([]Mark, size*size),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) WinLength() int {
	return b.winLength
}

func (b *Board) Cell(row, col int) Mark {
	return b.cells[row*b.size+col]
}

func (b *Board) Termination() Termination {
	return b.termination
}

// Mark of the winner, Empty if the game isn't won (yet)
func (b *Board) Winner() Mark {
	switch b.termination {
	case TerminationCrossWon:
		return Cross
	case TerminationCircleWon:
		return Circle
	}
	return Empty
}

func (b *Board) Clone() mcts.GameState[int] {
	return b.Copy()
}

// Same as Clone, without losing the concrete type
func (b *Board) Copy() *Board {
	clone := *b
	clone.cells = make([]Mark, len(b.cells))
	copy(clone.cells, b.cells)
	return &clone
}

// Empty cells in ascending order, none once the game has ended
func (b *Board) Actions() []int {
	if b.termination != TerminationNone {
		return nil
	}

	actions := make([]int, 0, len(b.cells)-b.filled)
	for i, m := range b.cells {
		if m == Empty {
			actions = append(actions, i)
		}
	}
	return actions
}

func (b *Board) Apply(action int) {
	if action < 0 || action >= len(b.cells) || b.cells[action] != Empty || b.termination != TerminationNone {
		panic(fmt.Sprintf("ox: illegal action %d", action))
	}

	mark := PlayerToMark[b.player]
	b.cells[action] = mark
	b.filled++

	if b.wins(action) {
		if mark == Cross {
			b.termination = TerminationCrossWon
		} else {
			b.termination = TerminationCircleWon
		}
	} else if b.filled == len(b.cells) {
		b.termination = TerminationDraw
	}

	b.player ^= 1
}

func (b *Board) IsTerminal() bool {
	return b.termination != TerminationNone
}

// +1 for the winner, -1 for the loser, zeros otherwise
func (b *Board) Rewards() []float64 {
	switch b.termination {
	case TerminationCrossWon:
		return []float64{1, -1}
	case TerminationCircleWon:
		return []float64{-1, 1}
	}
	return []float64{0, 0}
}

func (b *Board) CurrentPlayer() int {
	return b.player
}

// Hand the move to the other player without placing a mark
func (b *Board) SwapPlayer() {
	b.player ^= 1
}

// horizontal, vertical and both diagonal directions
var _directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// Whether the mark at 'idx' is part of a winning line
func (b *Board) wins(idx int) bool {
	mark := b.cells[idx]
	if mark == Empty {
		return false
	}

	row, col := idx/b.size, idx%b.size
	for _, d := range _directions {
		count := 1 + b.count(row, col, d[0], d[1], mark) + b.count(row, col, -d[0], -d[1], mark)
		if count >= b.winLength {
			return true
		}
	}
	return false
}

// Number of consecutive 'mark' cells from (row, col), exclusive, going (dr, dc)
func (b *Board) count(row, col, dr, dc int, mark Mark) int {
	n := 0
	for {
		row, col = row+dr, col+dc
		if row < 0 || row >= b.size || col < 0 || col >= b.size || b.cells[row*b.size+col] != mark {
			return n
		}
		n++
	}
}

// Empty cell closest (manhattan distance) to the center, lowest index on ties.
// The center is ((size-1)/2, (size-1)/2), so on even boards the four middle
// cells are equally close and 27 is picked on an empty 8x8 board
func (b *Board) CenterMove() (int, bool) {
	center := float64(b.size-1) / 2
	best, bestDistance := -1, 0.0

	for _, action := range b.Actions() {
		row, col := float64(action/b.size), float64(action%b.size)
		distance := abs(center-row) + abs(center-col)
		if best == -1 || distance < bestDistance {
			best, bestDistance = action, distance
		}
	}
	return best, best != -1
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func (b *Board) Equal(other *Board) bool {
	if b.size != other.size || b.winLength != other.winLength ||
		b.player != other.player || b.termination != other.termination {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

func (b *Board) String() string {
	builder := strings.Builder{}
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if col > 0 {
				builder.WriteByte(' ')
			}
			builder.WriteByte(MarksAsChar[b.Cell(row, col)])
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}
