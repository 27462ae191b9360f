package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	cellCount = entity.BoardSize * entity.BoardSize

	// no line can be complete before the first player's third mark.
	minFilledForWin = 2*entity.BoardSize - 1
)

// WinLines lists every row, column and diagonal.
var WinLines = [8][entity.BoardSize]entity.Position{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 2}},
}

// Board is the state of one game: the grid, both marks, whose turn it is
// and how many cells are filled. It is mutated only through ApplyMove and Reset.
type Board struct {
	grid   [entity.BoardSize][entity.BoardSize]entity.Mark
	marks  [2]entity.Mark
	turn   int
	filled int
	status entity.Status
}

func NewBoard(first, second entity.Mark) (*Board, error) {
	for _, mark := range []entity.Mark{first, second} {
		if !mark.Valid() {
			return nil, fmt.Errorf("%w: got %q", apperror.ErrInvalidMark, mark)
		}
	}

	if first == second {
		return nil, fmt.Errorf("%w: both are %q", apperror.ErrSameMarks, first)
	}

	board := &Board{marks: [2]entity.Mark{first, second}}
	board.Reset()

	return board, nil
}

// Reset clears the grid for a rematch on the same marks.
func (that *Board) Reset() {
	that.grid = [entity.BoardSize][entity.BoardSize]entity.Mark{}
	that.turn = 0
	that.filled = 0
	that.status = entity.StatusEmpty
}

func (that *Board) IsOccupied(pos entity.Position) (bool, error) {
	if !pos.Valid() {
		return false, fmt.Errorf("%w: %s", apperror.ErrOutOfRange, pos)
	}

	return !that.grid[pos.Row][pos.Col].IsEmpty(), nil
}

// ApplyMove puts the current player's mark at pos. On error the board is left untouched.
func (that *Board) ApplyMove(pos entity.Position) (entity.Outcome, error) {
	if that.status.IsFinished() {
		return entity.Outcome{}, apperror.ErrGameFinished
	}

	occupied, err := that.IsOccupied(pos)
	if err != nil {
		return entity.Outcome{}, err
	}

	if occupied {
		return entity.Outcome{}, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, pos)
	}

	mark := that.CurrentMark()
	that.grid[pos.Row][pos.Col] = mark
	that.filled++

	switch {
	case that.filled >= minFilledForWin && that.completesLine(pos):
		that.status = entity.StatusWon
		return entity.Outcome{Result: entity.Win, Winner: mark}, nil
	case that.filled == cellCount:
		that.status = entity.StatusDrawn
		return entity.Outcome{Result: entity.Draw}, nil
	default:
		that.status = entity.StatusInProgress
		that.turn = 1 - that.turn
		return entity.Outcome{Result: entity.Continue}, nil
	}
}

// completesLine reports whether any line through pos holds a single mark in all cells.
func (that *Board) completesLine(pos entity.Position) bool {
	mark := that.grid[pos.Row][pos.Col]

	for _, line := range WinLines {
		if !lineContains(line, pos) {
			continue
		}

		complete := true
		for _, cell := range line {
			if that.grid[cell.Row][cell.Col] != mark {
				complete = false
				break
			}
		}

		if complete {
			return true
		}
	}

	return false
}

func lineContains(line [entity.BoardSize]entity.Position, pos entity.Position) bool {
	for _, cell := range line {
		if cell == pos {
			return true
		}
	}
	return false
}

// Grid returns a copy of the cells.
func (that *Board) Grid() [entity.BoardSize][entity.BoardSize]entity.Mark {
	return that.grid
}

func (that *Board) Marks() [2]entity.Mark {
	return that.marks
}

// Turn is 0 for the first player and 1 for the second.
func (that *Board) Turn() int {
	return that.turn
}

func (that *Board) CurrentMark() entity.Mark {
	return that.marks[that.turn]
}

func (that *Board) Filled() int {
	return that.filled
}

func (that *Board) Status() entity.Status {
	return that.status
}
