package entity

import "fmt"

// BoardSize is the length of a row or column.
const BoardSize = 3

// Position addresses one cell of the grid.
type Position struct {
	Row int
	Col int
}

func (that Position) Valid() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}
