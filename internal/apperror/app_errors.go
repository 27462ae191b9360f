package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrIllegalMove  = errors.New("illegal move")
	ErrOutOfRange   = fmt.Errorf("%w: position is out of range", ErrIllegalMove)
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrIllegalMove)

	ErrInvalidMark = errors.New("mark must be a single printable symbol")
	ErrSameMarks   = errors.New("players must use different marks")
)
