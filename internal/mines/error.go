package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfBounds     = errors.New("position out of bounds")
)

// PositionError reports a position that lies outside the board.
type PositionError struct {
	Pos        Pos
	Rows, Cols int
}

// [PositionError] implements [error]
func (e *PositionError) Error() string {
	return fmt.Sprintf("%v: %v not in %dx%d", ErrOutOfBounds, e.Pos, e.Rows, e.Cols)
}

func (e *PositionError) Unwrap() error {
	return ErrOutOfBounds
}
