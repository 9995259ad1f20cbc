package components

import "errors"

var (
	ErrOutOfBounds  = errors.New("coordinates are out of bounds")
	ErrOccupiedCell = errors.New("cell is already occupied")
	ErrEmptyMove    = errors.New("move can't be built from an empty sequence of steps")
	ErrUnknownKind  = errors.New("unknown figure kind")
	ErrBoardSize    = errors.New("board extent must be at least 1")
)
