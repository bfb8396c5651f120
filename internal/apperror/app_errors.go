package apperror

import "errors"

var (
	ErrGameOver          = errors.New("game is already over")
	ErrGameIsNotStarted  = errors.New("game is not started")
	ErrColumnFull        = errors.New("column is full")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrOutOfBounds       = errors.New("cell is out of bounds")
	ErrInvalidPlayer     = errors.New("invalid player")
	ErrInvalidDimensions = errors.New("invalid board dimensions")
)
