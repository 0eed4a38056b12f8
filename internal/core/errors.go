package core

import "errors"

// Error taxonomy shared by the board engines. Engine-specific errors wrap
// one of these so callers can test with errors.Is.
var (
	// ErrInvalidConfig is returned when board dimensions or counts cannot
	// produce a playable board.
	ErrInvalidConfig = errors.New("invalid board configuration")

	// ErrOutOfBounds is returned for coordinates outside the board.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrIllegalMove is returned when an operation is not allowed in the
	// current board state.
	ErrIllegalMove = errors.New("illegal move")
)
