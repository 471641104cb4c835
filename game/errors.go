package game

import "errors"

// Game errors
var (
	ErrInvalidGridSize = errors.New("grid size must be at least 1")
	ErrTileOutOfRange  = errors.New("tile out of range")
	ErrTilesOverlap    = errors.New("pieces must start on distinct tiles")
	ErrInvalidCop      = errors.New("invalid cop index")
	ErrInvalidHops     = errors.New("hop limit must be at least 1")
	ErrInvalidRounds   = errors.New("round limit must be at least 1")
	ErrNotInitialized  = errors.New("session not initialized")
)
