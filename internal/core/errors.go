package core

import "errors"

// Sentinel errors for grid and layout operations.
var (
	// ErrEmptyGrid indicates a grid with non-positive width or height.
	ErrEmptyGrid = errors.New("core: grid must have positive width and height")
	// ErrOutOfBounds indicates a queried or mutated cell outside the grid.
	ErrOutOfBounds = errors.New("core: position outside grid bounds")
	// ErrBlockedPosition indicates a required position sits on a blocked cell.
	ErrBlockedPosition = errors.New("core: required position is blocked")
)
