package tile

import "errors"

var (
	// ErrBoardTooLarge indicates a board whose bounding box no longer fits
	// comfortably in the int32 coordinates used throughout the engine.
	ErrBoardTooLarge = errors.New("tile: board dimensions exceed supported coordinate width")
)

const maxBoardDimension = 1 << 20
