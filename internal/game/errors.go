package game

import "errors"

var (
	// ErrEmptyBoard indicates a board with zero cells. NewGame still
	// returns a usable (if pointless) Game; BuildMatrix on it produces a
	// matrix with no rows and the solver reports no solutions, unless there
	// are also no pieces, in which case the empty selection is reported once.
	ErrEmptyBoard = errors.New("game: board has no cells")
)
