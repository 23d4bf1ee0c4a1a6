package tile

import "github.com/kpitt/polyomino/internal/geom"

// Placement is one concrete (orientation, translation) of a piece that fits
// entirely within the board. Cells holds the board-cell index (column 0..N-1)
// for every point the piece covers, and PieceIndex is the piece's input
// index; the matrix builder turns it into the identifier column
// N + PieceIndex.
type Placement struct {
	PieceIndex int
	Cells      []int
}

// PlacementsForOrientation enumerates every Placement of one orientation of
// piece pieceIndex against board, in the deterministic (dx outer, dy inner)
// translation order the exact-cover matrix relies on for reproducible
// solution ordering. Callers sequence orientations across pieces themselves
// (see OrderedOrientations) before calling this per orientation.
func PlacementsForOrientation(board Board, pieceIndex int, orientation Tile) []Placement {
	box := board.BBox()

	var placements []Placement
	for dx := int32(0); dx < box.Width; dx++ {
		for dy := int32(0); dy < box.Height; dy++ {
			cells, ok := tryPlace(board, orientation, dx, dy)
			if !ok {
				continue
			}
			placements = append(placements, Placement{
				PieceIndex: pieceIndex,
				Cells:      cells,
			})
		}
	}
	return placements
}

// tryPlace translates orientation so its (already-normalized) origin lands
// at (dx, dy), and reports the board-cell indices it covers if every
// translated point lies on the board.
func tryPlace(board Board, orientation Tile, dx, dy int32) ([]int, bool) {
	cells := make([]int, 0, len(orientation.Points))
	for _, p := range orientation.Points {
		translated := p.Add(geom.New(dx, dy))
		idx, ok := board.CellIndex(translated)
		if !ok {
			return nil, false
		}
		cells = append(cells, idx)
	}
	return cells, true
}
