package tile

import "github.com/kpitt/polyomino/internal/geom"

// Board is a Tile whose cells define the target region of a puzzle. Unlike a
// piece, a board is never re-normalized after construction: its points keep
// the index they were scanned in, and that scan-order index is the matrix
// column identifier used throughout the exact-cover reduction.
type Board struct {
	Shape Tile
	index map[geom.Point]int
}

// NewBoard builds a Board from ASCII art using the same scan rule as
// FromASCII, except the board keeps its original scan-order indices instead
// of being re-sorted: cell index 0 is whichever 'x' appeared first in the
// text, not whichever point sorts first.
func NewBoard(name, text string) (Board, error) {
	var points []geom.Point
	var row, col int32

	for _, ch := range text {
		switch ch {
		case 'x':
			points = append(points, geom.New(col, row))
			col++
		case '\n':
			row++
			col = 0
		default:
			col++
		}
	}

	minX, minY := boundsOf(points)
	offset := geom.New(minX, minY)
	for i, p := range points {
		points[i] = p.Sub(offset)
	}

	b := Board{Shape: Tile{Name: name, Points: points}}
	if err := b.checkDimensions(); err != nil {
		return Board{}, err
	}
	b.buildIndex()
	return b, nil
}

func boundsOf(points []geom.Point) (minX, minY int32) {
	if len(points) == 0 {
		return 0, 0
	}
	minX, minY = points[0].X, points[0].Y
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
	}
	return minX, minY
}

func (b *Board) checkDimensions() error {
	box := b.Shape.BBox()
	if box.Width > maxBoardDimension || box.Height > maxBoardDimension {
		return ErrBoardTooLarge
	}
	return nil
}

func (b *Board) buildIndex() {
	b.index = make(map[geom.Point]int, len(b.Shape.Points))
	for i, p := range b.Shape.Points {
		b.index[p] = i
	}
}

// N returns the number of cells on the board.
func (b Board) N() int {
	return len(b.Shape.Points)
}

// CellIndex returns the matrix column for the given board point, and
// whether that point is actually part of the board.
func (b Board) CellIndex(p geom.Point) (int, bool) {
	idx, ok := b.index[p]
	return idx, ok
}

// BBox returns the board's bounding box.
func (b Board) BBox() geom.Box {
	return b.Shape.BBox()
}
