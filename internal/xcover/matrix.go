// Package xcover builds the exact-cover incidence matrix from a board and a
// set of tile placements: columns 0..N-1 are board cells, columns N..N+P-1
// are piece identifiers, and each row is one placement's column set.
package xcover

import "github.com/kpitt/polyomino/internal/tile"

// Matrix is the logical exact-cover matrix: a flat list of rows, each row a
// sorted-by-construction list of column indices with the piece column last.
// A row's position in Rows is its row identifier.
type Matrix struct {
	// NumBoardCells is N, the number of board-cell columns.
	NumBoardCells int
	// NumPieces is P, the number of piece columns.
	NumPieces int
	// Rows holds one entry per placement, in construction order.
	Rows [][]int
}

// NumColumns returns N + P, the total column count.
func (m *Matrix) NumColumns() int {
	return m.NumBoardCells + m.NumPieces
}

// Build constructs the matrix for a board and an ordered list of pieces.
// Rows are grouped by tile.OrderedOrientations' global (name, points, piece
// index) ordering, not by input piece index, and within each orientation
// translations are enumerated dx outer, dy inner. Both choices match the
// original implementation's single global orientation set rather than a
// per-piece row block, and are load-bearing for reproducible solution
// streams.
func Build(board tile.Board, pieces []tile.Tile) *Matrix {
	n := board.N()
	p := len(pieces)
	m := &Matrix{NumBoardCells: n, NumPieces: p}

	for _, entry := range tile.OrderedOrientations(pieces) {
		for _, placement := range tile.PlacementsForOrientation(board, entry.PieceIndex, entry.Orientation) {
			row := make([]int, 0, len(placement.Cells)+1)
			row = append(row, placement.Cells...)
			row = append(row, n+placement.PieceIndex)
			m.Rows = append(m.Rows, row)
		}
	}

	return m
}
