// Package game wires the geometry, tile, exact-cover, and solver packages
// together behind the surface the original from_shapes / build_matrix /
// decode API exposed: parse named ASCII shapes, build the exact-cover
// matrix, and decode a solver solution back into a board coloring.
package game

import (
	"github.com/kpitt/polyomino/internal/tile"
	"github.com/kpitt/polyomino/internal/xcover"
)

// PieceInput is one named ASCII piece, as supplied to NewGame.
type PieceInput struct {
	Name  string
	ASCII string
}

// Game holds a board and its pieces, indexed in the order they were given;
// that order fixes each piece's column (N + piece_index) in every matrix
// built from this Game.
type Game struct {
	Board  tile.Board
	Pieces []tile.Tile
}

// NewGame parses a board and a list of named pieces from ASCII art. It
// returns ErrEmptyBoard if the board has no cells; the Game is still
// returned in that case so a caller that only wants to warn can proceed.
func NewGame(boardASCII string, pieces []PieceInput) (*Game, error) {
	board, err := tile.NewBoard("Board", boardASCII)
	if err != nil {
		return nil, err
	}

	tiles := make([]tile.Tile, len(pieces))
	for i, p := range pieces {
		tiles[i] = tile.FromASCII(p.Name, p.ASCII)
	}

	g := &Game{Board: board, Pieces: tiles}
	if board.N() == 0 {
		return g, ErrEmptyBoard
	}
	return g, nil
}

// BuildMatrix constructs the exact-cover matrix for this game's board and
// pieces.
func (g *Game) BuildMatrix() *xcover.Matrix {
	return xcover.Build(g.Board, g.Pieces)
}

// Decode maps a solver solution (a list of matrix row ids) back to a
// board-sized slice where entry k is the piece index assigned to board
// cell k. Board cells untouched by the solution (only possible for an
// incomplete, non-exact-cover solution) are left as -1.
func (g *Game) Decode(m *xcover.Matrix, solution []int) []int {
	n := g.Board.N()
	result := make([]int, n)
	for i := range result {
		result[i] = -1
	}

	for _, rowID := range solution {
		cols := m.Rows[rowID]
		if len(cols) == 0 {
			continue
		}
		pieceCol := cols[len(cols)-1]
		pieceIndex := pieceCol - n
		for _, cellIdx := range cols[:len(cols)-1] {
			result[cellIdx] = pieceIndex
		}
	}
	return result
}
