package game

import (
	"context"
	"testing"

	"github.com/kpitt/polyomino/internal/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameEmptyBoardReturnsWarning(t *testing.T) {
	g, err := NewGame("", []PieceInput{{Name: "T1", ASCII: "x"}})
	require.ErrorIs(t, err, ErrEmptyBoard)
	require.NotNil(t, g)

	m := g.BuildMatrix()
	dl := solver.New(m)
	_, ok := dl.NextSolution(context.Background())
	assert.False(t, ok)
}

func TestTromninoAndMonominoDecodesEveryCell(t *testing.T) {
	g, err := NewGame("xx\nxx", []PieceInput{
		{Name: "T1", ASCII: "xx\nx"},
		{Name: "T2", ASCII: "x"},
	})
	require.NoError(t, err)

	m := g.BuildMatrix()
	dl := solver.New(m)
	solutions := dl.AllSolutions(context.Background())
	require.Len(t, solutions, 4)

	for _, solution := range solutions {
		decoded := g.Decode(m, solution)
		require.Len(t, decoded, 4)
		counts := map[int]int{}
		for _, pieceIdx := range decoded {
			require.NotEqual(t, -1, pieceIdx)
			counts[pieceIdx]++
		}
		assert.Equal(t, 3, counts[0])
		assert.Equal(t, 1, counts[1])
	}
}

// irregular41CellBoard and its eight pieces are ported directly from the
// original implementation's "basics" test: a 41-cell board spread across 7
// rows with a hole and an isolated tail.
const irregular41CellBoard = "xxxxxx \n xxxxx \nxxxxxxx\nxxxxxxx\nxxxxxxx\nxxxxx x\nxxx    \n"

var irregular41CellPieces = []PieceInput{
	{Name: "0", ASCII: "xxx \n  xx\n"},
	{Name: "1", ASCII: "xxxx\nx   \n"},
	{Name: "2", ASCII: "xxx\nx x\n"},
	{Name: "3", ASCII: "xxx\nxx \n"},
	{Name: "4", ASCII: "xxx\nxxx\n"},
	{Name: "5", ASCII: "xxxx\n x  \n"},
	{Name: "6", ASCII: "x  \nxxx\n  x\n"},
	{Name: "7", ASCII: "  x\n  x\nxxx\n"},
}

func TestIrregular41CellBoardHas68Solutions(t *testing.T) {
	g, err := NewGame(irregular41CellBoard, irregular41CellPieces)
	require.NoError(t, err)
	assert.Equal(t, 41, g.Board.N())

	m := g.BuildMatrix()
	dl := solver.New(m)
	solutions := dl.AllSolutions(context.Background())
	require.Len(t, solutions, 68)

	pieceSizes := make([]int, len(g.Pieces))
	for i, p := range g.Pieces {
		pieceSizes[i] = p.Len()
	}

	for _, solution := range solutions {
		decoded := g.Decode(m, solution)
		require.Len(t, decoded, 41)

		counts := make([]int, len(g.Pieces))
		for _, pieceIdx := range decoded {
			require.GreaterOrEqual(t, pieceIdx, 0)
			require.Less(t, pieceIdx, len(g.Pieces))
			counts[pieceIdx]++
		}
		for i, want := range pieceSizes {
			assert.Equal(t, want, counts[i], "piece %d cell count", i)
		}
	}
}

func TestInfeasibleBoardHasNoSolutions(t *testing.T) {
	g, err := NewGame("xxx", []PieceInput{{Name: "T1", ASCII: "xx"}})
	require.NoError(t, err)

	m := g.BuildMatrix()
	dl := solver.New(m)
	solutions := dl.AllSolutions(context.Background())
	assert.Empty(t, solutions)
}
