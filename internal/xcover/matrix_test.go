package xcover

import (
	"testing"

	"github.com/kpitt/polyomino/internal/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildColumnCount(t *testing.T) {
	board, err := tile.NewBoard("Board", "xx\nxx")
	require.NoError(t, err)

	pieces := []tile.Tile{
		tile.FromASCII("T1", "xx\nx"),
		tile.FromASCII("T2", "x"),
	}

	m := Build(board, pieces)
	assert.Equal(t, 4, m.NumBoardCells)
	assert.Equal(t, 2, m.NumPieces)
	assert.Equal(t, 6, m.NumColumns())
}

func TestBuildRowsReferenceOnlyValidColumns(t *testing.T) {
	board, err := tile.NewBoard("Board", "xx\nxx")
	require.NoError(t, err)

	pieces := []tile.Tile{
		tile.FromASCII("T1", "xx\nx"),
		tile.FromASCII("T2", "x"),
	}

	m := Build(board, pieces)
	require.NotEmpty(t, m.Rows)

	for _, row := range m.Rows {
		for _, col := range row {
			assert.GreaterOrEqual(t, col, 0)
			assert.Less(t, col, m.NumColumns())
		}
		pieceCol := row[len(row)-1]
		assert.GreaterOrEqual(t, pieceCol, m.NumBoardCells)
	}
}

func TestBuildRowLengthMatchesPieceSizePlusOne(t *testing.T) {
	board, err := tile.NewBoard("Board", "xxxxx\nxxxxx\nxxxxx\nxxxxx")
	require.NoError(t, err)

	pieces := []tile.Tile{
		tile.FromASCII("T1", "xxxx\n x  "),
	}
	m := Build(board, pieces)
	for _, row := range m.Rows {
		assert.Len(t, row, pieces[0].Len()+1)
	}
}
