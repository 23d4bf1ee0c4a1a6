package tile

import (
	"testing"

	"github.com/kpitt/polyomino/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromASCIINormalizesToOrigin(t *testing.T) {
	tl := FromASCII("T1", "xxx\nx")

	box := tl.BBox()
	assert.Equal(t, geom.Box{Width: 3, Height: 2}, box)

	var minX, minY int32 = 1 << 30, 1 << 30
	for _, p := range tl.Points {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
	}
	assert.Zero(t, minX)
	assert.Zero(t, minY)
}

func TestFromASCIIIgnoresNonXCharacters(t *testing.T) {
	tl := FromASCII("dotted", "x.x\n.x.")
	assert.ElementsMatch(t, []geom.Point{
		geom.New(0, 0), geom.New(2, 0), geom.New(1, 1),
	}, tl.Points)
}

func TestNormalizeIsSortedAscending(t *testing.T) {
	tl := FromASCII("L", "x\nx\nxx")
	for i := 1; i < len(tl.Points); i++ {
		assert.True(t, tl.Points[i-1].Less(tl.Points[i]) || tl.Points[i-1] == tl.Points[i])
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	tl := FromASCII("L", "xxx\nx  \nx  ")
	rotated := tl
	for range 4 {
		rotated = rotated.Rotate()
	}
	rotated.Normalize()
	assert.True(t, tl.Normalized().Equal(rotated))
}

func TestMirrorTwiceIsIdentity(t *testing.T) {
	tl := FromASCII("L", "xxx\nx  \nx  ")
	mirrored := tl.Mirror().Mirror()
	mirrored.Normalize()
	assert.True(t, tl.Normalized().Equal(mirrored))
}

func TestOrientationsLTetrominoHasFourUniqueOrientations(t *testing.T) {
	tl := FromASCII("L", "xxx\nx")
	orientations := Orientations(tl)
	assert.Len(t, orientations, 4)
}

func TestOrientationsSquareHasOneUniqueOrientation(t *testing.T) {
	tl := FromASCII("O", "xx\nxx")
	orientations := Orientations(tl)
	assert.Len(t, orientations, 1)
}

func TestOrientationsDeterministicOrder(t *testing.T) {
	tl := FromASCII("L", "xxx\nx")
	a := Orientations(tl)
	b := Orientations(tl)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.True(t, a[i].Equal(b[i]))
	}
}

func TestBoardCellIndexFollowsScanOrder(t *testing.T) {
	b, err := NewBoard("Board", "xx\nxx")
	require.NoError(t, err)
	assert.Equal(t, 4, b.N())

	idx, ok := b.CellIndex(geom.New(0, 0))
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = b.CellIndex(geom.New(1, 0))
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = b.CellIndex(geom.New(5, 5))
	assert.False(t, ok)
}

func TestPlacementsSkipNonFittingTranslations(t *testing.T) {
	board, err := NewBoard("Board", "xxx")
	require.NoError(t, err)

	piece := FromASCII("T1", "xx")
	var placements []Placement
	for _, o := range Orientations(piece) {
		placements = append(placements, PlacementsForOrientation(board, 0, o)...)
	}

	for _, p := range placements {
		assert.Len(t, p.Cells, 2)
		for _, c := range p.Cells {
			assert.GreaterOrEqual(t, c, 0)
			assert.Less(t, c, board.N())
		}
	}
	assert.NotEmpty(t, placements)
}
