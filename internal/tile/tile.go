// Package tile turns ASCII art into canonicalized polyomino shapes and
// enumerates their placements on a board.
//
// A Tile starts out as whatever the ASCII scanner produced, then gets
// normalized: translated so its bounding box sits at the origin and sorted
// into a fixed lexicographic order. Two tiles with the same shape in
// different positions normalize to equal point lists.
package tile

import (
	"sort"

	"github.com/kpitt/polyomino/internal/geom"
)

// Tile is a named, ordered, duplicate-free list of grid cells.
type Tile struct {
	Name   string
	Points []geom.Point
}

// FromASCII scans text left-to-right, top-to-bottom. 'x' places a cell and
// advances the column; '\n' resets the column and advances the row; any
// other character advances the column without placing a cell. The result is
// normalized before it is returned, so a FromASCII tile is always anchored
// at the origin.
func FromASCII(name, text string) Tile {
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

	t := Tile{Name: name, Points: points}
	t.Normalize()
	return t
}

// Len reports the number of cells in the tile.
func (t Tile) Len() int {
	return len(t.Points)
}

// Clone returns a tile with an independent copy of the point slice.
func (t Tile) Clone() Tile {
	points := make([]geom.Point, len(t.Points))
	copy(points, t.Points)
	return Tile{Name: t.Name, Points: points}
}

// Rotate returns a new tile with every point rotated 90 degrees
// counter-clockwise about the origin. The result is not normalized.
func (t Tile) Rotate() Tile {
	out := t.Clone()
	for i, p := range out.Points {
		out.Points[i] = p.Rotate90CCW()
	}
	return out
}

// Mirror returns a new tile reflected across the y-axis. The result is not
// normalized.
func (t Tile) Mirror() Tile {
	out := t.Clone()
	for i, p := range out.Points {
		out.Points[i] = p.MirrorY()
	}
	return out
}

// Translate returns a new tile with every point shifted by (dx, dy).
func (t Tile) Translate(dx, dy int32) Tile {
	out := t.Clone()
	offset := geom.New(dx, dy)
	for i, p := range out.Points {
		out.Points[i] = p.Add(offset)
	}
	return out
}

// Offset returns the top-left corner of the tile's bounding box: the point
// with the minimum X and the minimum Y seen among the tile's points.
func (t Tile) Offset() geom.Point {
	if len(t.Points) == 0 {
		return geom.Point{}
	}
	minX, minY := t.Points[0].X, t.Points[0].Y
	for _, p := range t.Points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
	}
	return geom.New(minX, minY)
}

// BBox returns the tile's bounding box. An empty tile has a zero box.
func (t Tile) BBox() geom.Box {
	if len(t.Points) == 0 {
		return geom.Box{}
	}
	minX, maxX := t.Points[0].X, t.Points[0].X
	minY, maxY := t.Points[0].Y, t.Points[0].Y
	for _, p := range t.Points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return geom.Box{Width: maxX - minX + 1, Height: maxY - minY + 1}
}

// Normalize translates the tile so its bounding box's top-left corner sits
// at the origin, then sorts its points into ascending lexicographic order.
// It mutates t in place and also returns t for chaining.
func (t *Tile) Normalize() *Tile {
	offset := t.Offset()
	if offset != (geom.Point{}) {
		for i, p := range t.Points {
			t.Points[i] = p.Sub(offset)
		}
	}
	sort.Slice(t.Points, func(i, j int) bool {
		return t.Points[i].Less(t.Points[j])
	})
	return t
}

// Normalized returns a normalized copy of t, leaving t untouched.
func (t Tile) Normalized() Tile {
	out := t.Clone()
	out.Normalize()
	return out
}

// Equal reports whether two tiles have identical (already-normalized) point
// lists. It does not normalize its arguments.
func (t Tile) Equal(o Tile) bool {
	if len(t.Points) != len(o.Points) {
		return false
	}
	for i, p := range t.Points {
		if p != o.Points[i] {
			return false
		}
	}
	return true
}
