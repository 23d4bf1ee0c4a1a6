// Package geom holds the small value types shared by the tile canonicalizer
// and the exact-cover matrix builder: integer grid points and the handful of
// arithmetic operations the dihedral-group transforms need.
package geom

// Point is an integer grid coordinate. It is a plain value type: copy it,
// don't point to it.
type Point struct {
	X, Y int32
}

// New returns the point (x, y).
func New(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Add returns p+o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p-o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Less orders points lexicographically by (X, Y), used to keep a tile's
// point list in a fixed, deterministic total order after normalization.
func (p Point) Less(o Point) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}

// Rotate90CCW rotates p 90 degrees counter-clockwise about the origin:
// (x, y) -> (y, -x).
func (p Point) Rotate90CCW() Point {
	return Point{X: p.Y, Y: -p.X}
}

// MirrorY reflects p across the y-axis: (x, y) -> (-x, y).
func (p Point) MirrorY() Point {
	return Point{X: -p.X, Y: p.Y}
}

// Box is an axis-aligned width/height pair, as returned by BBox.
type Box struct {
	Width, Height int32
}
