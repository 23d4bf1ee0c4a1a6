package tile

import (
	"sort"
	"strconv"
	"strings"

	"github.com/kpitt/polyomino/internal/geom"
	"github.com/kpitt/polyomino/internal/set"
)

// Orientations returns the unique normalized shapes in the D4 orbit of t,
// ordered lexicographically by point list. Applying rotate four times and
// mirror-then-rotate-three-times to a normalized copy visits all 8 elements
// of the dihedral group; symmetric pieces collapse to fewer than 8 distinct
// shapes once normalized and deduplicated.
func Orientations(t Tile) []Tile {
	seen := set.NewSet[string]()
	variants := make([]Tile, 0, 8)

	cur := t.Normalized()
	for step := range 8 {
		if step == 4 {
			cur = cur.Mirror()
		} else {
			cur = cur.Rotate()
		}
		cur.Normalize()

		key := pointsKey(cur.Points)
		if seen.Contains(key) {
			continue
		}
		seen.Add(key)
		variants = append(variants, cur.Clone())
	}

	sort.Slice(variants, func(i, j int) bool {
		return lessPoints(variants[i].Points, variants[j].Points)
	})
	return variants
}

// PieceOrientation pairs an input piece's index with one of its canonical
// orientations. OrderedOrientations uses it to sequence every piece's
// orientations into a single global emission order.
type PieceOrientation struct {
	PieceIndex  int
	Orientation Tile
}

// OrderedOrientations returns every (piece, orientation) pair across pieces,
// ordered by (orientation name, orientation point list, piece index) — the
// same global ordering the original implementation derives by collecting
// every piece's orientations into one set and sorting it, rather than
// grouping rows by input piece index. Pieces that share a name interleave
// by shape and only fall back to piece index as a last-resort tiebreak.
func OrderedOrientations(pieces []Tile) []PieceOrientation {
	var entries []PieceOrientation
	for pieceIndex, piece := range pieces {
		for _, o := range Orientations(piece) {
			entries = append(entries, PieceOrientation{PieceIndex: pieceIndex, Orientation: o})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Orientation.Name != b.Orientation.Name {
			return a.Orientation.Name < b.Orientation.Name
		}
		if lessPoints(a.Orientation.Points, b.Orientation.Points) {
			return true
		}
		if lessPoints(b.Orientation.Points, a.Orientation.Points) {
			return false
		}
		return a.PieceIndex < b.PieceIndex
	})
	return entries
}

// lessPoints orders two point lists lexicographically, point by point; when
// one list is a prefix of the other, the shorter list sorts first.
// OrderedOrientations can compare orientations of different pieces that
// share a name, so the lists need not be the same length.
func lessPoints(a, b []geom.Point) bool {
	for i := range min(len(a), len(b)) {
		if a[i] != b[i] {
			return a[i].Less(b[i])
		}
	}
	return len(a) < len(b)
}

// pointsKey renders a point list as a string suitable for set membership.
// It is used only to test equality between orientations, never to order
// them (see lessPoints for that).
func pointsKey(points []geom.Point) string {
	var b strings.Builder
	for _, p := range points {
		b.WriteString(strconv.FormatInt(int64(p.X), 10))
		b.WriteByte(',')
		b.WriteString(strconv.FormatInt(int64(p.Y), 10))
		b.WriteByte(';')
	}
	return b.String()
}
