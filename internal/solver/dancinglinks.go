// Package solver implements Knuth's Algorithm X over a dancing-links
// representation of an exact-cover matrix, with the "choose column with
// fewest remaining ones" (S-heuristic) column selection.
//
// Unlike a plain recursive implementation, the search here threads its own
// explicit stack of frames so that NextSolution can pause after yielding a
// solution and resume the search exactly where it left off on the next
// call, without a goroutine or coroutine runtime.
package solver

import (
	"context"

	"github.com/kpitt/polyomino/internal/xcover"
)

// Node is one 1-entry in the exact-cover matrix: a single cell belonging to
// both a row and a column, linked to its four neighbors.
type Node struct {
	Left, Right, Up, Down *Node
	Column                *ColumnNode
	RowID                 int
}

// ColumnNode is a column header: the anchor of a column's vertical list, and
// a node in the header's horizontal list.
type ColumnNode struct {
	Node
	Size  int // remaining nodes in this column
	Index int // the exact-cover column index (0..N+P-1) this header represents
}

// state is the lifecycle of a DancingLinks search: Fresh until the first
// NextSolution call, Running while solutions remain, Exhausted once the
// search tree is fully drained. Exhausted is terminal.
type state int

const (
	stateFresh state = iota
	stateRunning
	stateExhausted
)

// frame is one level of the explicit search stack. col is the column chosen
// at this level (already covered); row is the candidate currently selected
// from that column, or nil if no candidate has been tried yet at this level.
type frame struct {
	col *ColumnNode
	row *Node
}

// DancingLinks is a resumable Algorithm X search over one exact-cover
// matrix. A DancingLinks instance is not safe for concurrent use; build an
// independent instance per concurrent search.
type DancingLinks struct {
	header  *ColumnNode
	columns []*ColumnNode
	rows    []*Node // first node of each row, indexed by row id

	selected []int
	stack    []*frame
	state    state

	stats SearchStats
}

// New builds the dancing-links structure for m. All nodes are allocated
// once here; Cover and Uncover only relink existing nodes.
func New(m *xcover.Matrix) *DancingLinks {
	dl := &DancingLinks{}
	dl.build(m)
	return dl
}

func (dl *DancingLinks) build(m *xcover.Matrix) {
	dl.header = &ColumnNode{Index: -1}
	dl.header.Left = &dl.header.Node
	dl.header.Right = &dl.header.Node

	numCols := m.NumColumns()
	dl.columns = make([]*ColumnNode, numCols)
	for i := range numCols {
		col := &ColumnNode{Index: i}
		col.Up = &col.Node
		col.Down = &col.Node
		col.Column = col
		dl.columns[i] = col

		col.Left = dl.header.Left
		col.Right = &dl.header.Node
		dl.header.Left.Right = &col.Node
		dl.header.Left = &col.Node
	}

	dl.rows = make([]*Node, len(m.Rows))
	for rowID, cols := range m.Rows {
		dl.rows[rowID] = dl.addRow(rowID, cols)
	}
}

// addRow creates one node per column in cols, links them vertically into
// their columns and horizontally into a circular row, and returns the first
// node of the row.
func (dl *DancingLinks) addRow(rowID int, cols []int) *Node {
	nodes := make([]*Node, len(cols))
	for i, colIdx := range cols {
		col := dl.columns[colIdx]
		node := &Node{Column: col, RowID: rowID}
		nodes[i] = node

		node.Down = &col.Node
		node.Up = col.Up
		col.Up.Down = node
		col.Up = node
		col.Size++
	}

	n := len(nodes)
	for i := range nodes {
		nodes[i].Left = nodes[(i+n-1)%n]
		nodes[i].Right = nodes[(i+1)%n]
	}
	return nodes[0]
}

// cover removes a column and every row that intersects it, mirroring
// Knuth's dancing-links cover operation.
func (dl *DancingLinks) cover(col *ColumnNode) {
	col.Right.Left = col.Left
	col.Left.Right = col.Right

	for i := col.Down; i != &col.Node; i = i.Down {
		for j := i.Right; j != i; j = j.Right {
			j.Down.Up = j.Up
			j.Up.Down = j.Down
			j.Column.Size--
		}
	}
}

// uncover restores a column and every row cover removed, in the exact
// reverse order of cover, so that cover followed by uncover leaves every
// node's links bit-identical to their pre-cover values.
func (dl *DancingLinks) uncover(col *ColumnNode) {
	for i := col.Up; i != &col.Node; i = i.Up {
		for j := i.Left; j != i; j = j.Left {
			j.Column.Size++
			j.Down.Up = j
			j.Up.Down = j
		}
	}

	col.Right.Left = &col.Node
	col.Left.Right = &col.Node
}

// chooseColumn picks the column with the fewest remaining nodes, breaking
// ties by smaller column index so the search order is deterministic.
func (dl *DancingLinks) chooseColumn() *ColumnNode {
	var chosen *ColumnNode
	for col := dl.header.Right; col != &dl.header.Node; col = col.Right {
		c := col.Column
		if chosen == nil || c.Size < chosen.Size {
			chosen = c
		}
	}
	return chosen
}

func (dl *DancingLinks) headerEmpty() bool {
	return dl.header.Right == &dl.header.Node
}

// coverRow covers every other column touched by the row starting at r.
func (dl *DancingLinks) coverRow(r *Node) {
	for j := r.Right; j != r; j = j.Right {
		dl.cover(j.Column)
	}
}

// uncoverRow undoes coverRow in reverse order.
func (dl *DancingLinks) uncoverRow(r *Node) {
	for j := r.Left; j != r; j = j.Left {
		dl.uncover(j.Column)
	}
}

// NextSolution resumes the search and returns the next solution found, as a
// list of row ids in selection order. It returns (nil, false) once the
// search tree is exhausted; subsequent calls keep returning (nil, false).
// ctx is checked cooperatively at each descent: if it is done, the search
// stops promptly, returns (nil, false), and transitions to Exhausted.
func (dl *DancingLinks) NextSolution(ctx context.Context) ([]int, bool) {
	if dl.state == stateExhausted {
		return nil, false
	}

	if dl.state == stateFresh {
		dl.state = stateRunning
		if dl.headerEmpty() {
			// Trivial matrix (no columns at all): the empty selection is
			// the unique solution, exactly once.
			dl.state = stateExhausted
			return []int{}, true
		}
		col := dl.chooseColumn()
		dl.cover(col)
		dl.stack = append(dl.stack, &frame{col: col})
	}

	for len(dl.stack) > 0 {
		if err := ctx.Err(); err != nil {
			dl.state = stateExhausted
			return nil, false
		}

		top := dl.stack[len(dl.stack)-1]

		if top.row != nil {
			// Resuming: back out of the candidate we previously selected
			// and try the next one in the same column.
			dl.uncoverRow(top.row)
			dl.selected = dl.selected[:len(dl.selected)-1]
			top.row = top.row.Down
		} else {
			top.row = top.col.Down
		}

		if top.row == &top.col.Node {
			// No more candidates in this column: backtrack a level.
			dl.uncover(top.col)
			dl.stack = dl.stack[:len(dl.stack)-1]
			dl.stats.BacktrackCount++
			continue
		}

		dl.stats.NodesVisited++
		dl.selected = append(dl.selected, top.row.RowID)
		dl.coverRow(top.row)

		if dl.headerEmpty() {
			solution := make([]int, len(dl.selected))
			copy(solution, dl.selected)
			dl.stats.SolutionsFound++
			return solution, true
		}

		next := dl.chooseColumn()
		dl.cover(next)
		dl.stack = append(dl.stack, &frame{col: next})
	}

	dl.state = stateExhausted
	return nil, false
}

// AllSolutions drains NextSolution until exhaustion and returns every
// solution found, in the same order NextSolution would have produced them.
func (dl *DancingLinks) AllSolutions(ctx context.Context) [][]int {
	var all [][]int
	for {
		solution, ok := dl.NextSolution(ctx)
		if !ok {
			return all
		}
		all = append(all, solution)
	}
}

// Row returns the column indices touched by row id, in construction order
// (the piece column last). It is used by decoders that need to map a
// solution's row ids back to board cells and piece indices.
func (dl *DancingLinks) Row(rowID int) []int {
	first := dl.rows[rowID]
	cols := []int{first.Column.Index}
	for n := first.Right; n != first; n = n.Right {
		cols = append(cols, n.Column.Index)
	}
	return cols
}

// NumRows returns the number of rows in the underlying matrix.
func (dl *DancingLinks) NumRows() int {
	return len(dl.rows)
}
