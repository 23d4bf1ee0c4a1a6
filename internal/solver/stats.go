package solver

// MatrixInfo summarizes the shape of the exact-cover matrix underlying a
// DancingLinks search: column and row counts, total node count, and the
// fraction of the dense N+P-by-rows matrix that is actually populated.
type MatrixInfo struct {
	Columns    int
	Rows       int
	TotalNodes int
	Density    float64
}

// Info computes a MatrixInfo snapshot for dl. It is read-only and safe to
// call between NextSolution calls.
func (dl *DancingLinks) Info() MatrixInfo {
	info := MatrixInfo{Columns: len(dl.columns), Rows: len(dl.rows)}

	for _, row := range dl.rows {
		if row == nil {
			continue
		}
		nodes := 1
		for n := row.Right; n != row; n = n.Right {
			nodes++
		}
		info.TotalNodes += nodes
	}

	if info.Columns > 0 && info.Rows > 0 {
		info.Density = float64(info.TotalNodes) / float64(info.Columns*info.Rows) * 100.0
	}
	return info
}

// SearchStats accumulates counters over the course of one or more
// NextSolution calls, for callers that want visibility into how much
// backtracking a puzzle required.
type SearchStats struct {
	NodesVisited   int
	BacktrackCount int
	SolutionsFound int
}

// Stats returns a snapshot of the search counters accumulated so far across
// every NextSolution call made on dl.
func (dl *DancingLinks) Stats() SearchStats {
	return dl.stats
}
