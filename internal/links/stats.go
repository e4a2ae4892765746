package links

// SearchStats tracks how much work a SolveOneWithStats call did, mirroring
// the kind of instrumentation a caller displaying search progress wants —
// not part of the exact-cover contract itself.
type SearchStats struct {
	NodesVisited   int
	BacktrackCount int
	SolutionsFound int
}

// SolveOneWithStats behaves exactly like SolveOne but also reports how many
// search-tree nodes were visited and how many times the search backtracked.
func (la *DancingLinkArray) SolveOneWithStats() ([]int, bool, *SearchStats) {
	stats := &SearchStats{}
	sol, found := la.solveOneStats(stats)
	return sol, found, stats
}

func (la *DancingLinkArray) solveOneStats(stats *SearchStats) ([]int, bool) {
	stats.NodesVisited++

	c, ok := la.LowestStrictHeader()
	if !ok {
		stats.SolutionsFound++
		return []int{}, true
	}

	for v := la.nodes[c].d; v != c; v = la.nodes[v].d {
		la.RemoveRow(v)
		sol, found := la.solveOneStats(stats)
		la.InsertRow(v)

		if found {
			return append(sol, la.nodes[v].row), true
		}
		stats.BacktrackCount++
	}
	return nil, false
}
