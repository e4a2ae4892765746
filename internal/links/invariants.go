package links

import "fmt"

// CheckInvariants verifies the structural invariants of an array with
// nothing covered (spec: header ring consistency, row/col linkage
// symmetry, and strict-column sizes matching actual vertical chain
// lengths). It checks the links of every non-header node, linked or not,
// so it reports an error while any column is covered (for example while
// rows are forced with RemoveRow). It is O(n) over all nodes and is called
// directly (the tests do so); DebugAssertions does not invoke it.
func (la *DancingLinkArray) CheckInvariants() error {
	for i := la.numHeaders(); i < len(la.nodes); i++ {
		n := la.nodes[i]
		if la.nodes[n.l].r != i {
			return fmt.Errorf("links: node %d: left neighbour %d does not point back", i, n.l)
		}
		if la.nodes[n.r].l != i {
			return fmt.Errorf("links: node %d: right neighbour %d does not point back", i, n.r)
		}
		if la.nodes[n.u].d != i {
			return fmt.Errorf("links: node %d: up neighbour %d does not point back", i, n.u)
		}
		if la.nodes[n.d].u != i {
			return fmt.Errorf("links: node %d: down neighbour %d does not point back", i, n.d)
		}
		if n.col < 0 || n.col >= la.numCols() {
			return fmt.Errorf("links: node %d: col %d out of range", i, n.col)
		}
		if n.row < 0 || n.row >= len(la.rowEntries) {
			return fmt.Errorf("links: node %d: row %d out of range", i, n.row)
		}
	}

	for c := 0; c < la.numStrictCols; c++ {
		h := la.header(c)
		count := uint64(0)
		for v := la.nodes[h].d; v != h; v = la.nodes[v].d {
			count++
		}
		if count != la.sizes[c] {
			return fmt.Errorf("links: column %d: size %d does not match chain length %d", c, la.sizes[c], count)
		}
	}

	seen := make(map[nodeIdx]bool)
	h := rootIdx
	for {
		if h != rootIdx && !la.isStrictHeader(h) {
			return fmt.Errorf("links: header ring contains optional header %d", h)
		}
		if seen[h] {
			return fmt.Errorf("links: header ring is not a simple cycle at %d", h)
		}
		seen[h] = true
		h = la.nodes[h].r
		if h == rootIdx {
			break
		}
	}

	return nil
}
