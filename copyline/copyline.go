package copyline

// CopyLine embeds one source vertex as an L-shaped path of grid cells.
//
// Fields are 1-based positional coordinates in an abstract slot grid:
// Vslot is the vertical slot (column), Hslot the horizontal slot (row)
// at which the vertical and horizontal segments meet, Vstart/Vstop
// bound the vertical segment, and Hstop bounds the horizontal one.
// Invariant: Vstart <= Hslot <= Vstop and Hstop >= Vslot.
type CopyLine struct {
	Vertex int
	Vslot  int
	Hslot  int
	Vstart int
	Vstop  int
	Hstop  int
}

// Loc is one emitted grid cell: 0-based row, column, and weight.
type Loc struct {
	Row, Col, Weight int
}

// CenterLocation returns the (row, col) where this copy-line's vertical
// and horizontal segments meet.
func (l CopyLine) CenterLocation(padding, spacing int) (row, col int) {
	row = spacing*(l.Hslot-1) + padding + 2
	col = spacing*(l.Vslot-1) + padding + 1
	return row, col
}

// Locations returns the dense list of cells along this copy-line's L,
// for the King's-subgraph (KSG) lattice. Cell count is always odd.
func (l CopyLine) Locations(padding, spacing int) []Loc {
	return l.locations(padding, spacing, false)
}

// LocationsTriangular returns the dense cell list for the triangular
// lattice. It differs from Locations only in the inclusive upper bound
// of the Right (horizontal) sub-segment: triangular mode keeps one
// additional cell at the endpoint so that crossing gadgets on the
// triangular lattice have a pin to anchor to.
func (l CopyLine) LocationsTriangular(padding, spacing int) []Loc {
	return l.locations(padding, spacing, true)
}

func (l CopyLine) locations(padding, spacing int, triangular bool) []Loc {
	var locs []Loc
	nline := 0

	i := spacing*(l.Hslot-1) + padding + 2
	j := spacing*(l.Vslot-1) + padding + 1

	// Up: vertical segment above the center.
	if l.Vstart < l.Hslot {
		nline++
		start := i + spacing*(l.Vstart-l.Hslot) + 1
		for row := start; row <= i; row++ {
			w := 2
			if row == start {
				w = 1
			}
			locs = append(locs, Loc{Row: row, Col: j, Weight: w})
		}
	}

	// Down: vertical segment below the center.
	if l.Vstop > l.Hslot {
		nline++
		stop := i + spacing*(l.Vstop-l.Hslot) - 1
		for row := i; row <= stop; row++ {
			if row == i {
				// The first step down is offset by (1,1): it coincides
				// with the right segment's corner instead of the bare
				// center column.
				locs = append(locs, Loc{Row: row + 1, Col: j + 1, Weight: 2})
				continue
			}
			w := 2
			if row == stop {
				w = 1
			}
			locs = append(locs, Loc{Row: row, Col: j, Weight: w})
		}
	}

	// Right: horizontal segment.
	if l.Hstop > l.Vslot {
		nline++
		stopCol := j + spacing*(l.Hstop-l.Vslot) - 1
		if triangular {
			stopCol++
		}
		for col := j + 2; col <= stopCol; col++ {
			w := 2
			if col == stopCol {
				w = 1
			}
			locs = append(locs, Loc{Row: i, Col: col, Weight: w})
		}
	}

	// Center companion: always present, weight = number of emitted
	// sub-segments (at least 1, per the reference's max(nline, 1) rule
	// for the degenerate single-cell copy-line).
	if nline < 1 {
		nline = 1
	}
	locs = append(locs, Loc{Row: i, Col: j + 1, Weight: nline})

	return locs
}

// UnweightedOverhead returns the KSG-unweighted MIS overhead contributed
// by this copy-line alone: floor(count/2).
func (l CopyLine) UnweightedOverhead(padding, spacing int) int {
	return len(l.Locations(padding, spacing)) / 2
}

// TriangularWeightedOverhead returns the closed-form MIS overhead for a
// copy-line under the triangular-weighted lattice:
//
//	(hslot-vstart)*s + (vstop-hslot)*s + max((hstop-vslot)*s - 2, 0)
func (l CopyLine) TriangularWeightedOverhead(spacing int) int {
	s := spacing
	right := (l.Hstop - l.Vslot) * s
	right -= 2
	if right < 0 {
		right = 0
	}
	return (l.Hslot-l.Vstart)*s + (l.Vstop-l.Hslot)*s + right
}

// KSGWeightedOverhead is twice the unweighted overhead, per the
// reference's "weighted-KSG overhead = 2x unweighted" rule.
func (l CopyLine) KSGWeightedOverhead(padding, spacing int) int {
	return 2 * l.UnweightedOverhead(padding, spacing)
}

// RemoveOrder computes, for each step i of vertexOrder, the set of
// vertices whose hslot may be freed because every neighbor that needs
// them has already been placed (or placed at this very step). A vertex
// v is removable at step i = max(own position, last position among all
// its neighbors in vertexOrder).
//
// Used internally by the mapping driver's slot-reuse scan (§4.5 step 2).
func RemoveOrder(numVertices int, edges [][2]int, vertexOrder []int) [][]int {
	if numVertices == 0 {
		return nil
	}
	adj := make([]map[int]bool, numVertices)
	for i := range adj {
		adj[i] = make(map[int]bool)
	}
	for _, e := range edges {
		adj[e[0]][e[1]] = true
		adj[e[1]][e[0]] = true
	}

	pos := make([]int, numVertices)
	for i, v := range vertexOrder {
		pos[v] = i
	}

	removeStep := make([]int, numVertices)
	for _, v := range vertexOrder {
		step := pos[v]
		for w := range adj[v] {
			if pos[w] > step {
				step = pos[w]
			}
		}
		removeStep[v] = step
	}

	out := make([][]int, len(vertexOrder))
	for v, step := range removeStep {
		out[step] = append(out[step], v)
	}
	return out
}
