package mapping

import (
	"fmt"

	"github.com/CodingThrust/unitdiskmapping/copyline"
	"github.com/CodingThrust/unitdiskmapping/gadget"
	"github.com/CodingThrust/unitdiskmapping/grid"
	"github.com/CodingThrust/unitdiskmapping/pathdecomp"
)

func validateInputs(numVertices int, edges [][2]int) error {
	if numVertices <= 0 {
		return ErrNoVertices
	}
	seen := make(map[[2]int]bool, len(edges))
	for _, e := range edges {
		if e[0] < 0 || e[0] >= numVertices || e[1] < 0 || e[1] >= numVertices {
			return fmt.Errorf("%w: (%d,%d)", ErrEdgeOutOfRange, e[0], e[1])
		}
		if e[0] == e[1] {
			return fmt.Errorf("%w: %d", ErrSelfLoop, e[0])
		}
		key, rev := e, [2]int{e[1], e[0]}
		if seen[key] || seen[rev] {
			return fmt.Errorf("%w: (%d,%d)", ErrDuplicateEdge, e[0], e[1])
		}
		seen[key] = true
	}
	return nil
}

func validateOrder(numVertices int, order []int) error {
	if len(order) != numVertices {
		return ErrBadVertexOrder
	}
	seen := make([]bool, numVertices)
	for _, v := range order {
		if v < 0 || v >= numVertices || seen[v] {
			return ErrBadVertexOrder
		}
		seen[v] = true
	}
	return nil
}

// MapAuto runs the auto path-decomposition policy (branch-and-bound for
// n<=30, greedy otherwise) before delegating to Map.
func MapAuto(numVertices int, edges [][2]int, mode Mode) (*MappingResult, error) {
	order := pathdecomp.Order(numVertices, edges, nil)
	return Map(numVertices, edges, order, mode)
}

// Map runs the full nine-step forward reduction (§4.5) for a fixed
// vertex order. numVertices must be positive, edges 0-based undirected
// and duplicate-free, and vertexOrder (if non-nil) a permutation of
// 0..numVertices; a nil vertexOrder triggers the same auto policy as
// MapAuto.
func Map(numVertices int, edges [][2]int, vertexOrder []int, mode Mode) (*MappingResult, error) {
	if err := validateInputs(numVertices, edges); err != nil {
		return nil, err
	}
	if vertexOrder == nil {
		vertexOrder = pathdecomp.Order(numVertices, edges, nil)
	}
	if err := validateOrder(numVertices, vertexOrder); err != nil {
		return nil, err
	}

	spacing := mode.spacing()
	padding := defaultPadding

	lines, err := buildCopyLines(numVertices, edges, vertexOrder, spacing)
	if err != nil {
		return nil, err
	}

	maxHslot, maxVstop := 0, 0
	for _, l := range lines {
		if l.Hslot > maxHslot {
			maxHslot = l.Hslot
		}
		if l.Vstop > maxVstop {
			maxVstop = l.Vstop
		}
	}
	maxSlot := maxHslot
	if maxVstop > maxSlot {
		maxSlot = maxVstop
	}
	rows := maxSlot*spacing + 2 + 2*padding
	cols := (numVertices-1)*spacing + 2 + 2*padding
	grd := grid.New(rows, cols, spacing, padding)

	overhead := 0
	for _, l := range lines {
		var locs []copyline.Loc
		if mode.triangular() {
			locs = l.LocationsTriangular(padding, spacing)
		} else {
			locs = l.Locations(padding, spacing)
		}
		for _, loc := range locs {
			grd.AddNode(loc.Row, loc.Col, loc.Weight)
		}
		switch mode {
		case TriangularWeighted:
			overhead += l.TriangularWeightedOverhead(spacing)
		case KSGWeighted:
			overhead += l.KSGWeightedOverhead(padding, spacing)
		default:
			overhead += l.UnweightedOverhead(padding, spacing)
		}
	}

	markEdgeCrossings(grd, lines, edges)

	catalog := gadget.Catalog()
	crossTape, err := crossingPass(grd, lines, catalog)
	if err != nil {
		return nil, err
	}
	var tape gadget.Tape
	tape = append(tape, crossTape...)

	maxPasses := 2
	if mode.triangular() {
		maxPasses = 10
	}
	tape = append(tape, gadget.ScanCapped(grd, catalog, maxPasses)...)

	for _, entry := range tape {
		overhead += entry.Gadget.MISOverhead
	}

	doubled := grd.DoubledCoords()
	positions := grd.OccupiedCoords()
	weights := make([]int, len(positions))
	for i, p := range positions {
		weights[i] = grd.Get(p[0], p[1]).Weight
	}

	return &MappingResult{
		Positions:    positions,
		NodeWeights:  weights,
		Rows:         rows,
		Cols:         cols,
		Kind:         mode,
		Lines:        lines,
		Padding:      padding,
		Spacing:      spacing,
		MISOverhead:  overhead,
		Tape:         tape,
		DoubledCells: doubled,
	}, nil
}

// buildCopyLines assigns each vertex its vslot/hslot/vstart/vstop/hstop
// per §4.5 step 2: vslot is the vertex's position in vertexOrder
// (1-based); hslot is assigned by a slot-reuse scan so that rows free
// as soon as no later vertex still needs them; vstart/vstop span the
// hslots of the vertex and its earlier-or-equal-in-order neighbours;
// hstop spans the vslots of the vertex and all its neighbours.
func buildCopyLines(numVertices int, edges [][2]int, vertexOrder []int, spacing int) ([]copyline.CopyLine, error) {
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

	removeAt := copyline.RemoveOrder(numVertices, edges, vertexOrder)

	hslot := make([]int, numVertices)
	vslot := make([]int, numVertices)
	var freeList []int
	nextSlot := 1
	for i, v := range vertexOrder {
		vslot[v] = i + 1
		var slot int
		if len(freeList) > 0 {
			slot = freeList[len(freeList)-1]
			freeList = freeList[:len(freeList)-1]
		} else {
			slot = nextSlot
			nextSlot++
		}
		hslot[v] = slot
		if i < len(removeAt) {
			for _, u := range removeAt[i] {
				freeList = append(freeList, hslot[u])
			}
		}
	}

	lines := make([]copyline.CopyLine, numVertices)
	for _, v := range vertexOrder {
		vstart, vstop := hslot[v], hslot[v]
		hstop := vslot[v]
		for u := range adj[v] {
			if pos[u] <= pos[v] {
				if hslot[u] < vstart {
					vstart = hslot[u]
				}
				if hslot[u] > vstop {
					vstop = hslot[u]
				}
			}
			if vslot[u] > hstop {
				hstop = vslot[u]
			}
		}
		lines[v] = copyline.CopyLine{
			Vertex: v,
			Vslot:  vslot[v],
			Hslot:  hslot[v],
			Vstart: vstart,
			Vstop:  vstop,
			Hstop:  hstop,
		}
	}
	return lines, nil
}

// markEdgeCrossings implements §4.5 step 5: for each edge, compute the
// crossing cell between the two endpoints' copy-lines and mark the
// approach cell plus one of the two vertical neighbours as Connected,
// preferring the upward cell when both are occupied.
func markEdgeCrossings(grd *grid.Grid, lines []copyline.CopyLine, edges [][2]int) {
	for _, e := range edges {
		u, v := lines[e[0]], lines[e[1]]
		first, second := u, v
		if second.Vslot < first.Vslot {
			first, second = second, first
		}
		row, col := grd.CrossAt(first.Vslot, second.Vslot, first.Hslot)
		grd.Connect(row, col-1)
		if grd.IsOccupied(row-1, col) {
			grd.Connect(row-1, col)
		} else if grd.IsOccupied(row+1, col) {
			grd.Connect(row+1, col)
		}
	}
}

// crossingPass implements §4.5 step 6: for every pair of copy-lines
// (not just edges — a non-edge pair's crossing may still need a
// disconnected-crossing gadget), compute the prospective crossing cell
// once and try the catalog there; each cell is processed at most once.
//
// A crossing cell left Empty means the two lines never actually reach
// that cell (no real intersection, nothing to resolve). A crossing
// cell that IS occupied but matches no catalog gadget is an invariant
// violation per §7 — it would otherwise leave an unresolved Connected
// cell in the grid — and aborts the whole mapping with ErrNoGadgetMatch
// rather than silently emitting an invalid grid.
func crossingPass(grd *grid.Grid, lines []copyline.CopyLine, catalog []gadget.Gadget) (gadget.Tape, error) {
	var tape gadget.Tape
	processed := make(map[[2]int]bool)
	n := len(lines)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			first, second := lines[i], lines[j]
			if second.Vslot < first.Vslot {
				first, second = second, first
			}
			row, col := grd.CrossAt(first.Vslot, second.Vslot, first.Hslot)
			if processed[[2]int{row, col}] {
				continue
			}
			processed[[2]int{row, col}] = true
			if !grd.IsOccupied(row, col) {
				continue
			}
			entry, ok := gadget.ApplyAtCross(grd, row, col, catalog)
			if !ok {
				return nil, fmt.Errorf("%w: at (%d,%d) between vertices %d and %d", ErrNoGadgetMatch, row, col, first.Vertex, second.Vertex)
			}
			tape = append(tape, entry)
		}
	}
	return tape, nil
}
