package mapping

import (
	"github.com/CodingThrust/unitdiskmapping/copyline"
	"github.com/CodingThrust/unitdiskmapping/gadget"
	"github.com/CodingThrust/unitdiskmapping/grid"
	"github.com/CodingThrust/unitdiskmapping/pathdecomp"
)

// DebugStages carries the stage-by-stage grid snapshots a developer
// driver can export (§6's "JSON debug export, off the hot path"): the
// grid right after copy-line layout, after edge-crossing markers, after
// the crossing pass, and after the simplifier pass, plus the final
// MappingResult those stages converge on.
type DebugStages struct {
	CopyLinesOnly  *grid.Grid
	AfterEdgeMarks *grid.Grid
	AfterCrossing  *grid.Grid
	AfterSimplify  *grid.Grid
	CrossingTape   gadget.Tape
	SimplifyTape   gadget.Tape
	Result         *MappingResult
}

// MapDebug runs the same nine-step pipeline as Map but additionally
// clones the grid at each of the four stages above. It is strictly more
// expensive than Map (four extra grid copies) and exists only for the
// export driver (cmd/udmexport); nothing in the production forward/
// inverse path calls it.
func MapDebug(numVertices int, edges [][2]int, vertexOrder []int, mode Mode) (*DebugStages, error) {
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
	copyLinesOnly := cloneGrid(grd)

	markEdgeCrossings(grd, lines, edges)
	afterEdges := cloneGrid(grd)

	catalog := gadget.Catalog()
	crossTape, err := crossingPass(grd, lines, catalog)
	if err != nil {
		return nil, err
	}
	afterCrossing := cloneGrid(grd)

	maxPasses := 2
	if mode.triangular() {
		maxPasses = 10
	}
	simplifyTape := gadget.ScanCapped(grd, catalog, maxPasses)
	afterSimplify := cloneGrid(grd)

	for _, entry := range append(append(gadget.Tape{}, crossTape...), simplifyTape...) {
		overhead += entry.Gadget.MISOverhead
	}

	doubled := grd.DoubledCoords()
	positions := grd.OccupiedCoords()
	weights := make([]int, len(positions))
	for i, p := range positions {
		weights[i] = grd.Get(p[0], p[1]).Weight
	}

	var fullTape gadget.Tape
	fullTape = append(fullTape, crossTape...)
	fullTape = append(fullTape, simplifyTape...)

	result := &MappingResult{
		Positions:    positions,
		NodeWeights:  weights,
		Rows:         rows,
		Cols:         cols,
		Kind:         mode,
		Lines:        lines,
		Padding:      padding,
		Spacing:      spacing,
		MISOverhead:  overhead,
		Tape:         fullTape,
		DoubledCells: doubled,
	}

	return &DebugStages{
		CopyLinesOnly:  copyLinesOnly,
		AfterEdgeMarks: afterEdges,
		AfterCrossing:  afterCrossing,
		AfterSimplify:  afterSimplify,
		CrossingTape:   crossTape,
		SimplifyTape:   simplifyTape,
		Result:         result,
	}, nil
}

func cloneGrid(g *grid.Grid) *grid.Grid {
	clone := grid.New(g.Rows, g.Cols, g.Spacing, g.Padding)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			cell := g.Get(r, c)
			if cell.IsOccupied() {
				clone.Set(r, c, cell)
			}
		}
	}
	return clone
}
