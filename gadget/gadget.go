package gadget

import (
	"fmt"

	"github.com/CodingThrust/unitdiskmapping/grid"
)

// Gadget is one named local rewrite rule: replace an occurrence of
// Source with Mapped, paying MISOverhead in the reduction's overall
// weighted-MIS-to-weighted-MIS identity. CrossRow/CrossCol locate the
// junction's logical center within the shared bounding box, 0-indexed;
// it is carried through rotations/reflections, and ApplyAtCross uses it
// to place the gadget's box around a crossing cell. Match ignores it.
type Gadget struct {
	Name               string
	Source, Mapped     Pattern
	CrossRow, CrossCol int
	MISOverhead        int
}

func (g Gadget) rows() int { return g.Source.Rows }
func (g Gadget) cols() int { return g.Source.Cols }

func (g Gadget) rotate90() Gadget {
	return Gadget{
		Name:     g.Name,
		Source:   g.Source.rotate90(),
		Mapped:   g.Mapped.rotate90(),
		CrossRow: g.CrossCol,
		CrossCol: g.rows() - 1 - g.CrossRow,
		MISOverhead: g.MISOverhead,
	}
}

func (g Gadget) reflect() Gadget {
	return Gadget{
		Name:        g.Name,
		Source:      g.Source.reflect(),
		Mapped:      g.Mapped.reflect(),
		CrossRow:    g.CrossRow,
		CrossCol:    g.cols() - 1 - g.CrossCol,
		MISOverhead: g.MISOverhead,
	}
}

// Variants returns g plus every distinct rotation/reflection of it (up
// to 8, fewer for symmetric gadgets). Every variant keeps g's Name; no
// variant index is recorded.
func Variants(g Gadget) []Gadget {
	seen := make(map[string]bool)
	var out []Gadget
	cur := g
	for rot := 0; rot < 4; rot++ {
		for _, cand := range []Gadget{cur, cur.reflect()} {
			key := cand.Source.signature() + "|" + cand.Mapped.signature()
			if !seen[key] {
				seen[key] = true
				out = append(out, cand)
			}
		}
		cur = cur.rotate90()
	}
	return out
}

// Match reports whether g.Source occurs in grd with its top-left
// bounding-box corner at (row, col): every Source node must be
// occupied (Connected exactly, for nodes listed in Source.Connected;
// merely non-empty otherwise), and every other cell within the box
// must be empty.
func Match(grd *grid.Grid, row, col int, g Gadget) bool {
	nodes := g.Source.nodeSet()
	connected := make(map[int]bool, len(g.Source.Connected))
	for _, idx := range g.Source.Connected {
		connected[idx] = true
	}
	for idx, n := range g.Source.Nodes {
		cell := grd.Get(row+n.Row, col+n.Col)
		if connected[idx] {
			if cell.State != grid.Connected {
				return false
			}
			continue
		}
		if !cell.IsOccupied() {
			return false
		}
	}
	for r := 0; r < g.Source.Rows; r++ {
		for c := 0; c < g.Source.Cols; c++ {
			if nodes[Node{Row: r, Col: c}] {
				continue
			}
			if grd.IsOccupied(row+r, col+c) {
				return false
			}
		}
	}
	return true
}

// Apply rewrites the Source occurrence at (row, col) into Mapped. Pin
// cells (those named by Source.Pins/Mapped.Pins, in parallel order)
// retain the grid weight they carried before the rewrite, since they
// stay wired to copy-line segments outside the box; every other mapped
// cell takes its weight from Mapped.Weights.
func Apply(grd *grid.Grid, row, col int, g Gadget) {
	pinWeight := make([]int, len(g.Source.Pins))
	for i, srcIdx := range g.Source.Pins {
		n := g.Source.Nodes[srcIdx]
		pinWeight[i] = grd.Get(row+n.Row, col+n.Col).Weight
	}

	for _, n := range g.Source.Nodes {
		grd.Clear(row+n.Row, col+n.Col)
	}

	mappedPinIdx := make(map[int]int, len(g.Mapped.Pins))
	for i, idx := range g.Mapped.Pins {
		mappedPinIdx[idx] = i
	}
	for idx, n := range g.Mapped.Nodes {
		weight := g.Mapped.Weights[idx]
		if i, ok := mappedPinIdx[idx]; ok {
			weight = pinWeight[i]
		}
		grd.AddNode(row+n.Row, col+n.Col, weight)
	}
}

func (g Gadget) String() string {
	return fmt.Sprintf("%s(%dx%d, overhead=%d)", g.Name, g.rows(), g.cols(), g.MISOverhead)
}
