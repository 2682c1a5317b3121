package mapping

import (
	"math"

	"github.com/CodingThrust/unitdiskmapping/copyline"
	"github.com/CodingThrust/unitdiskmapping/gadget"
)

// MappingResult bundles everything a forward mapping produces: the
// grid-vertex catalogue in row-major order, the copy-lines indexed by
// source-vertex id, the layout constants, the accumulated overhead, the
// rewrite tape, and the set of cells still Doubled at the end of the
// forward pass. It owns every field; nothing aliases the driver's
// internal grid.
type MappingResult struct {
	Positions   [][2]int
	NodeWeights []int
	Rows, Cols  int
	Kind        Mode
	Lines       []copyline.CopyLine
	Padding     int
	Spacing     int
	MISOverhead int
	Tape        gadget.Tape
	DoubledCells map[[2]int]bool
}

// Edges derives neighbour pairs over the result's grid vertices using
// the lattice-specific unit-disk metric: two grid vertices are adjacent
// iff their embedded Euclidean distance falls within the lattice's unit
// radius — 1.5 for KSG (equivalent to 8-connected/Chebyshev adjacency
// on the integer grid) and 1.1 under the triangular embedding
// (x = r + 0.5·[c even], y = c·√3/2).
func (r *MappingResult) Edges() [][2]int {
	n := len(r.Positions)
	xs := make([]float64, n)
	ys := make([]float64, n)
	triangular := r.Kind == TriangularWeighted
	radius := 1.5
	if triangular {
		radius = 1.1
	}
	for i, p := range r.Positions {
		row, col := float64(p[0]), float64(p[1])
		if triangular {
			offset := 0.0
			if p[1]%2 == 0 {
				offset = 0.5
			}
			xs[i] = row + offset
			ys[i] = col * math.Sqrt(3) / 2
		} else {
			xs[i] = row
			ys[i] = col
		}
	}
	edges := [][2]int{}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := xs[i] - xs[j]
			dy := ys[i] - ys[j]
			d := math.Sqrt(dx*dx + dy*dy)
			if d <= radius {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	return edges
}
