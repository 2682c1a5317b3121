package alphacheck

import (
	"math"

	"github.com/CodingThrust/unitdiskmapping/gadget"
	"github.com/CodingThrust/unitdiskmapping/mapping"
)

// Infeasible marks a pin configuration that cannot be realized by any
// independent set of the pattern (two adjacent pins both fixed to 1).
const Infeasible = math.MinInt32

// Tensor computes alpha: one weighted-MIS value per pin configuration
// bitmask (bit i of the mask is pin i's fixed value), evaluated against
// the pattern's own local coordinates under kind's adjacency metric.
func Tensor(p gadget.Pattern, kind mapping.Mode) []int {
	k := len(p.Pins)
	adj := buildAdjacency(p, kind)
	out := make([]int, 1<<k)
	for mask := 0; mask < (1 << k); mask++ {
		out[mask] = restrictedMIS(p, adj, mask)
	}
	return out
}

func buildAdjacency(p gadget.Pattern, kind mapping.Mode) [][]bool {
	n := len(p.Nodes)
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if localAdjacent(kind, p.Nodes[i].Row, p.Nodes[i].Col, p.Nodes[j].Row, p.Nodes[j].Col) {
				adj[i][j], adj[j][i] = true, true
			}
		}
	}
	return adj
}

func localAdjacent(kind mapping.Mode, r1, c1, r2, c2 int) bool {
	if r1 == r2 && c1 == c2 {
		return false
	}
	if kind == mapping.TriangularWeighted {
		x1, y1 := triangularEmbed(r1, c1)
		x2, y2 := triangularEmbed(r2, c2)
		dx, dy := x1-x2, y1-y2
		return math.Sqrt(dx*dx+dy*dy) <= 1.1
	}
	dr, dc := r1-r2, c1-c2
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr <= 1 && dc <= 1
}

func triangularEmbed(row, col int) (x, y float64) {
	offset := 0.0
	if col%2 == 0 {
		offset = 0.5
	}
	return float64(row) + offset, float64(col) * math.Sqrt(3) / 2
}

// restrictedMIS returns the weighted MIS of p's full node set with pin
// i (0-indexed among p.Pins) fixed to bit i of mask, or Infeasible if
// no independent set satisfies that fixing (two adjacent pins both 1).
func restrictedMIS(p gadget.Pattern, adj [][]bool, mask int) int {
	n := len(p.Nodes)
	pinOfNode := make(map[int]int, len(p.Pins))
	for pinIdx, nodeIdx := range p.Pins {
		pinOfNode[nodeIdx] = pinIdx
	}

	best := Infeasible
	for sub := 0; sub < (1 << n); sub++ {
		ok := true
		for i := 0; i < n && ok; i++ {
			bitI := (sub >> i) & 1
			if pinIdx, isPin := pinOfNode[i]; isPin {
				want := (mask >> pinIdx) & 1
				if bitI != want {
					ok = false
					break
				}
			}
			if bitI == 0 {
				continue
			}
			for j := i + 1; j < n; j++ {
				if (sub>>j)&1 == 1 && adj[i][j] {
					ok = false
					break
				}
			}
		}
		if !ok {
			continue
		}
		weight := 0
		for i := 0; i < n; i++ {
			if (sub>>i)&1 == 1 {
				weight += p.Weights[i]
			}
		}
		if weight > best {
			best = weight
		}
	}
	return best
}

// Equivalent checks the gadget's equivalence contract under kind:
// after dropping any pin configuration infeasible on either side, every
// surviving (Source, Mapped) tensor pair must differ by exactly
// g.MISOverhead (Mapped − Source == MISOverhead).
func Equivalent(g gadget.Gadget, kind mapping.Mode) bool {
	src := Tensor(g.Source, kind)
	dst := Tensor(g.Mapped, kind)
	if len(src) != len(dst) {
		return false
	}
	seenDiff := false
	var diff int
	for i := range src {
		if src[i] == Infeasible || dst[i] == Infeasible {
			continue
		}
		d := dst[i] - src[i]
		if !seenDiff {
			diff = d
			seenDiff = true
			continue
		}
		if d != diff {
			return false
		}
	}
	if !seenDiff {
		return true
	}
	return diff == g.MISOverhead
}
