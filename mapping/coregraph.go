package mapping

import (
	"sort"

	"github.com/CodingThrust/unitdiskmapping/core"
)

// FromCoreGraph adapts a core.Graph into the (numVertices, edges) shape
// Map expects: vertex IDs are assigned 0..n-1 in sorted string order
// (core.Graph.Vertices is already lexicographically sorted), and every
// undirected edge is emitted once regardless of the source graph's
// directedness or multiplicity. Returns the index assignment alongside
// the mapping so callers can translate grid results back to vertex IDs.
func FromCoreGraph(g *core.Graph, mode Mode) (*MappingResult, map[string]int, error) {
	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	seen := make(map[[2]int]bool)
	var edges [][2]int
	for _, e := range g.Edges() {
		a, b := index[e.From], index[e.To]
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		key := [2]int{a, b}
		if seen[key] {
			continue
		}
		seen[key] = true
		edges = append(edges, key)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})

	result, err := MapAuto(len(ids), edges, mode)
	if err != nil {
		return nil, nil, err
	}
	return result, index, nil
}
