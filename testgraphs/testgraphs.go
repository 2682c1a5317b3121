package testgraphs

import "github.com/CodingThrust/unitdiskmapping/core"

// Literal is a named graph in the test corpus, in the (numVertices,
// edges) shape package mapping's forward driver expects directly.
type Literal struct {
	Name        string
	NumVertices int
	Edges       [][2]int
}

// Triangle is K3: every vertex adjacent to every other.
func Triangle() Literal {
	return Literal{Name: "triangle", NumVertices: 3, Edges: [][2]int{{0, 1}, {1, 2}, {0, 2}}}
}

// Diamond is K4 minus one edge: 4 vertices, 5 edges.
func Diamond() Literal {
	return Literal{Name: "diamond", NumVertices: 4, Edges: [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {2, 3}}}
}

// K4 is the complete graph on 4 vertices.
func K4() Literal {
	return Literal{Name: "k4", NumVertices: 4, Edges: [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
	}}
}

// Path5 is P5: 0-1-2-3-4.
func Path5() Literal {
	return Literal{Name: "path5", NumVertices: 5, Edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}}
}

// Empty5 has 5 vertices and no edges.
func Empty5() Literal {
	return Literal{Name: "empty5", NumVertices: 5, Edges: nil}
}

// K23 is the complete bipartite graph on parts {2,4} and {0,1,3}.
func K23() Literal {
	return Literal{Name: "k23", NumVertices: 5, Edges: [][2]int{
		{0, 4}, {3, 4}, {3, 2}, {2, 1}, {4, 1}, {0, 2},
	}}
}

// House is a square with a triangular roof: 5 vertices, 6 edges.
func House() Literal {
	return Literal{Name: "house", NumVertices: 5, Edges: [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 4}, {1, 4},
	}}
}

// Bull is a triangle with two pendant "horns": 5 vertices, 5 edges.
func Bull() Literal {
	return Literal{Name: "bull", NumVertices: 5, Edges: [][2]int{
		{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 4},
	}}
}

// Petersen is the Petersen graph: 10 vertices, 15 edges, outer 5-cycle,
// inner 5-pointed star, spokes connecting them.
func Petersen() Literal {
	return Literal{Name: "petersen", NumVertices: 10, Edges: [][2]int{
		// outer cycle 0-1-2-3-4-0
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0},
		// inner star 5-7-9-6-8-5
		{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5},
		// spokes
		{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9},
	}}
}

// All returns the full literal corpus, in the order property tests
// iterate it.
func All() []Literal {
	return []Literal{Triangle(), Diamond(), K4(), Path5(), Empty5(), K23(), House(), Bull(), Petersen()}
}

// CoreGraph materializes l as a core.Graph with vertex IDs "0".."n-1".
func (l Literal) CoreGraph() *core.Graph {
	g := core.NewGraph()
	ids := make([]string, l.NumVertices)
	for i := range ids {
		ids[i] = vertexID(i)
		_ = g.AddVertex(ids[i])
	}
	for _, e := range l.Edges {
		_, _ = g.AddEdge(vertexID(e[0]), vertexID(e[1]), 0)
	}
	return g
}

func vertexID(i int) string {
	const digits = "0123456789"
	if i < 10 {
		return string(digits[i])
	}
	// Corpus graphs never exceed 10 vertices, but fall back to a
	// simple decimal conversion rather than assuming a single digit.
	var buf []byte
	for i > 0 {
		buf = append([]byte{digits[i%10]}, buf...)
		i /= 10
	}
	return string(buf)
}
