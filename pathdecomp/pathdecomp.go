package pathdecomp

import (
	"math/rand"
	"sort"
)

// adjacency builds an undirected adjacency-set representation.
func adjacency(numVertices int, edges [][2]int) []map[int]bool {
	adj := make([]map[int]bool, numVertices)
	for i := range adj {
		adj[i] = make(map[int]bool)
	}
	for _, e := range edges {
		adj[e[0]][e[1]] = true
		adj[e[1]][e[0]] = true
	}
	return adj
}

// Layout is a partial (or complete) path decomposition: the ordered
// prefix placed so far, its vertex separation so far, the frontier
// ("neighbors": vertices outside the prefix adjacent to it), and the
// vertices untouched by the prefix entirely ("disconnected").
type Layout struct {
	Vertices     []int
	Vsep         int
	Neighbors    []int
	Disconnected []int
}

func vsepAndNeighbors(adj []map[int]bool, numVertices int, vertices []int) (int, []int) {
	inPrefix := make([]bool, numVertices)
	vsep := 0
	var neighbors []int
	for i := range vertices {
		inPrefix[vertices[i]] = true
		neighbors = neighbors[:0]
		for v := 0; v < numVertices; v++ {
			if inPrefix[v] {
				continue
			}
			for u := range adj[v] {
				if inPrefix[u] {
					neighbors = append(neighbors, v)
					break
				}
			}
		}
		if len(neighbors) > vsep {
			vsep = len(neighbors)
		}
	}
	out := make([]int, len(neighbors))
	copy(out, neighbors)
	sort.Ints(out)
	return vsep, out
}

// NewLayout builds a Layout for the given prefix ordering.
func NewLayout(numVertices int, edges [][2]int, vertices []int) Layout {
	adj := adjacency(numVertices, edges)
	vsep, neighbors := vsepAndNeighbors(adj, numVertices, vertices)
	inSet := make(map[int]bool, len(vertices))
	for _, v := range vertices {
		inSet[v] = true
	}
	nbrSet := make(map[int]bool, len(neighbors))
	for _, v := range neighbors {
		nbrSet[v] = true
	}
	var disconnected []int
	for v := 0; v < numVertices; v++ {
		if !inSet[v] && !nbrSet[v] {
			disconnected = append(disconnected, v)
		}
	}
	return Layout{Vertices: vertices, Vsep: vsep, Neighbors: neighbors, Disconnected: disconnected}
}

// EmptyLayout is the starting point of every decomposition: no vertices
// placed, every vertex disconnected.
func EmptyLayout(numVertices int) Layout {
	disconnected := make([]int, numVertices)
	for i := range disconnected {
		disconnected[i] = i
	}
	return Layout{Disconnected: disconnected}
}

// frontier returns the set of candidate next vertices: Neighbors if
// non-empty, else Disconnected.
func (l Layout) frontier() []int {
	if len(l.Neighbors) > 0 {
		return l.Neighbors
	}
	return l.Disconnected
}

// extend appends v to the layout and recomputes vsep/neighbors.
func (l Layout) extend(adj []map[int]bool, numVertices, v int) Layout {
	next := append(append([]int{}, l.Vertices...), v)
	return NewLayout(numVertices, edgesFromAdj(adj), next)
}

func edgesFromAdj(adj []map[int]bool) [][2]int {
	var edges [][2]int
	seen := make(map[[2]int]bool)
	for u, nbrs := range adj {
		for v := range nbrs {
			key := [2]int{u, v}
			rev := [2]int{v, u}
			if seen[key] || seen[rev] {
				continue
			}
			seen[key] = true
			edges = append(edges, key)
		}
	}
	return edges
}

// exactMove looks for a zero-cost extension: a frontier or disconnected
// vertex whose full closed neighborhood already lies in the prefix, or
// a frontier vertex that would add at most one new neighbor. Returns
// (vertex, true) if found.
func exactMove(l Layout, adj []map[int]bool, numVertices int) (int, bool) {
	inPrefix := make(map[int]bool, len(l.Vertices))
	for _, v := range l.Vertices {
		inPrefix[v] = true
	}
	tryVertex := func(v int) bool {
		newNeighbors := 0
		for u := range adj[v] {
			if !inPrefix[u] && u != v {
				newNeighbors++
			}
		}
		return newNeighbors <= 1
	}
	for _, v := range l.Neighbors {
		if tryVertex(v) {
			return v, true
		}
	}
	for _, v := range l.Disconnected {
		if tryVertex(v) {
			return v, true
		}
	}
	return 0, false
}

// Greedy computes an ordering via exact-rule application interleaved
// with a minimizing random choice among the frontier, repeated for
// `restarts` independent attempts; the best (lowest Vsep) layout wins.
// rng must be non-nil for reproducibility; pass a seeded *rand.Rand.
func Greedy(numVertices int, edges [][2]int, restarts int, rng *rand.Rand) Layout {
	if numVertices == 0 {
		return EmptyLayout(0)
	}
	adj := adjacency(numVertices, edges)
	var best Layout
	haveBest := false

	for attempt := 0; attempt < restarts; attempt++ {
		layout := EmptyLayout(numVertices)
		for len(layout.Vertices) < numVertices {
			if v, ok := exactMove(layout, adj, numVertices); ok {
				layout = layout.extend(adj, numVertices, v)
				continue
			}
			candidates := layout.frontier()
			bestVsep := -1
			var bestCandidates []int
			for _, v := range candidates {
				trial := layout.extend(adj, numVertices, v)
				switch {
				case bestVsep < 0 || trial.Vsep < bestVsep:
					bestVsep = trial.Vsep
					bestCandidates = []int{v}
				case trial.Vsep == bestVsep:
					bestCandidates = append(bestCandidates, v)
				}
			}
			pick := bestCandidates[rng.Intn(len(bestCandidates))]
			layout = layout.extend(adj, numVertices, pick)
		}
		if !haveBest || layout.Vsep < best.Vsep {
			best = layout
			haveBest = true
		}
	}
	return best
}

// bbState is a memoized DFS node for BranchAndBound: a prefix ordering
// key (joined vertex IDs) mapped to whether it has already been
// explored at least as well as the current best.
type bbState struct {
	best     Layout
	haveBest bool
	adj      []map[int]bool
	n        int
	visited  map[string]bool
}

func prefixKey(vertices []int) string {
	b := make([]byte, 0, len(vertices)*4)
	for _, v := range vertices {
		b = append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}
	return string(b)
}

// BranchAndBound performs a depth-first search over prefix extensions,
// pruning any branch whose current Vsep already matches the best found
// so far, and memoizing visited prefixes so the same partial ordering
// is never re-explored. Guarantees optimal pathwidth.
func BranchAndBound(numVertices int, edges [][2]int) Layout {
	if numVertices == 0 {
		return EmptyLayout(0)
	}
	adj := adjacency(numVertices, edges)
	st := &bbState{adj: adj, n: numVertices, visited: make(map[string]bool)}
	st.search(EmptyLayout(numVertices))
	return st.best
}

func (st *bbState) search(l Layout) {
	if st.haveBest && l.Vsep >= st.best.Vsep {
		return
	}
	key := prefixKey(l.Vertices)
	if st.visited[key] {
		return
	}
	st.visited[key] = true

	if len(l.Vertices) == st.n {
		if !st.haveBest || l.Vsep < st.best.Vsep {
			st.best = l
			st.haveBest = true
		}
		return
	}

	candidates := l.frontier()
	// Order candidates by increasing predicted vsep so good branches
	// are explored (and can prune) first.
	type scored struct {
		v    int
		vsep int
	}
	scoredCands := make([]scored, 0, len(candidates))
	for _, v := range candidates {
		trial := l.extend(st.adj, st.n, v)
		scoredCands = append(scoredCands, scored{v: v, vsep: trial.Vsep})
	}
	sort.Slice(scoredCands, func(i, j int) bool { return scoredCands[i].vsep < scoredCands[j].vsep })

	for _, sc := range scoredCands {
		st.search(l.extend(st.adj, st.n, sc.v))
	}
}

// Order returns the vertex ordering implied by an optimal or heuristic
// layout: BranchAndBound for n<=30 (per the reference's auto policy),
// Greedy with 10 restarts otherwise. rng seeds the greedy fallback.
func Order(numVertices int, edges [][2]int, rng *rand.Rand) []int {
	if numVertices == 0 {
		return nil
	}
	var layout Layout
	if numVertices <= 30 {
		layout = BranchAndBound(numVertices, edges)
	} else {
		if rng == nil {
			rng = rand.New(rand.NewSource(1))
		}
		layout = Greedy(numVertices, edges, 10, rng)
	}
	return layout.Vertices
}
