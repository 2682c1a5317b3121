// Package unitdiskmapping maps an arbitrary undirected graph
// onto an equivalent weighted Maximum Independent Set instance on a
// unit-disk grid: a King's-subgraph lattice (8-connected squares) or a
// triangular lattice, your choice.
//
// The reduction runs in nine stages, spread across sibling packages:
//
//	pathdecomp/  — order the source graph's vertices to minimize the
//	               path decomposition's vertex separation
//	copyline/    — lay each vertex out as an L-shaped "copy-line" of
//	               unit-disk nodes along that order
//	grid/        — the rectangular substrate copy-lines are drawn onto
//	gadget/      — pattern-match/rewrite crossings and simplify the
//	               result to a legal unit-disk configuration, recording
//	               every rewrite on a tape
//	mapping/     — the driver tying the above into Map/MapAuto, plus
//	               MappingResult and its unit-disk Edges()
//	inverse/     — read the tape backwards to recover a source-graph
//	               MIS from a grid-graph MIS
//	alphacheck/  — an offline checker that a gadget rewrite preserves
//	               the MIS-overhead invariant, by brute force
//	testgraphs/  — the literal graph corpus the test suites share
//
// core/ and bfs/ are carried over from this module's teacher: core.Graph
// is the optional input type (mapping.FromCoreGraph reads only its
// topology), and bfs is exercised by its own tests; no other package uses it.
//
//	go get github.com/CodingThrust/unitdiskmapping
package unitdiskmapping
