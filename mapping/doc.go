// Package mapping orchestrates packages pathdecomp, copyline, grid and
// gadget into the end-to-end reduction: given a graph (vertex count and
// edge list; the input carries no weights), produce
// a MappingResult describing an equivalent weighted Maximum Independent
// Set instance on a King's-subgraph or triangular unit-disk lattice.
//
// Map runs the nine-step forward pipeline documented on Map;
// FromCoreGraph adapts a core.Graph into the (numVertices, edges) shape
// the driver expects. The produced MappingResult carries everything the
// inverse mapper (package inverse) needs to undo the reduction, and an
// Edges method for handing the grid instance to a downstream MIS solver.
package mapping
