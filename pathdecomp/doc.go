// Package pathdecomp computes a vertex ordering minimizing pathwidth
// (vertex separation), used by package mapping to assign each vertex a
// vslot before copy-line layout. A smaller maximum vertex separation
// directly shrinks the grid's row count and the number of wire
// crossings the gadget rewriter has to resolve.
//
// Two methods are provided:
//
//   - Greedy, with random restarts: fast, adequate for small graphs.
//   - BranchAndBound: depth-first search with vsep-based pruning and
//     prefix memoization; guarantees optimal pathwidth but costs more.
//
// Greedy is the only stochastic stage in the whole reduction; every
// other stage is a pure, deterministic function of its inputs.
package pathdecomp
