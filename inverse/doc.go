// Package inverse reconstructs an independent set of the original
// source graph from a 0/1 assignment on a mapped grid's vertices, given
// the mapping.MappingResult that produced the grid.
//
// Reconstruction runs the forward rewrite tape backwards: each gadget
// application is undone by reading the bits currently sitting on its
// Mapped pattern, fixing the gadget's pin cells to those observed
// values, and choosing the weight-maximizing independent-set
// assignment over the Source pattern consistent with that fixing — the
// same equivalence contract (package gadget) that let the forward pass
// apply the rewrite without changing the graph's MIS by more than the
// gadget's declared overhead. Once every tape entry has been undone,
// each copy-line's dense cell sequence is summed (with the doubled-cell
// disambiguation rule) and the known floor(n/2) overhead is subtracted
// to recover each source vertex's membership bit.
package inverse
