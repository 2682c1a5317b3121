// Package copyline builds the L-shaped cell sequence that embeds one
// source vertex into the grid (package grid).
//
// A CopyLine is an L: a vertical segment at column vslot running from
// row vstart to vstop, and a horizontal segment at row hslot running
// from column vslot+1 to hstop. Its weighted MIS equals floor(n/2) + [v
// in the independent set], where n is the number of cells it occupies;
// the driver (package mapping) relies on that identity to compute the
// overhead constant and the inverse mapper (package inverse) relies on
// it to recover membership.
package copyline
