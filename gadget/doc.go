// Package gadget implements pattern rewriting over the grid substrate
// (package grid): local, shape-preserving replacements of a crossing or
// turning wire junction with an equivalent junction that removes one
// unit-disk violation, at the cost of a fixed, precomputed MIS overhead.
//
// A Gadget names a Source pattern (the junction as laid down verbatim by
// copy-line embedding: a plus-shaped crossing, an L-shaped turn, a
// three-way branch, or a T-connection) and a Mapped pattern (the
// unit-disk-respecting replacement), both expressed as occupied cells
// within a shared bounding box, plus the overhead their MIS sizes
// differ by and the subset of cells ("pins") that remain wired to
// copy-line segments outside the box and so must keep their identity
// across the rewrite.
//
// Catalog returns all four rotations times two reflections of every
// base gadget, deduplicated; Scan walks a grid looking for any variant
// whose Source pattern matches at some anchor, applies the first hit's
// Mapped pattern in its place, and records a TapeEntry so the inverse
// mapper (package inverse) can undo the rewrite later.
package gadget
