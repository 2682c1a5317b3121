// Package grid implements the mapping substrate: a rectangular array of
// weighted cells that the copy-line layout (package copyline) and the
// gadget rewriter (package gadget) read and mutate in place.
//
// A Cell is one of four states: Empty, Occupied, Doubled, or Connected,
// each of the last three carrying a weight. Doubled marks a cell where
// two copy-lines coincide; Connected marks a cell that must resolve an
// edge crossing. add_node's composition rule (Empty->Occupied->Doubled,
// Connected unaffected) makes the initial layout pass order-independent
// within a single copy-line and keeps double-occupancy detectable for
// the inverse mapper.
//
// All accessors clamp silently on out-of-bounds coordinates: callers
// compute coordinates from closed-form arithmetic (§4.2/§4.5 of the
// design) and a silently-ignored out-of-range write is cheaper to reason
// about than threading bounds errors through every call site.
package grid
