package mapping

import "errors"

// Sentinel errors for the forward driver's precondition checks. Every
// one of these represents a programming bug in the caller, per §7 of
// the reduction's error-handling design: the driver asserts and aborts
// rather than trying to recover.
var (
	ErrNoVertices           = errors.New("mapping: num_vertices must be positive")
	ErrEdgeOutOfRange       = errors.New("mapping: edge endpoint out of range")
	ErrDuplicateEdge        = errors.New("mapping: duplicate edge")
	ErrSelfLoop             = errors.New("mapping: self-loop edge not allowed")
	ErrBadVertexOrder       = errors.New("mapping: vertex_order is not a permutation of 0..n")
	ErrNoFreeSlot           = errors.New("mapping: no free hslot during copy-line assignment")
	ErrConfigLengthMismatch = errors.New("mapping: config length does not match grid vertex count")
	// ErrNoGadgetMatch fires when a crossing cell is occupied (two
	// copy-lines genuinely intersect there) but no catalog gadget's
	// source pattern matches it. Per §7, a gadget-match invariant
	// violation aborts with a diagnostic rather than silently leaving
	// an unresolved Connected cell in the grid.
	ErrNoGadgetMatch = errors.New("mapping: no gadget matches occupied crossing")
)
