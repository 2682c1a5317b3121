package gadget

import "github.com/CodingThrust/unitdiskmapping/grid"

// TapeEntry records one gadget application: which Gadget fired and
// where its bounding box's top-left corner landed. The inverse mapper
// (package inverse) replays a Tape back-to-front, substituting each
// Mapped occurrence back for Source, to recover source-graph MIS
// membership from a solved grid.
type TapeEntry struct {
	Gadget   Gadget
	Row, Col int
}

// Tape is the ordered record of every gadget application a forward
// Scan performed, first-applied first.
type Tape []TapeEntry

// Scan repeatedly walks grd in row-major order applying the first
// matching gadget (from catalog, which should already include every
// rotation/reflection via Catalog) it finds at each anchor, until a
// full pass produces no match. Returns the tape of every application,
// in application order.
func Scan(grd *grid.Grid, catalog []Gadget) Tape {
	return ScanCapped(grd, catalog, 0)
}

// ScanCapped behaves like Scan but stops after maxPasses full sweeps
// even if a sweep still found matches (maxPasses == 0 means no cap:
// run to fixpoint). Used for the simplifier pass, whose pass count is
// itself a tuned constant rather than a correctness requirement.
func ScanCapped(grd *grid.Grid, catalog []Gadget, maxPasses int) Tape {
	var tape Tape
	for pass := 0; maxPasses == 0 || pass < maxPasses; pass++ {
		applied := false
		for row := 0; row < grd.Rows; row++ {
			for col := 0; col < grd.Cols; col++ {
				for _, g := range catalog {
					if row+g.Source.Rows > grd.Rows || col+g.Source.Cols > grd.Cols {
						continue
					}
					if !Match(grd, row, col, g) {
						continue
					}
					Apply(grd, row, col, g)
					tape = append(tape, TapeEntry{Gadget: g, Row: row, Col: col})
					applied = true
					break
				}
			}
		}
		if !applied {
			break
		}
	}
	return tape
}

// ApplyAtCross tries every gadget in catalog anchored so that its
// CrossRow/CrossCol lands on (row, col) — the precomputed crossing
// cell between two copy-lines — rather than scanning every possible
// anchor. Returns the first match applied, or ok=false if none fit
// (either out of bounds or no gadget's source pattern matched).
func ApplyAtCross(grd *grid.Grid, row, col int, catalog []Gadget) (TapeEntry, bool) {
	for _, g := range catalog {
		ar, ac := row-g.CrossRow, col-g.CrossCol
		if ar < 0 || ac < 0 || ar+g.Source.Rows > grd.Rows || ac+g.Source.Cols > grd.Cols {
			continue
		}
		if !Match(grd, ar, ac, g) {
			continue
		}
		Apply(grd, ar, ac, g)
		return TapeEntry{Gadget: g, Row: ar, Col: ac}, true
	}
	return TapeEntry{}, false
}
