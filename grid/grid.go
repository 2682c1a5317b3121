package grid

import (
	"fmt"
	"strings"
)

// Grid is a rectangular array of Cells plus the two constants that tie
// abstract slot coordinates (package copyline) to concrete grid rows and
// columns: Spacing (the axial distance between consecutive copy-lines:
// 4 for KSG, 6 for triangular) and Padding (the free border, typically 2).
//
// Grid is exclusively owned by whoever is mutating it (the mapping
// driver during the forward pass); nothing aliases its internal slice.
type Grid struct {
	Rows, Cols     int
	Spacing        int
	Padding        int
	cells          []Cell // row-major, len == Rows*Cols
}

// New allocates an empty Rows x Cols grid.
func New(rows, cols, spacing, padding int) *Grid {
	return &Grid{
		Rows:    rows,
		Cols:    cols,
		Spacing: spacing,
		Padding: padding,
		cells:   make([]Cell, rows*cols),
	}
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

func (g *Grid) idx(row, col int) int { return row*g.Cols + col }

// Get returns the cell at (row, col). Out-of-bounds reads return the
// zero Cell (Empty, weight 0) rather than panicking.
func (g *Grid) Get(row, col int) Cell {
	if !g.inBounds(row, col) {
		return Cell{}
	}
	return g.cells[g.idx(row, col)]
}

// Set overwrites the cell at (row, col). Out-of-bounds writes are
// silently ignored.
func (g *Grid) Set(row, col int, c Cell) {
	if !g.inBounds(row, col) {
		return
	}
	g.cells[g.idx(row, col)] = c
}

// IsOccupied reports whether (row, col) holds any non-empty cell.
// Out-of-bounds coordinates report false.
func (g *Grid) IsOccupied(row, col int) bool {
	return g.Get(row, col).IsOccupied()
}

// AddNode composes a new weighted node into (row, col):
//
//	Empty    + w -> Occupied{w}
//	Occupied{w'} + w -> Doubled{w'+w}
//	Doubled/Connected -> unchanged
//
// Out-of-bounds coordinates are silently ignored. This composition rule
// is load-bearing: copy-lines of two vertices that share a slot overlap
// intentionally at a single cell, and Doubled records that either
// copy-line's bit may be 1 but not both at once.
func (g *Grid) AddNode(row, col, weight int) {
	if !g.inBounds(row, col) {
		return
	}
	i := g.idx(row, col)
	switch g.cells[i].State {
	case Empty:
		g.cells[i] = Cell{State: Occupied, Weight: weight}
	case Occupied:
		g.cells[i] = Cell{State: Doubled, Weight: g.cells[i].Weight + weight}
	default:
		// Doubled and Connected cells absorb no further writes.
	}
}

// Connect promotes an Occupied cell to Connected, marking it as one end
// of an edge crossing. No-op on any other state.
func (g *Grid) Connect(row, col int) {
	if !g.inBounds(row, col) {
		return
	}
	i := g.idx(row, col)
	if g.cells[i].State == Occupied {
		g.cells[i].State = Connected
	}
}

// Clear resets a cell back to Empty, used by the gadget rewriter when
// it erases a matched source pattern before writing the target pattern.
func (g *Grid) Clear(row, col int) {
	g.Set(row, col, Cell{})
}

// OccupiedCoords returns every non-empty cell's (row, col), in row-major
// order. This is the order §4.5 step 9 and §6 rely on for a stable grid
// vertex index layout.
func (g *Grid) OccupiedCoords() [][2]int {
	var out [][2]int
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.cells[g.idx(r, c)].IsOccupied() {
				out = append(out, [2]int{r, c})
			}
		}
	}
	return out
}

// DoubledCoords returns every cell still in the Doubled state, needed by
// MappingResult.DoubledCells for the inverse mapper (§4.7).
func (g *Grid) DoubledCoords() map[[2]int]bool {
	out := make(map[[2]int]bool)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.cells[g.idx(r, c)].State == Doubled {
				out[[2]int{r, c}] = true
			}
		}
	}
	return out
}

// CrossAt computes the 0-based crossing cell for two copy-lines whose
// 1-based vslot/hslot values are vSlot, wSlot (the two vertices'
// vertical slots) and hSlot (the smaller-vslot vertex's horizontal
// slot). The larger of the two vslots picks the column.
func (g *Grid) CrossAt(vSlot, wSlot, hSlot int) (row, col int) {
	larger := vSlot
	if wSlot > larger {
		larger = wSlot
	}
	row = (hSlot-1)*g.Spacing + 1 + g.Padding
	col = (larger-1)*g.Spacing + g.Padding
	return row, col
}

// Format renders the grid as an ASCII table for debugging: "." for
// empty, state letter + weight otherwise.
func (g *Grid) Format() string {
	var b strings.Builder
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			cell := g.Get(r, c)
			if cell.IsEmpty() {
				b.WriteByte('.')
			} else {
				fmt.Fprintf(&b, "%s%d", cell.State, cell.Weight)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatWithConfig overlays a 0/1 (or doubled 0/1/2) assignment, one
// entry per occupied cell in row-major order, onto the grid's ASCII
// rendering: "*" for a selected node, "o" for unselected, "." for empty.
// Grounded on MappingGrid::format_with_config in the original source.
func (g *Grid) FormatWithConfig(config []int) string {
	var b strings.Builder
	idx := 0
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			cell := g.Get(r, c)
			if cell.IsEmpty() {
				b.WriteByte('.')
				continue
			}
			bit := 0
			if idx < len(config) {
				bit = config[idx]
			}
			idx++
			if bit > 0 {
				b.WriteByte('*')
			} else {
				b.WriteByte('o')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
