package inverse

import (
	"github.com/CodingThrust/unitdiskmapping/copyline"
	"github.com/CodingThrust/unitdiskmapping/mapping"
)

// Invert reconstructs a 0/1 membership vector for the original source
// vertices from config — a 0/1 assignment with one entry per
// result.Positions, in the same row-major order — per §4.7: unapply the
// rewrite tape in reverse, then sum each copy-line's dense cell
// sequence (disambiguating doubled cells) and subtract the known
// floor(n/2) overhead.
func Invert(config []int, result *mapping.MappingResult) ([]int, error) {
	if len(config) != len(result.Positions) {
		return nil, ErrConfigLength
	}

	grid2d := make(dense2D, result.Rows)
	for r := range grid2d {
		grid2d[r] = make([]int, result.Cols)
	}
	for i, p := range result.Positions {
		grid2d.set(p[0], p[1], config[i])
	}

	for i := len(result.Tape) - 1; i >= 0; i-- {
		unapplyGadget(grid2d, result.Kind, result.Tape[i])
	}

	out := make([]int, len(result.Lines))
	triangular := result.Kind == mapping.TriangularWeighted
	for v, line := range result.Lines {
		var locs []copyline.Loc
		if triangular {
			locs = line.LocationsTriangular(result.Padding, result.Spacing)
		} else {
			locs = line.Locations(result.Padding, result.Spacing)
		}
		out[v] = sumCopyLine(grid2d, result.DoubledCells, locs)
	}
	return out, nil
}
