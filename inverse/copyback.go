package inverse

import "github.com/CodingThrust/unitdiskmapping/copyline"

// sumCopyLine walks a copy-line's dense cell sequence in order,
// accumulating a counter per §4.7 step 3: a plain cell contributes its
// raw bit; a doubled cell contributes 1 when its bit reads 2 (both
// overlapping copy-lines agree), or when it reads 1 and both its
// dense-order neighbours read 0 (disambiguating which copy-line the
// single bit belongs to). The final membership bit is
// max(counter - floor(n/2), 0).
func sumCopyLine(grid2d dense2D, doubled map[[2]int]bool, locs []copyline.Loc) int {
	n := len(locs)
	c := 0
	for i, loc := range locs {
		b := grid2d.get(loc.Row, loc.Col)
		if doubled[[2]int{loc.Row, loc.Col}] {
			switch b {
			case 2:
				c++
			case 1:
				leftZero := i == 0 || grid2d.get(locs[i-1].Row, locs[i-1].Col) == 0
				rightZero := i == n-1 || grid2d.get(locs[i+1].Row, locs[i+1].Col) == 0
				if leftZero && rightZero {
					c++
				}
			}
			continue
		}
		if loc.Weight >= 1 {
			c += b
		}
	}
	result := c - n/2
	if result < 0 {
		return 0
	}
	return result
}
