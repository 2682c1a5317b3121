package gadget

// Catalog returns the full triangular-lattice gadget set, grounded cell
// for cell on the reference implementation's thirteen TriCross/TriTurn/
// TriBranch/TriTCon*/TriEndTurn/TriWTurn/TriBranchFix* definitions
// (locations renumbered from 1-indexed to 0-indexed, everything else
// unchanged), together with every distinct rotation/reflection of each.
// This is every gadget the reference's own crossing-resolution priority
// list tries (a connected crossing, a disconnected crossing, a turn in
// each chirality, a three-way branch and its two fix-up variants, a
// W-turn, an end-turn, and the three T-connection orientations) — the
// full ordinary-path set, not a fallback-only sample.
func Catalog() []Gadget {
	var all []Gadget
	for _, base := range baseGadgets() {
		all = append(all, Variants(base)...)
	}
	return all
}

func baseGadgets() []Gadget {
	return []Gadget{
		crossConnected(), crossDisconnected(),
		turn(), trivialTurn(), trivialTurnRight(),
		branch(), branchFix(), branchFixB(),
		tconLeft(), tconDown(), tconUp(),
		endTurn(), wTurn(),
	}
}

func crossConnected() Gadget {
	return Gadget{
		Name: "cross-connected",
		Source: Pattern{
			Rows: 6, Cols: 4,
			Nodes: []Node{
				{1, 0}, {1, 1}, {1, 2}, {1, 3}, {0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 1}, {5, 1},
			},
			Edges:     [][2]int{{0, 1}, {1, 2}, {2, 3}, {4, 5}, {5, 6}, {6, 7}, {7, 8}, {8, 9}, {0, 4}},
			Pins:      []int{0, 4, 9, 3},
			Weights:   []int{2, 2, 2, 2, 2, 2, 2, 2, 2, 2},
			Connected: []int{0, 4},
		},
		Mapped: Pattern{
			Rows: 6, Cols: 4,
			Nodes: []Node{
				{0, 1}, {1, 0}, {1, 1}, {1, 2}, {0, 3}, {2, 2}, {3, 1}, {3, 2}, {4, 0}, {5, 0}, {5, 1},
			},
			Pins:    []int{1, 0, 10, 4},
			Weights: []int{3, 2, 3, 3, 2, 2, 2, 2, 2, 2, 2},
		},
		CrossRow: 1, CrossCol: 1,
		MISOverhead: 1,
	}
}

func crossDisconnected() Gadget {
	return Gadget{
		Name: "cross-disconnected",
		Source: Pattern{
			Rows: 6, Cols: 6,
			Nodes: []Node{
				{1, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5}, {0, 3}, {1, 3}, {2, 3}, {3, 3}, {4, 3}, {5, 3}, {1, 0},
			},
			Edges:   [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {5, 6}, {6, 7}, {7, 8}, {8, 9}, {9, 10}, {11, 0}},
			Pins:    []int{11, 5, 10, 4},
			Weights: []int{2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2},
		},
		Mapped: Pattern{
			Rows: 6, Cols: 6,
			Nodes: []Node{
				{0, 3}, {1, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5}, {2, 1}, {2, 2}, {2, 3}, {2, 4},
				{3, 1}, {3, 2}, {4, 1}, {5, 2}, {5, 3}, {1, 0},
			},
			Pins:    []int{15, 0, 14, 5},
			Weights: []int{3, 3, 2, 4, 2, 2, 2, 4, 3, 2, 2, 2, 2, 2, 2, 2},
		},
		CrossRow: 1, CrossCol: 3,
		MISOverhead: 3,
	}
}

func turn() Gadget {
	return Gadget{
		Name: "turn",
		Source: Pattern{
			Rows: 3, Cols: 4,
			Nodes:   []Node{{0, 1}, {1, 1}, {1, 2}, {1, 3}},
			Edges:   [][2]int{{0, 1}, {1, 2}, {2, 3}},
			Pins:    []int{0, 3},
			Weights: []int{2, 2, 2, 2},
		},
		Mapped: Pattern{
			Rows: 3, Cols: 4,
			Nodes:   []Node{{0, 1}, {1, 1}, {2, 2}, {1, 3}},
			Pins:    []int{0, 3},
			Weights: []int{2, 2, 2, 2},
		},
		CrossRow: 1, CrossCol: 1,
		MISOverhead: 0,
	}
}

func branch() Gadget {
	return Gadget{
		Name: "branch",
		Source: Pattern{
			Rows: 6, Cols: 4,
			Nodes:   []Node{{0, 1}, {1, 1}, {1, 2}, {1, 3}, {2, 2}, {2, 1}, {3, 1}, {4, 1}, {5, 1}},
			Edges:   [][2]int{{0, 1}, {1, 2}, {2, 3}, {2, 4}, {4, 5}, {5, 6}, {6, 7}, {7, 8}},
			Pins:    []int{0, 3, 8},
			Weights: []int{2, 2, 3, 2, 2, 2, 2, 2, 2},
		},
		Mapped: Pattern{
			Rows: 6, Cols: 4,
			Nodes:   []Node{{0, 1}, {1, 1}, {1, 3}, {2, 2}, {3, 1}, {3, 2}, {4, 0}, {5, 0}, {5, 1}},
			Pins:    []int{0, 2, 8},
			Weights: []int{2, 2, 2, 3, 2, 2, 2, 2, 2},
		},
		CrossRow: 1, CrossCol: 1,
		MISOverhead: 0,
	}
}

func tconLeft() Gadget {
	return Gadget{
		Name: "tcon-left",
		Source: Pattern{
			Rows: 6, Cols: 5,
			Nodes:     []Node{{0, 1}, {1, 0}, {1, 1}, {2, 1}, {3, 1}, {4, 1}, {5, 1}},
			Edges:     [][2]int{{0, 1}, {0, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}},
			Pins:      []int{0, 1, 6},
			Weights:   []int{2, 1, 2, 2, 2, 2, 2},
			Connected: []int{0, 1},
		},
		Mapped: Pattern{
			Rows: 6, Cols: 5,
			Nodes: []Node{
				{0, 1}, {1, 0}, {1, 1}, {1, 2}, {1, 3}, {2, 2}, {3, 1}, {3, 2}, {4, 0}, {5, 0}, {5, 1},
			},
			Pins:    []int{0, 1, 10},
			Weights: []int{3, 2, 3, 3, 1, 3, 2, 2, 2, 2, 2},
		},
		CrossRow: 1, CrossCol: 1,
		MISOverhead: 4,
	}
}

func tconDown() Gadget {
	return Gadget{
		Name: "tcon-down",
		Source: Pattern{
			Rows: 3, Cols: 3,
			Nodes:     []Node{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
			Edges:     [][2]int{{0, 1}, {1, 2}, {0, 3}},
			Pins:      []int{0, 3, 2},
			Weights:   []int{2, 2, 2, 1},
			Connected: []int{0, 3},
		},
		Mapped: Pattern{
			Rows: 3, Cols: 3,
			Nodes:   []Node{{1, 1}, {2, 0}, {2, 1}, {2, 2}},
			Pins:    []int{1, 2, 3},
			Weights: []int{2, 2, 3, 2},
		},
		CrossRow: 1, CrossCol: 1,
		MISOverhead: 0,
	}
}

func tconUp() Gadget {
	return Gadget{
		Name: "tcon-up",
		Source: Pattern{
			Rows: 3, Cols: 3,
			Nodes:     []Node{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
			Edges:     [][2]int{{0, 1}, {1, 2}, {2, 3}},
			Pins:      []int{1, 0, 3},
			Weights:   []int{1, 2, 2, 2},
			Connected: []int{0, 1},
		},
		Mapped: Pattern{
			Rows: 3, Cols: 3,
			Nodes:   []Node{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
			Pins:    []int{1, 0, 3},
			Weights: []int{3, 2, 2, 2},
		},
		CrossRow: 1, CrossCol: 1,
		MISOverhead: 0,
	}
}

func trivialTurn() Gadget {
	return Gadget{
		Name: "trivial-turn",
		Source: Pattern{
			Rows: 2, Cols: 2,
			Nodes:     []Node{{0, 1}, {1, 0}},
			Edges:     [][2]int{{0, 1}},
			Pins:      []int{0, 1},
			Weights:   []int{1, 1},
			Connected: []int{0, 1},
		},
		Mapped: Pattern{
			Rows: 2, Cols: 2,
			Nodes:   []Node{{0, 1}, {1, 0}},
			Pins:    []int{0, 1},
			Weights: []int{1, 1},
		},
		CrossRow: 1, CrossCol: 1,
		MISOverhead: 0,
	}
}

// trivialTurnRight is TriTrivialTurnRight: the mirror-chirality trivial
// turn, cross_location (1,2) 1-indexed.
func trivialTurnRight() Gadget {
	return Gadget{
		Name: "trivial-turn-right",
		Source: Pattern{
			Rows: 2, Cols: 2,
			Nodes:     []Node{{0, 0}, {1, 1}},
			Edges:     [][2]int{{0, 1}},
			Pins:      []int{0, 1},
			Weights:   []int{1, 1},
			Connected: []int{0, 1},
		},
		Mapped: Pattern{
			Rows: 2, Cols: 2,
			Nodes:   []Node{{1, 0}, {1, 1}},
			Pins:    []int{0, 1},
			Weights: []int{1, 1},
		},
		CrossRow: 0, CrossCol: 1,
		MISOverhead: 0,
	}
}

// endTurn is TriEndTurn: a dead-end copy-line tip folding onto a single
// mapped node. Disconnected (is_connected=false in the source), so no
// Connected marks on the source pattern.
func endTurn() Gadget {
	return Gadget{
		Name: "end-turn",
		Source: Pattern{
			Rows: 3, Cols: 4,
			Nodes:   []Node{{0, 1}, {1, 1}, {1, 2}},
			Edges:   [][2]int{{0, 1}, {1, 2}},
			Pins:    []int{0},
			Weights: []int{2, 2, 1},
		},
		Mapped: Pattern{
			Rows: 3, Cols: 4,
			Nodes:   []Node{{0, 1}},
			Pins:    []int{0},
			Weights: []int{1},
		},
		CrossRow: 1, CrossCol: 1,
		MISOverhead: -2,
	}
}

// wTurn is TriWTurn: a 5-node zig-zag crossing resolver with two pins,
// used where a turn and a branch would otherwise overlap.
func wTurn() Gadget {
	return Gadget{
		Name: "w-turn",
		Source: Pattern{
			Rows: 4, Cols: 4,
			Nodes:   []Node{{1, 2}, {1, 3}, {2, 1}, {2, 2}, {3, 1}},
			Edges:   [][2]int{{0, 1}, {0, 3}, {2, 3}, {2, 4}},
			Pins:    []int{1, 4},
			Weights: []int{2, 2, 2, 2, 2},
		},
		Mapped: Pattern{
			Rows: 4, Cols: 4,
			Nodes:   []Node{{0, 3}, {1, 2}, {2, 1}, {2, 2}, {3, 1}},
			Pins:    []int{0, 4},
			Weights: []int{2, 2, 2, 2, 2},
		},
		CrossRow: 1, CrossCol: 1,
		MISOverhead: 0,
	}
}

// branchFix is TriBranchFix: a six-node fix-up applied where a plain
// branch gadget would leave an invalid residual pattern.
func branchFix() Gadget {
	return Gadget{
		Name: "branch-fix",
		Source: Pattern{
			Rows: 4, Cols: 4,
			Nodes:   []Node{{0, 1}, {1, 1}, {1, 2}, {2, 2}, {2, 1}, {3, 1}},
			Edges:   [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}},
			Pins:    []int{0, 5},
			Weights: []int{2, 2, 2, 2, 2, 2},
		},
		Mapped: Pattern{
			Rows: 4, Cols: 4,
			Nodes:   []Node{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
			Pins:    []int{0, 3},
			Weights: []int{2, 2, 2, 2},
		},
		CrossRow: 1, CrossCol: 1,
		MISOverhead: -2,
	}
}

// branchFixB is TriBranchFixB: the companion four-node fix-up tried
// immediately after branchFix in the reference's priority list.
func branchFixB() Gadget {
	return Gadget{
		Name: "branch-fix-b",
		Source: Pattern{
			Rows: 4, Cols: 4,
			Nodes:   []Node{{1, 2}, {2, 1}, {2, 2}, {3, 1}},
			Edges:   [][2]int{{0, 2}, {1, 2}, {1, 3}},
			Pins:    []int{0, 3},
			Weights: []int{2, 2, 2, 2},
		},
		Mapped: Pattern{
			Rows: 4, Cols: 4,
			Nodes:   []Node{{2, 1}, {3, 1}},
			Pins:    []int{0, 1},
			Weights: []int{2, 2},
		},
		CrossRow: 1, CrossCol: 1,
		MISOverhead: -2,
	}
}
