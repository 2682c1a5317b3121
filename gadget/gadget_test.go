package gadget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodingThrust/unitdiskmapping/grid"
)

func TestVariants_Deduplicates(t *testing.T) {
	// trivialTurn is symmetric under some rotations/reflections, so its
	// variant count must be strictly less than the naive 8.
	v := Variants(trivialTurn())
	assert.Less(t, len(v), 8)
	assert.NotEmpty(t, v)
}

func TestVariants_TurnHasMultipleOrientations(t *testing.T) {
	v := Variants(turn())
	assert.Greater(t, len(v), 1)
}

func TestMatchAndApply_Turn(t *testing.T) {
	g := turn()
	grd := grid.New(g.Source.Rows+2, g.Source.Cols+2, 6, 2)
	for i, n := range g.Source.Nodes {
		w := g.Source.Weights[i]
		grd.AddNode(n.Row, n.Col, w)
	}

	require.True(t, Match(grd, 0, 0, g))

	Apply(grd, 0, 0, g)

	assert.False(t, Match(grd, 0, 0, g), "source pattern should be gone after rewrite")
	for _, n := range g.Mapped.Nodes {
		assert.True(t, grd.IsOccupied(n.Row, n.Col), "mapped node (%d,%d) should be occupied", n.Row, n.Col)
	}
}

func TestApply_PinsRetainWeight(t *testing.T) {
	g := turn()
	grd := grid.New(g.Source.Rows, g.Source.Cols, 6, 2)
	for i, n := range g.Source.Nodes {
		grd.AddNode(n.Row, n.Col, g.Source.Weights[i])
	}
	// Overwrite one pin's weight to a distinctive value, as if it came
	// from an adjoining copy-line segment with a different weight.
	pinNode := g.Source.Nodes[g.Source.Pins[0]]
	grd.Clear(pinNode.Row, pinNode.Col)
	grd.AddNode(pinNode.Row, pinNode.Col, 7)

	Apply(grd, 0, 0, g)

	mappedPinNode := g.Mapped.Nodes[g.Mapped.Pins[0]]
	assert.Equal(t, 7, grd.Get(mappedPinNode.Row, mappedPinNode.Col).Weight)
}

func TestMatch_RejectsExtraOccupiedCell(t *testing.T) {
	g := turn()
	grd := grid.New(g.Source.Rows+1, g.Source.Cols+1, 6, 2)
	for i, n := range g.Source.Nodes {
		grd.AddNode(n.Row, n.Col, g.Source.Weights[i])
	}
	// An extra occupied cell inside the bounding box should block the match.
	grd.AddNode(0, 3, 2)
	assert.False(t, Match(grd, 0, 0, g))
}

func TestScan_AppliesUntilFixedPoint(t *testing.T) {
	g := turn()
	grd := grid.New(g.Source.Rows+2, g.Source.Cols+2, 6, 2)
	for i, n := range g.Source.Nodes {
		grd.AddNode(n.Row, n.Col, g.Source.Weights[i])
	}
	catalog := Variants(g)
	tape := Scan(grd, catalog)
	require.Len(t, tape, 1)
	assert.Equal(t, 0, tape[0].Row)
	assert.Equal(t, 0, tape[0].Col)

	// A second scan over the already-rewritten grid finds nothing more.
	tape2 := Scan(grd, catalog)
	assert.Empty(t, tape2)
}

func TestCatalog_NonEmpty(t *testing.T) {
	cat := Catalog()
	assert.NotEmpty(t, cat)
	names := make(map[string]bool)
	for _, g := range cat {
		names[g.Name] = true
	}
	assert.Contains(t, names, "cross-connected")
	assert.Contains(t, names, "cross-disconnected")
	assert.Contains(t, names, "tcon-left")
}
