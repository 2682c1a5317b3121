// Command udmexport is a developer-facing driver that runs the forward
// mapping on one graph from the built-in literal corpus and writes a
// stage-by-stage JSON snapshot for the external visualiser, per §6's
// "JSON debug export, off the hot path". It is not part of the
// reduction's hot path; nothing else in this module depends on it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/CodingThrust/unitdiskmapping/grid"
	"github.com/CodingThrust/unitdiskmapping/mapping"
	"github.com/CodingThrust/unitdiskmapping/testgraphs"
)

type cellJSON struct {
	Row, Col, Weight int
	State            string
}

type tapeEntryJSON struct {
	Index      int
	GadgetType string
	GadgetIdx  int
	Row, Col   int
	Overhead   int
}

type exportJSON struct {
	GraphName      string
	Mode           string
	CopyLinesOnly  []cellJSON
	AfterEdgeMarks []cellJSON
	AfterCrossing  []cellJSON
	AfterSimplify  []cellJSON
	CrossingTape   []tapeEntryJSON
	SimplifyTape   []tapeEntryJSON
	MISOverhead    int
}

func gridCells(g *grid.Grid) []cellJSON {
	var out []cellJSON
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			cell := g.Get(r, c)
			if cell.IsEmpty() {
				continue
			}
			out = append(out, cellJSON{Row: r, Col: c, Weight: cell.Weight, State: cell.State.String()})
		}
	}
	return out
}

func convertTape(stages *mapping.DebugStages) ([]tapeEntryJSON, []tapeEntryJSON) {
	cross := make([]tapeEntryJSON, len(stages.CrossingTape))
	for i, e := range stages.CrossingTape {
		cross[i] = tapeEntryJSON{Index: i, GadgetType: e.Gadget.Name, GadgetIdx: i, Row: e.Row, Col: e.Col, Overhead: e.Gadget.MISOverhead}
	}
	simplify := make([]tapeEntryJSON, len(stages.SimplifyTape))
	for i, e := range stages.SimplifyTape {
		simplify[i] = tapeEntryJSON{Index: i, GadgetType: e.Gadget.Name, GadgetIdx: i, Row: e.Row, Col: e.Col, Overhead: e.Gadget.MISOverhead}
	}
	return cross, simplify
}

func parseMode(s string) (mapping.Mode, error) {
	switch s {
	case "triangular":
		return mapping.TriangularWeighted, nil
	case "unweighted":
		return mapping.KSGUnweighted, nil
	case "weighted":
		return mapping.KSGWeighted, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}

func findLiteral(name string) (testgraphs.Literal, bool) {
	for _, l := range testgraphs.All() {
		if l.Name == name {
			return l, true
		}
	}
	return testgraphs.Literal{}, false
}

func run(graphName, modeFlag string) error {
	literal, ok := findLiteral(graphName)
	if !ok {
		return fmt.Errorf("unknown graph %q", graphName)
	}
	mode, err := parseMode(modeFlag)
	if err != nil {
		return err
	}

	stages, err := mapping.MapDebug(literal.NumVertices, literal.Edges, nil, mode)
	if err != nil {
		return fmt.Errorf("mapping %s: %w", graphName, err)
	}

	crossTape, simplifyTape := convertTape(stages)
	doc := exportJSON{
		GraphName:      graphName,
		Mode:           modeFlag,
		CopyLinesOnly:  gridCells(stages.CopyLinesOnly),
		AfterEdgeMarks: gridCells(stages.AfterEdgeMarks),
		AfterCrossing:  gridCells(stages.AfterCrossing),
		AfterSimplify:  gridCells(stages.AfterSimplify),
		CrossingTape:   crossTape,
		SimplifyTape:   simplifyTape,
		MISOverhead:    stages.Result.MISOverhead,
	}

	outDir := filepath.Join("tests", "julia")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}
	outPath := filepath.Join(outDir, fmt.Sprintf("%s_rust_%s.json", graphName, modeFlag))
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding %s: %w", outPath, err)
	}
	log.Printf("wrote %s", outPath)
	return nil
}

func main() {
	mode := flag.String("mode", "triangular", "one of triangular, unweighted, weighted")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: udmexport [-mode triangular|unweighted|weighted] <graph_name>")
		os.Exit(1)
	}

	if err := run(flag.Arg(0), *mode); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
