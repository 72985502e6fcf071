package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/slicer2d/geom"
	"github.com/arl/slicer2d/internal/diag"
	"github.com/arl/slicer2d/merger"
	"github.com/arl/slicer2d/slicer"
	"github.com/arl/slicer2d/tri"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "run the six built-in concrete scenarios and report invariants",
	Long: `Run the six concrete scenarios described in the specification
(square diagonal cut, square with central hole, off-center annulus cut,
four-hole grid polygon, cut that misses, cut through a concave vertex),
slicing/merging/triangulating each and reporting the measured area
invariant.`,
	Run: doDemo,
}

func init() {
	RootCmd.AddCommand(demoCmd)
}

type demoScenario struct {
	name        string
	outer       []geom.Point
	holes       [][]geom.Point
	cutStart    geom.Point
	cutEnd      geom.Point
	refRectSize [2]float32
}

func p(x, y float32) geom.Point { return geom.NewPoint(x, y) }

func demoScenarios() []demoScenario {
	return []demoScenario{
		{
			name:        "square diagonal cut",
			outer:       []geom.Point{p(-1, -1), p(1, -1), p(1, 1), p(-1, 1)},
			cutStart:    p(-2, -2),
			cutEnd:      p(2, 2),
			refRectSize: [2]float32{2, 2},
		},
		{
			name:  "square with central hole, horizontal cut",
			outer: []geom.Point{p(-2, -2), p(2, -2), p(2, 2), p(-2, 2)},
			holes: [][]geom.Point{{p(-1, 1), p(1, 1), p(1, -1), p(-1, -1)}},
			cutStart:    p(-3, 0),
			cutEnd:      p(3, 0),
			refRectSize: [2]float32{4, 4},
		},
		{
			name:  "annulus cut off-center (touches only the outer ring)",
			outer: []geom.Point{p(-2, -2), p(2, -2), p(2, 2), p(-2, 2)},
			holes: [][]geom.Point{{p(-1, 1), p(1, 1), p(1, -1), p(-1, -1)}},
			cutStart:    p(-3, 1.5),
			cutEnd:      p(3, 1.5),
			refRectSize: [2]float32{4, 4},
		},
		{
			name: "grid polygon (four corner holes), horizontal cut y=0",
			outer: []geom.Point{p(-3, -3), p(3, -3), p(3, 3), p(-3, 3)},
			holes: [][]geom.Point{
				{p(-2, 1), p(-1, 1), p(-1, 2), p(-2, 2)},
				{p(1, 1), p(2, 1), p(2, 2), p(1, 2)},
				{p(1, -2), p(2, -2), p(2, -1), p(1, -1)},
				{p(-2, -2), p(-1, -2), p(-1, -1), p(-2, -1)},
			},
			cutStart:    p(-4, 0),
			cutEnd:      p(4, 0),
			refRectSize: [2]float32{6, 6},
		},
		{
			name:        "cut that misses the polygon entirely",
			outer:       []geom.Point{p(-1, -1), p(1, -1), p(1, 1), p(-1, 1)},
			cutStart:    p(10, 10),
			cutEnd:      p(20, 20),
			refRectSize: [2]float32{2, 2},
		},
		{
			name:        "cut through a concave vertex",
			outer:       []geom.Point{p(-2, -2), p(2, -2), p(2, 2), p(0, 0), p(-2, 2)},
			cutStart:    p(-3, 0),
			cutEnd:      p(3, 0),
			refRectSize: [2]float32{4, 4},
		},
	}
}

func doDemo(cmd *cobra.Command, args []string) {
	for _, s := range demoScenarios() {
		fmt.Printf("=== %s ===\n", s.name)
		poly := geom.PolygonWithHoles{Outer: s.outer, Holes: s.holes}
		inputArea := poly.Area()

		log := &diag.Log{}
		results, log := slicer.Slice(poly, s.cutStart, s.cutEnd, s.refRectSize, log)

		if len(results) == 0 {
			fmt.Println("no-op (input unchanged)")
			continue
		}

		var outArea float32
		for i, r := range results {
			outArea += r.Area()
			merged, _ := merger.Merge(r.Outer, r.Holes, log)
			indices, _ := tri.Triangulate(merged, log)
			fmt.Printf("  polygon %d: outer=%d verts, holes=%d, triangles=%d\n", i, len(r.Outer), len(r.Holes), len(indices)/3)
		}
		fmt.Printf("  input area=%.4f, output area sum=%.4f\n", inputArea, outArea)
		for _, m := range log.Messages() {
			fmt.Println("  " + m)
		}
	}
}
