package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/slicer2d/internal/diag"
	"github.com/arl/slicer2d/internal/scenario"
	"github.com/arl/slicer2d/merger"
	"github.com/arl/slicer2d/tri"
)

var triangulateCmd = &cobra.Command{
	Use:   "triangulate SCENARIO.yml",
	Short: "merge a polygon's holes and triangulate it",
	Long: `Load a scenario's polygon-with-holes (the cut segment, if any,
is ignored), merge the holes into the outer ring, triangulate the
result, and print the triangle count.`,
	Args: cobra.ExactArgs(1),
	Run:  doTriangulate,
}

func init() {
	RootCmd.AddCommand(triangulateCmd)
}

func doTriangulate(cmd *cobra.Command, args []string) {
	sc, err := scenario.Load(args[0])
	check(err)

	poly := sc.Polygon()
	log := &diag.Log{}

	merged, mstatus := merger.Merge(poly.Outer, poly.Holes, log)
	indices, tstatus := tri.Triangulate(merged, log)

	fmt.Printf("merged vertex count: %d\n", len(merged))
	fmt.Printf("triangle count: %d\n", len(indices)/3)
	fmt.Printf("merge status: succeeded=%v holeSkipped=%v\n", mstatus.Succeeded(), mstatus.HasDetail(merger.StatusHoleSkipped))
	fmt.Printf("triangulate status: succeeded=%v partial=%v\n", tstatus.Succeeded(), tstatus.HasDetail(tri.StatusPartial))
	for _, m := range log.Messages() {
		fmt.Println(m)
	}
}
