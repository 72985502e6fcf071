package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/slicer2d/internal/diag"
	"github.com/arl/slicer2d/internal/scenario"
	"github.com/arl/slicer2d/slicer"
)

var sliceCmd = &cobra.Command{
	Use:   "slice SCENARIO.yml",
	Short: "run one slice scenario and print the resulting polygons",
	Long: `Load a scenario (polygon-with-holes, cut segment, UV rect)
from a YAML file, run the slicer, and print the outer/hole vertex counts
and areas of every resulting polygon.`,
	Args: cobra.ExactArgs(1),
	Run:  doSlice,
}

func init() {
	RootCmd.AddCommand(sliceCmd)
}

func doSlice(cmd *cobra.Command, args []string) {
	sc, err := scenario.Load(args[0])
	check(err)

	start, end := sc.Cut()
	log := &diag.Log{}
	results, log := slicer.Slice(sc.Polygon(), start, end, sc.RefRectSize(), log)

	if len(results) == 0 {
		fmt.Println("slice produced no cut (fewer than two resulting polygons)")
	}
	for i, p := range results {
		fmt.Printf("polygon %d: outer=%d verts, holes=%d, area=%.4f\n", i, len(p.Outer), len(p.Holes), p.Area())
	}
	for _, m := range log.Messages() {
		fmt.Println(m)
	}
}
