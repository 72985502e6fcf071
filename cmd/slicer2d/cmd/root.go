package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "slicer2d",
	Short: "run the 2D polygon slicing engine",
	Long: `slicer2d runs the 2D polygon slicing engine against YAML
scenario files: a polygon-with-holes, a cut segment and a UV reference
rectangle, in local 2D coordinates.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
