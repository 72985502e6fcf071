package main

import "github.com/arl/slicer2d/cmd/slicer2d/cmd"

func main() {
	cmd.Execute()
}
