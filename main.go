package main

import "github.com/outfitter-dev/recast/cmd"

func main() {
	cmd.Execute()
}
