package main

import (
	"os"

	"t0ast.cc/bravetint/cli"
)

func main() {
	err := cli.Run(os.Args)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}
