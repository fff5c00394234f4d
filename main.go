package main

import (
	"os"

	"github.com/promptdepot/promptdepot/internal/cli"
)

var version = "0.1.0"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}
