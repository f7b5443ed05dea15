package main

import (
	"os"

	"github.com/vizlab/dsanim/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
