package main

import (
	"os"

	"github.com/testforge/testforge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
