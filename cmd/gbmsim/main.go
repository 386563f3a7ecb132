package main

import (
	"os"

	"github.com/rustyeddy/gbmsim/cmd/gbmsim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
