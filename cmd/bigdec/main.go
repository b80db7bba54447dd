package main

import (
	"os"

	"github.com/db47h/bigdec/cmd/bigdec/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
