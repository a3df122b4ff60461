package main

import (
	"os"

	"picipher/cmd/picipher/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
