package main

import (
	"os"

	"iptrack/cmd/ipctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
