package main

import (
	"os"

	"wordbot/cmd/wordbot/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
