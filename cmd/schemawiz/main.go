package main

import (
	"os"

	"f0oster/schemawiz/cmd/schemawiz/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
