package main

import (
	"os"

	"deskcalc/cmd/deskcalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
