package main

import (
	"os"

	"movies/cmd/moviesctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
