package main

import (
	"os"

	"suanpan/cmd/suanpan/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
