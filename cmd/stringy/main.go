package main

import (
	"os"

	"github.com/msto63/stringy/cmd/stringy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
