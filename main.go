package main

import (
	"os"

	"github.com/snowin/snowin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
