package main

import (
	"os"

	"github.com/tarush10000/Sooru-Demo/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
