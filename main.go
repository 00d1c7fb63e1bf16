package main

import (
	"os"

	"github.com/pushpullleg/renaissance/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
