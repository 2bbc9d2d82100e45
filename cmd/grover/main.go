// Package main provides the entry point for the grover CLI.
package main

import (
	"os"

	"github.com/theapemachine/qsearch/cmd/grover/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
