// Package main provides the entry point for the triedo CLI.
package main

import (
	"os"

	"github.com/hupe1980/triedo/cmd/triedo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
