// Package main provides the CLI entry point for casinogen.
package main

import (
	"os"

	"github.com/leapstack-labs/casinogen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
