// Package main provides the entry point for the lineseek CLI.
package main

import (
	"os"

	"github.com/lineseek/lineseek/cmd/lineseek/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
