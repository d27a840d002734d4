// Package main is the entry point for the logstat CLI tool.
package main

import (
	"os"

	"github.com/good-yellow-bee/logstat/cmd/logstat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
