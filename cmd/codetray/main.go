// Package main is the entry point for the codetray CLI.
package main

import (
	"os"

	"github.com/codetray/codetray/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
