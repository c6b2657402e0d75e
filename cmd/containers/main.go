// Package main is the entry point for the containers CLI.
//
// Usage:
//
//	containers [flags] <command> [subcommand] [args]
//
// Commands:
//
//	run        - Run a container script from a YAML or JSON file
//	demo       - Run a built-in script for a container kind
//	config     - Show and change settings
//	version    - Show version information
package main

import (
	"os"

	"github.com/haivivi/containers/cmd/containers/commands"
	"github.com/haivivi/containers/pkg/cli"
)

func main() {
	if err := commands.Execute(); err != nil {
		cli.PrintError(os.Stderr, "%v", err)
		os.Exit(1)
	}
}
