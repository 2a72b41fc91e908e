// Package main provides the navctl CLI, a terminal client for the
// disasternav API.
package main

import (
	"fmt"
	"os"

	"github.com/disasternav/disasternav/cmd/navctl/commands"
)

// Version information (set at compile time via ldflags).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersion(version, commit, date)

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
