// Package main provides the ringseq CLI tool.
//
// Usage:
//
//	ringseq [flags] <command> [args]
//
// Commands:
//
//	demo     - Run the reference push/pop/iterate scenario
//	run      - Replay a script and print the resulting snapshot
//	show     - Replay a script and render the ring in a terminal frame
//	config   - Configuration management
//
// Configuration:
//
//	The CLI stores configuration in ~/.ringseq/
//	Use 'ringseq config' commands to manage contexts.
package main

import (
	"fmt"
	"os"

	"github.com/haivivi/ringseq/cmd/ringseq/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
