// Package cli provides common CLI utilities for the ringseq command-line tool.
//
// This package includes:
//   - Configuration management (contexts holding ring defaults)
//   - Output formatting (JSON, YAML, raw) with optional jq filtering
//   - Script file loading (YAML/JSON)
//   - A lipgloss frame renderer and a log writer that keeps recent lines in a ring
//
// Configuration is stored in ~/.ringseq/config.yaml, supporting multiple
// contexts similar to kubectl.
//
// Example usage:
//
//	cfg, err := cli.LoadConfig("ringseq")
//
//	// Get current context
//	ctx, err := cfg.GetCurrentContext()
//
//	// Output result
//	cli.Output(snapshot, cli.OutputOptions{
//	    Format: cli.FormatJSON,
//	    Query:  ".values",
//	})
package cli
