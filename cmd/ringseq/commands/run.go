package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay a script and print the snapshot",
	Long: `Replay a script against a fresh ring and print the resulting snapshot.

A script names an optional backend and capacity and a list of ops. Each op
is exactly one of push, pop or clear:

  backend: array
  capacity: 3
  ops:
    - push: "1"
    - push: "2"
    - pop: true

Backend and capacity fall back to the current context when omitted.

Examples:
  ringseq run -f script.yaml
  ringseq run -f script.yaml --json --jq '.reverse'
  cat script.json | ringseq run -f -`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadScript()
		if err != nil {
			return err
		}
		ctx, err := getContext()
		if err != nil {
			return err
		}
		snap, err := newRunner(ctx, slog.Default()).Run(cmd.Context(), s)
		if err != nil {
			return err
		}
		return outputResult(snap)
	},
}
