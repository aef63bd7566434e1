package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/haivivi/ringseq/pkg/ring"
	"github.com/haivivi/ringseq/pkg/ringscript"
)

var demoBackend string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the reference scenario",
	Long: `Run the reference scenario on a ring of capacity 5.

The scenario pushes 1..7, pops twice, finds 6 and walks backwards past the
front fifteen times. Every expectation is printed; the command fails if any
of them does not hold.

Examples:
  ringseq demo
  ringseq demo --backend list
  ringseq demo --json --jq 'map(select(.ok | not))'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := demoRingBackend()
		if err != nil {
			return err
		}
		checks, demoErr := ringscript.Demo(backend, slog.Default())
		if outputJSON || jqQuery != "" {
			if err := outputResult(checks); err != nil {
				return err
			}
			return demoErr
		}
		w := outputWriter
		if w == nil {
			w = os.Stdout
		}
		printChecks(w, backend, checks)
		return demoErr
	},
}

func init() {
	demoCmd.Flags().StringVarP(&demoBackend, "backend", "b", "", "backend: array or list (default: context backend)")
}

// demoRingBackend returns the --backend flag or the context backend.
func demoRingBackend() (ring.Backend, error) {
	if demoBackend != "" {
		return ring.ParseBackend(demoBackend)
	}
	ctx, err := getContext()
	if err != nil {
		return "", err
	}
	return ctx.RingBackend(), nil
}

func printChecks(w io.Writer, backend ring.Backend, checks []ringscript.Check) {
	fmt.Fprintf(w, "backend: %s, capacity: %d\n", backend, ringscript.DemoCapacity)
	step := ""
	for _, c := range checks {
		if c.Step != step {
			step = c.Step
			fmt.Fprintf(w, "%s\n", step)
		}
		if c.OK {
			fmt.Fprintf(w, "  ✓ %s = %s\n", c.Expr, c.Got)
		} else {
			fmt.Fprintf(w, "  ✗ %s = %s, want %s\n", c.Expr, c.Got, c.Want)
		}
	}
}
