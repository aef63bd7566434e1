package commands

import (
	"fmt"
	"log/slog"

	"github.com/haivivi/ringseq/pkg/cli"
	"github.com/haivivi/ringseq/pkg/ringscript"
)

// requireInputFile checks if input file is provided
func requireInputFile() error {
	if inputFile == "" {
		return fmt.Errorf("input file is required, use -f flag")
	}
	return nil
}

// loadScript loads the script named by -f. Bare names that do not exist in
// the working directory are looked up in ~/.ringseq/scripts.
func loadScript() (*ringscript.Script, error) {
	if err := requireInputFile(); err != nil {
		return nil, err
	}
	path := inputFile
	if path != "-" {
		if paths, err := cli.NewPaths(appName); err == nil {
			path = paths.ScriptPath(path)
		}
	}
	slog.Debug("loading script", "path", path)

	var s ringscript.Script
	if err := cli.LoadInput(path, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// newRunner creates a script runner using the context defaults
func newRunner(ctx *cli.Context, log *slog.Logger) *ringscript.Runner {
	return &ringscript.Runner{
		Backend:  ctx.RingBackend(),
		Capacity: ctx.Capacity,
		Logger:   log,
	}
}
