package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haivivi/ringseq/pkg/cli"
	"github.com/haivivi/ringseq/pkg/ringscript"
)

var (
	showWidth  int
	showHeight int
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Replay a script and render the ring",
	Long: `Replay a script and render the ring in a terminal frame.

The frame has a slot row marking the front and back values, the forward and
reverse walks, and the most recent log records produced while the script ran.
The number of log lines kept comes from the context's log_lines setting.

Examples:
  ringseq show -f script.yaml
  ringseq -c small show -f script.yaml --width 100`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadScript()
		if err != nil {
			return err
		}
		ctx, err := getContext()
		if err != nil {
			return err
		}

		logs := cli.NewLogWriter(ctx.LogLines)
		log := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey && len(groups) == 0 {
					return slog.Attr{}
				}
				return a
			},
		}))

		snap, err := newRunner(ctx, log).Run(cmd.Context(), s)
		if err != nil {
			return err
		}

		frame := snapshotFrame(snap, logs)
		height := showHeight
		if height <= 0 {
			height = autoHeight(len(frame.Sections), len(logs.Lines()))
		}

		w := outputWriter
		if w == nil {
			w = os.Stdout
		}
		_, err = fmt.Fprintln(w, frame.Render(showWidth, height))
		return err
	},
}

func init() {
	showCmd.Flags().IntVar(&showWidth, "width", 72, "frame width in columns")
	showCmd.Flags().IntVar(&showHeight, "height", 0, "frame height in lines (default: fit the log)")
}

// snapshotFrame lays out a snapshot as a frame.
func snapshotFrame(snap *ringscript.Snapshot, logs *cli.LogWriter) cli.Frame {
	styles := cli.NewStyles(cli.DefaultTheme)
	return cli.Frame{
		Styles: styles,
		Title:  "ringseq",
		Status: fmt.Sprintf("%s %d/%d", snap.Backend, snap.Len, snap.Capacity),
		Sections: []cli.Section{
			{
				Label: "Slots",
				Content: func() []string {
					return styles.RingCells(snap.Values, snap.Capacity)
				},
			},
			{
				Label: "Walk",
				Content: func() []string {
					return []string{
						"forward " + strings.Join(snap.Values, " "),
						"reverse " + strings.Join(snap.Reverse, " "),
						"evicted " + strings.Join(snap.Evicted, " "),
					}
				},
			},
			{
				Label:   "Log",
				Content: logs.Lines,
			},
		},
		Help: "^F front  ^B back",
	}
}

// autoHeight returns a frame height whose equal-sized sections fit logLines.
func autoHeight(sections, logLines int) int {
	per := min(max(logLines, 3), 20)
	return 5 + sections + sections*per
}
