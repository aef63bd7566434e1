package cli

import (
	"strings"
	"sync"

	"github.com/haivivi/ringseq/pkg/ring"
)

// DefaultLogLines is the number of lines a LogWriter keeps when none is configured.
const DefaultLogLines = 50

// LogWriter implements io.Writer and keeps the most recent lines in a ring
// for TUI display. New lines are also offered on a notification channel.
type LogWriter struct {
	mu    sync.Mutex
	lines *ring.Array[string]
	ch    chan string
}

// NewLogWriter creates a new log writer with the given max lines.
// maxLines <= 0 selects DefaultLogLines.
func NewLogWriter(maxLines int) *LogWriter {
	if maxLines <= 0 {
		maxLines = DefaultLogLines
	}
	return &LogWriter{
		lines: ring.NewArray[string](maxLines),
		ch:    make(chan string, 100),
	}
}

// Write implements io.Writer.
// Handles multi-line input by splitting on newlines.
func (w *LogWriter) Write(p []byte) (n int, err error) {
	text := strings.TrimRight(string(p), "\n")
	lines := strings.Split(text, "\n")

	w.mu.Lock()
	for _, line := range lines {
		w.lines.PushBack(line)
	}
	w.mu.Unlock()

	for _, line := range lines {
		// Non-blocking send to channel
		select {
		case w.ch <- line:
		default:
		}
	}
	return len(p), nil
}

// Lines returns the buffered lines, oldest first.
func (w *LogWriter) Lines() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return ring.Values[string](w.lines)
}

// Channel returns the notification channel for new lines.
func (w *LogWriter) Channel() <-chan string {
	return w.ch
}
