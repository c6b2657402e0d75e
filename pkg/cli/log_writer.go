package cli

import (
	"strings"
	"sync"

	"github.com/haivivi/containers/pkg/queue"
)

// LogWriter implements io.Writer and keeps the most recent log lines. Once
// full, each new line evicts the oldest.
type LogWriter struct {
	mu    sync.Mutex
	lines *queue.Queue[string]
}

// NewLogWriter creates a log writer that keeps at most maxLines lines.
func NewLogWriter(maxLines int) *LogWriter {
	return &LogWriter{lines: queue.NewBounded[string](max(maxLines, 1))}
}

// Write implements io.Writer.
// Handles multi-line input by splitting on newlines.
func (w *LogWriter) Write(p []byte) (n int, err error) {
	text := strings.TrimRight(string(p), "\n")
	if text == "" {
		return len(p), nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for _, line := range strings.Split(text, "\n") {
		if w.lines.Full() {
			w.lines.Dequeue()
		}
		w.lines.Enqueue(line)
	}
	return len(p), nil
}

// Lines returns the buffered lines, oldest first.
func (w *LogWriter) Lines() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, 0, w.lines.Len())
	for _, line := range w.lines.All() {
		out = append(out, line)
	}
	return out
}
