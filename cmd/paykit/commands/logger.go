package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// stderrLogger writes leveled log lines for --verbose.
type stderrLogger struct {
	mu  sync.Mutex
	out io.Writer
}

func newStderrLogger(out io.Writer) *stderrLogger {
	return &stderrLogger{out: out}
}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) {
	l.write("DEBUG", msg, fields)
}

func (l *stderrLogger) Info(msg string, fields map[string]interface{}) {
	l.write("INFO", msg, fields)
}

func (l *stderrLogger) Warn(msg string, fields map[string]interface{}) {
	l.write("WARN", msg, fields)
}

func (l *stderrLogger) Error(msg string, fields map[string]interface{}) {
	l.write("ERROR", msg, fields)
}

func (l *stderrLogger) write(level, msg string, fields map[string]interface{}) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	var line strings.Builder

	line.WriteString(level)
	line.WriteString(" ")
	line.WriteString(msg)

	for _, key := range keys {
		_, _ = fmt.Fprintf(&line, " %s=%v", key, fields[key])
	}

	line.WriteString("\n")

	l.mu.Lock()
	defer l.mu.Unlock()

	_, _ = io.WriteString(l.out, line.String())
}
