package rebardebug

import (
	"sync"

	"go.uber.org/zap"
)

// Fields is a flat set of structured key/value pairs attached to one
// debug log record.
type Fields map[string]any

var (
	mu     sync.Mutex
	logger *zap.Logger
)

// UseLogger installs the *zap.Logger debug events are written to, for
// example a zap observer in tests. Until a logger is installed, or
// after a nil one is, events fall back to zap.NewNop and are
// discarded.
func UseLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

func current() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// Log writes one "[REBAR - DEBUG]" record. Callers should guard calls
// with the relevant Enabled check so the Fields map is never built
// when logging is off.
func Log(message string, fields Fields) {
	l := current()
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	l.Debug("[REBAR - DEBUG]: "+message, zapFields...)
}
