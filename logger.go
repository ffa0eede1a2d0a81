package plotdraw

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with exports running on other
// goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for plotdraw and all its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used by plotdraw:
//   - [slog.LevelDebug]: replay diagnostics (command counts, skipped
//     commands, font fallbacks)
//   - [slog.LevelWarn]: failed exports
//
// Example:
//
//	plotdraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by plotdraw.
// Sub-packages (recording, recording/backends/...) call this to share the
// same configuration without introducing import cycles.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
