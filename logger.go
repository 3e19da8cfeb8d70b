package mapsym

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
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
// SetLogger can be called concurrently with symbol construction.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for mapsym, its sub-packages and the
// underlying gg rasterizer.
// By default, mapsym produces no log output.
//
// Pass nil to disable logging again.
//
// Log levels used by mapsym:
//   - [slog.LevelDebug]: render mode, symbol sizes, atlas placement and page growth
//   - [slog.LevelWarn]: drawing errors reported by the rasterizer
//
// Example:
//
//	mapsym.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	// gg reports its own rasterizer and accelerator events.
	gg.SetLogger(l)
}

// Logger returns the current logger used by mapsym.
// The atlas package calls this to share the same logger configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
