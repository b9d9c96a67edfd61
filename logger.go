package asciicam

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false, so per-frame debug
// attributes are never built while logging is off.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var (
	silent = slog.New(discard{})
	logger atomic.Pointer[slog.Logger]
)

func init() {
	logger.Store(silent)
}

// SetLogger routes the log output of asciicam and its subpackages to l.
// A nil l turns logging off again, which is the initial state. It may be
// called while frames are being rendered.
//
// Levels:
//   - [slog.LevelDebug]: skipped frames, sampling surface resizes, dedupe hits
//   - [slog.LevelInfo]: controller and server lifecycle, saved snapshots
//   - [slog.LevelWarn]: failed ticks, dropped WebSocket clients
//
// Example:
//
//	asciicam.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	logger.Store(l)
}

// Logger returns the logger set by SetLogger, or a silent one.
func Logger() *slog.Logger {
	return logger.Load()
}
