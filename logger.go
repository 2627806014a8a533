package rawfb

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false so slog never formats
// the message, which keeps logging free on the per-frame path.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var (
	silent = slog.New(discard{})

	// current is swapped atomically so SetLogger may race with logging.
	current atomic.Pointer[slog.Logger]
)

func init() {
	current.Store(silent)
}

// SetLogger installs the logger used by rawfb and its sub-packages.
// rawfb is silent until SetLogger is called; passing nil silences it again.
// SetLogger is safe for concurrent use.
//
// Levels:
//   - [slog.LevelDebug]: pixmap and surface geometry, per-run details
//   - [slog.LevelInfo]: surface acquisition, frame loop start and summary
//   - [slog.LevelWarn]: snapshot failures, errors while releasing a surface
//
// Example:
//
//	rawfb.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}

// LoggerFor returns the current logger tagged with a component attribute.
// Sub-packages use it so their records can be told apart.
func LoggerFor(component string) *slog.Logger {
	return current.Load().With(slog.String("component", component))
}
