// Package obslog provides the structured logging used by the ioq worker
// pool for lifecycle events (worker start/stop, cancellation, destroy).
//
// It never logs on the per-operation hot path: allocation failures,
// submission failures, and per-entry operation results are reported to
// callers via return values and IoqEnt.Err (see bfserr), not printed here.
package obslog

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with ioq-specific contextual fields.
type Logger struct {
	*slog.Logger
}

// New creates a Logger using the given handler. A nil handler defaults to a
// text handler on stderr at info level.
func New(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(handler)}
}

// Noop returns a Logger that discards all output.
func Noop() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))}
}

// WithWorker scopes the logger to a single worker goroutine.
func (l *Logger) WithWorker(id int) *Logger {
	return &Logger{Logger: l.Logger.With("worker", id)}
}

// LogWorkerStart logs a worker goroutine starting. Call it on a logger
// already scoped with WithWorker, so the worker id isn't repeated per call.
func (l *Logger) LogWorkerStart(ctx context.Context) {
	l.InfoContext(ctx, "ioq worker started")
}

// LogWorkerStop logs a worker goroutine exiting its loop.
func (l *Logger) LogWorkerStop(ctx context.Context) {
	l.InfoContext(ctx, "ioq worker stopped")
}

// LogCancel logs a call to Cancel and how many queued submissions it
// drained into cancelled completions.
func (l *Logger) LogCancel(ctx context.Context, drained int) {
	l.InfoContext(ctx, "ioq cancelled", "drained", drained)
}

// LogDestroy logs the queue shutting down.
func (l *Logger) LogDestroy(ctx context.Context) {
	l.InfoContext(ctx, "ioq destroyed")
}
