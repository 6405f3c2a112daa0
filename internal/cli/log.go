// Package cli implements the eulertour command-line interface.
//
// # Commands
//
//   - circuit: generate a graph from -v/-e/-s and print its Eulerian circuit
//   - find: search a circuit in a graph stored as JSON
//   - generate: write a generated graph as JSON
//   - render: draw a stored graph and its circuit as DOT, SVG, PNG or JSON
//   - echo: print the program name and arguments
//   - serve: run the HTTP API
//   - cache, config, completion: housekeeping
//
// # Output
//
// Results go to stdout; status lines and logs go to stderr, so
// "eulertour circuit ... > out.txt" captures only the circuit line.
//
// # Logging
//
// --verbose enables debug logging. Loggers are passed through
// context.Context so commands can report timings.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time rounded to the millisecond,
// e.g. "Rendered 2 artifacts (340ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
