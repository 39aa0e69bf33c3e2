// Package cli implements the swtile command-line interface.
//
// # Commands
//
//   - swtile <N>: score two seeded random DNA sequences of length N
//   - swtile fasta <a.fa> <b.fa>: score the first record of two FASTA files
//   - swtile config: print the effective configuration as TOML
//
// # Logging
//
// Diagnostics go to stderr through charmbracelet/log; results go to stdout.
// --verbose (-v) enables debug output, including one line per wavefront.
// The logger travels in the command context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a timestamped logger writing to w at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a context carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
			return l
		}
	}

	return log.Default()
}
