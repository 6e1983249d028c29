// Package logger provides the shared warning logger for tree-viz.
//
// Rendering never aborts on a per-entry filesystem error; it skips the
// entry and reports it here instead. The logger discards everything until
// Init enables it, so library callers that never call Init stay silent.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// L is the package-wide logger. It discards all output until Init is called
// with Enabled set.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	Level   slog.Level // Minimum log level. Default: LevelInfo
	Output  io.Writer  // Destination. Default: os.Stderr
}

// Init configures logging. Call from main() before any log calls.
// Safe to call more than once; the last call wins.
func Init(opts Options) {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	L = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: opts.Level}))
}
