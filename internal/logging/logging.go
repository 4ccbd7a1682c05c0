// Package logging holds the process logger shared by the session and the CLI.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/zbh255/bilog"
)

// Logger is the process-wide logger. It writes to stderr until the CLI
// replaces it from config.
var Logger bilog.Logger = New(os.Stderr)

// NilLogger discards everything.
var NilLogger bilog.Logger = new(nilLogger)

// New returns an unbuffered, timestamped logger writing to w.
func New(w io.Writer) bilog.Logger {
	return bilog.NewLogger(w, bilog.PANIC, bilog.WithTimes(),
		bilog.WithLowBuffer(0), bilog.WithTopBuffer(0))
}

// Open returns a logger appending to the file at path, and the file so the
// caller can close it. An empty path yields NilLogger and a nil closer.
func Open(path string) (bilog.Logger, io.Closer, error) {
	if path == "" {
		return NilLogger, nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f), f, nil
}
