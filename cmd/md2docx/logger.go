package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger builds the terminal logger. Quiet shows errors only, verbose
// adds per-block and per-formula debug events.
func newLogger(w io.Writer, quiet, verbose bool) *log.Logger {
	level := log.WarnLevel
	switch {
	case quiet:
		level = log.ErrorLevel
	case verbose:
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: verbose,
		TimeFormat:      time.TimeOnly,
		Level:           level,
		Prefix:          "md2docx",
	})
}

// slogFor exposes the terminal logger to the library's slog API.
func slogFor(l *log.Logger) *slog.Logger {
	return slog.New(l)
}
