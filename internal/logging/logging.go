// Package logging builds the diagnostic logger. User-facing output does not
// go through here; see package ui.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Levels lists the accepted level names.
var Levels = []string{"debug", "info", "warn", "error"}

// Formats lists the accepted formatter names.
var Formats = []string{"text", "json", "logfmt"}

// Options holds configuration for the logger.
type Options struct {
	Level     string
	Formatter string // text, json or logfmt
}

// New returns a logger writing to w, prefixed "todo".
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:     ParseLevel(opts.Level),
		Formatter: ParseFormatter(opts.Formatter),
		Prefix:    "todo",
	})
}

// ParseLevel maps a level name to a log.Level; unknown names mean warn.
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// ParseFormatter maps a formatter name to a log.Formatter.
func ParseFormatter(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
