package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger for scriptable CLI commands: console output on stderr,
// warn level unless EVENTHIVE_DEBUG is set.
func New() zerolog.Logger {
	level := zerolog.WarnLevel
	if strings.TrimSpace(os.Getenv("EVENTHIVE_DEBUG")) != "" {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// NewFile returns a logger writing JSON lines to <dir>/eventhive.log.
//
// The TUI owns the terminal (alt screen), so it must never log to stderr;
// if the file cannot be opened the logger is discarded rather than failing.
func NewFile(dir string) zerolog.Logger {
	level := zerolog.InfoLevel
	if strings.TrimSpace(os.Getenv("EVENTHIVE_DEBUG")) != "" {
		level = zerolog.DebugLevel
	}

	var w io.Writer = io.Discard
	if strings.TrimSpace(dir) != "" {
		if err := os.MkdirAll(dir, 0o700); err == nil {
			f, err := os.OpenFile(filepath.Join(dir, "eventhive.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if err == nil {
				w = f
			}
		}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
