// Package logger wraps zerolog.Logger for the argonpass command.
//
// Entries must never carry the master secret, a derived key or a generated
// password. Callers log lengths, costs, durations and outcomes only.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// New returns a human-readable logger writing to w at the given level.
// Unknown levels fall back to warn.
func New(w io.Writer, level string) *Logger {
	lvl := ParseLevel(level)
	l := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
	return &Logger{l}
}

// NewFromFile returns a JSON logger appending to path. If the file cannot be
// opened the logger falls back to stderr.
func NewFromFile(path, level string) *Logger {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		l := New(os.Stderr, level)
		l.Warn().Err(err).Str("path", path).Msg("cannot open log file, logging to stderr")
		return l
	}
	l := zerolog.New(f).Level(ParseLevel(level)).With().
		Str("role", "argonpass").
		Timestamp().
		Logger()
	return &Logger{l}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// ParseLevel maps a level name onto a zerolog level, defaulting to warn.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return lvl
}
