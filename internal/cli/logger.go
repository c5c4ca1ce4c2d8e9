package cli

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Log formats accepted by NewLogger.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// DefaultLogLevel is the level used when -log-level is not given.
const DefaultLogLevel = "info"

// NewLogger builds the process logger writing to w. format is "console"
// (human-readable, no colors) or "json"; level is any zerolog level name.
// Invalid values are reported as *UsageError.
func NewLogger(level, format string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.Nop(), usagef("invalid log-level %q: must be 'trace', 'debug', 'info', 'warn', 'error', 'fatal', 'panic' or 'disabled'", level)
	}

	var out io.Writer
	switch strings.ToLower(format) {
	case LogFormatConsole:
		out = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}
	case LogFormatJSON:
		out = w
	default:
		return zerolog.Nop(), usagef("invalid log-format %q: must be 'console' or 'json'", format)
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
