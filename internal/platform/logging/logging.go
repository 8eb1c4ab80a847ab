// Package logging builds the slog loggers shared by the landing binaries.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Format selects the handler used by New.
type Format string

const (
	// FormatText writes colourised human-readable lines.
	FormatText Format = "text"
	// FormatJSON writes one JSON object per record.
	FormatJSON Format = "json"
)

// Options configures New.
type Options struct {
	Level   slog.Level
	Format  Format
	NoColor bool
}

// ParseLevel converts a string to a slog.Level. It is case-insensitive.
func ParseLevel(levelStr string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug", "trace":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error", "fatal":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %q", levelStr)
	}
}

// ParseFormat accepts "text" or "json"; empty means text.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown log format: %q", value)
	}
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if opts.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: opts.Level}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      opts.Level,
		TimeFormat: time.DateTime,
		NoColor:    opts.NoColor,
	}))
}

// Setup builds a stderr logger from level and format strings and installs
// it as the slog default. Unknown values fall back to info/text and are
// reported on the returned logger.
func Setup(service string, level string, format string) *slog.Logger {
	parsedLevel, levelErr := ParseLevel(level)
	parsedFormat, formatErr := ParseFormat(format)
	logger := New(os.Stderr, Options{Level: parsedLevel, Format: parsedFormat}).With(slog.String("service", service))
	if levelErr != nil {
		logger.Warn("falling back to info level", slog.Any("error", levelErr))
	}
	if formatErr != nil {
		logger.Warn("falling back to text format", slog.Any("error", formatErr))
	}
	slog.SetDefault(logger)
	return logger
}
