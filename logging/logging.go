// Package logging provides the structured logger shared by the querk
// packages and the command line tool.
//
// It is a thin layer over log/slog:
//
//   - Level mirrors the four slog severities and parses from config strings.
//   - Config selects the level, text or JSON output and a service attribute.
//   - New returns a *slog.Logger; packages accept *slog.Logger directly.
//
// Library code never logs through a global: executors take a logger via
// options and default to Discard().
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrUnknownLevel indicates a level name ParseLevel does not recognize.
var ErrUnknownLevel = errors.New("logging: unknown level")

// Level represents log severity, ordered Debug < Info < Warn < Error.
type Level int

const (
	// LevelDebug is for per-batch and per-query detail.
	LevelDebug Level = iota
	// LevelInfo is for normal operational messages.
	LevelInfo
	// LevelWarn is for recoverable issues such as executor disagreement.
	LevelWarn
	// LevelError is for failed operations.
	LevelError
)

// String returns "DEBUG", "INFO", "WARN", "ERROR" or "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// toSlogLevel maps Level onto slog; unknown values map to Info.
func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel parses a case-insensitive level name ("debug", "info",
// "warn"/"warning", "error"). The empty string parses as LevelInfo.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("ParseLevel(%q): %w", s, ErrUnknownLevel)
	}
}

// Config configures New. The zero value logs Info and above as text to stderr.
type Config struct {
	// Level is the minimum level written.
	Level Level

	// JSON selects the JSON handler instead of the text handler.
	JSON bool

	// Service, when set, is attached to every record as "service".
	Service string

	// Output overrides the destination; nil means os.Stderr.
	Output io.Writer
}

// New builds a *slog.Logger from cfg.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level.toSlogLevel()}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}
	if cfg.Service != "" {
		h = h.WithAttrs([]slog.Attr{slog.String("service", cfg.Service)})
	}

	return slog.New(h)
}

// Default returns an Info-level text logger on stderr tagged "querk".
func Default() *slog.Logger {
	return New(Config{Level: LevelInfo, Service: "querk"})
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
