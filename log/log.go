package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	charmlog "charm.land/log/v2"
)

// Level represents the log severity level.
type Level string

const (
	// LevelError logs errors only.
	LevelError Level = "error"
	// LevelWarn logs warnings and errors.
	LevelWarn Level = "warn"
	// LevelInfo logs informational messages and above.
	LevelInfo Level = "info"
	// LevelDebug logs everything.
	LevelDebug Level = "debug"
)

// Format represents the log output format.
type Format string

const (
	// FormatJSON outputs logs as JSON objects.
	FormatJSON Format = "json"
	// FormatLogfmt outputs logs in logfmt format.
	FormatLogfmt Format = "logfmt"
	// FormatText outputs human-readable styled logs.
	FormatText Format = "text"
)

var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownLogLevel indicates an unrecognized log level string.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownLogFormat indicates an unrecognized log format string.
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// NewHandlerFromStrings creates a [slog.Handler] from level and format
// strings.
func NewHandlerFromStrings(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	logFmt, err := ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return NewHandler(w, lvl, logFmt), nil
}

// NewHandler creates a [slog.Handler] with the specified level and format.
func NewHandler(w io.Writer, lvl Level, logFmt Format) slog.Handler {
	switch logFmt {
	case FormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource: true,
			Level:     lvl.Slog(),
		})

	case FormatLogfmt:
		return slog.NewTextHandler(w, &slog.HandlerOptions{
			AddSource: true,
			Level:     lvl.Slog(),
		})

	case FormatText:
		return charmlog.NewWithOptions(w, charmlog.Options{
			ReportTimestamp: true,
			Level:           lvl.charm(),
		})
	}

	return nil
}

// Slog returns the [slog.Level] corresponding to l.
func (l Level) Slog() slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelDebug:
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

func (l Level) charm() charmlog.Level {
	switch l {
	case LevelError:
		return charmlog.ErrorLevel
	case LevelWarn:
		return charmlog.WarnLevel
	case LevelDebug:
		return charmlog.DebugLevel
	}

	return charmlog.InfoLevel
}

// ParseLevel parses a log level string and returns the corresponding
// [Level].
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	}

	return "", ErrUnknownLogLevel
}

// ParseFormat parses a log format string and returns the corresponding
// [Format].
func ParseFormat(format string) (Format, error) {
	switch logFmt := Format(strings.ToLower(format)); logFmt {
	case FormatJSON, FormatLogfmt, FormatText:
		return logFmt, nil
	}

	return "", ErrUnknownLogFormat
}

// GetAllLevelStrings returns all valid level strings.
func GetAllLevelStrings() []string {
	return []string{
		string(LevelError),
		string(LevelWarn),
		string(LevelInfo),
		string(LevelDebug),
	}
}

// GetAllFormatStrings returns all valid format strings.
func GetAllFormatStrings() []string {
	return []string{
		string(FormatJSON),
		string(FormatLogfmt),
		string(FormatText),
	}
}
