package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the process logger. It discards records until InitLogger or
// InitLoggerWithConfig installs a real handler.
var Logger = slog.New(slog.DiscardHandler)

// InitLogger installs a JSON stdout logger at info level.
func InitLogger() *slog.Logger {
	return InitLoggerWithConfig("info", "json", false)
}

// InitLoggerWithConfig installs the process logger. When otelEnabled is set the
// records are also exported through the global OTel logger provider.
func InitLoggerWithConfig(level, format string, otelEnabled bool) *slog.Logger {
	lvl := ParseLevel(level)
	stdout := newStdoutHandler(os.Stdout, format, lvl)

	var handler slog.Handler
	if otelEnabled {
		handler = NewMultiHandler(stdout, lvl)
	} else {
		handler = NewMultiHandlerStdoutOnly(stdout)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	Logger.Info("Logger initialized", "level", lvl.String(), "format", format, "otel", otelEnabled)
	return Logger
}

// NewDiscardLogger installs a logger that drops everything. Used by tests.
func NewDiscardLogger() *slog.Logger {
	Logger = slog.New(slog.DiscardHandler)
	return Logger
}

func newStdoutHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, "text") {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
