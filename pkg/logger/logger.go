// Package logger provides a structured, levelled logger built on log/slog.
//
// Logs go to stderr so they never interleave with the console session on
// stdout. Production environments get JSON lines, everything else gets the
// human-readable text handler:
//
//	logger.Setup(os.Stderr, config.AppEnv(), config.LogLevel())
//	logger.Info("customers saved", "path", "customers.dat", "count", 12)
//	// → time=... level=INFO msg="customers saved" path=customers.dat count=12
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var L *slog.Logger

func init() {
	Setup(os.Stderr, "local", "info")
}

// Setup replaces the package logger. env selects the handler ("production"
// or "prod" → JSON); level is one of debug, info, warn, error.
func Setup(w io.Writer, env, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	switch strings.ToLower(env) {
	case "production", "prod":
		handler = slog.NewJSONHandler(w, opts) // structured JSON for log aggregators
	default:
		handler = slog.NewTextHandler(w, opts) // human-readable for dev
	}

	L = slog.New(handler)
	slog.SetDefault(L)
	return L
}

// ParseLevel maps a level name to slog.Level. Unknown names mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// With returns a child logger carrying args on every line.
//
//	log := logger.With("registry", "orders")
//	log.Warn("load failed", "err", err)
func With(args ...any) *slog.Logger { return L.With(args...) }

// ─────────────────────────────────────────────
// Short-hand helpers (use base logger)
// ─────────────────────────────────────────────

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
