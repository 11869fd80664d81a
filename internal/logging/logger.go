// Package logging provides the structured logger shared by the CLI, the
// MCP server and the assessment sessions.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config selects level and format. Output defaults to stderr so stdout
// stays free for command results and the MCP stdio transport.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // text, json
	Output io.Writer
}

// Logger wraps slog with context-aware helpers
type Logger struct {
	logger *slog.Logger
}

// ParseLevel maps a level name to a slog level; unknown names mean info
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// New creates a Logger from config
func New(config Config) *Logger {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(config.Level)}

	var handler slog.Handler
	if strings.EqualFold(config.Format, "json") {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	return &Logger{logger: slog.New(handler)}
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Slog exposes the underlying slog logger
func (l *Logger) Slog() *slog.Logger {
	return l.logger
}

// With returns a logger carrying extra fields
func (l *Logger) With(args ...any) *Logger {
	return &Logger{logger: l.logger.With(args...)}
}

// FromContext returns a logger carrying the session and request ids found in ctx
func (l *Logger) FromContext(ctx context.Context) *Logger {
	var args []any
	if id := SessionID(ctx); id != "" {
		args = append(args, "session_id", id)
	}
	if id := RequestID(ctx); id != "" {
		args = append(args, "request_id", id)
	}
	if len(args) == 0 {
		return l
	}
	return l.With(args...)
}

func (l *Logger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// InfoContext logs at info level with the ids from ctx
func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.FromContext(ctx).Info(msg, args...)
}

// WarnContext logs at warn level with the ids from ctx
func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.FromContext(ctx).Warn(msg, args...)
}

// ErrorContext logs at error level with the ids from ctx
func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.FromContext(ctx).Error(msg, args...)
}

type contextKey string

const (
	sessionIDKey contextKey = "session_id"
	requestIDKey contextKey = "request_id"
)

// WithSessionID stores an assessment session id in ctx
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionID returns the assessment session id stored in ctx
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey).(string)
	return id
}

// WithRequestID stores an MCP request id in ctx
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID returns the MCP request id stored in ctx
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
