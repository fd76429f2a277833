package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type ctxKey string

const commandIDKey ctxKey = "commandID"

var sessionID = uuid.NewString()

// InitLoggerWithWriter installs the default logger writing to w
func InitLoggerWithWriter(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	handler = handler.WithAttrs(append(cfg.BaseAttributes(), slog.String(AttrKeySessionID, sessionID)))

	l := slog.New(handler)
	slog.SetDefault(l)
	return l
}

// InitLogger opens (or creates) the log file in logDir and installs the default logger.
// The terminal is reserved for the game, so logs never go to stdout.
// The returned closer must be called on shutdown.
func InitLogger(cfg Config, logDir string) (io.Closer, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log dir: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(logDir, DefaultLogFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	InitLoggerWithWriter(cfg, f)
	return f, nil
}

// SessionID returns the id shared by every log line of this process
func SessionID() string {
	return sessionID
}

// GenerateCommandID creates a new UUID for tracing a single command.
func GenerateCommandID() string {
	return uuid.NewString()
}

// WithCommandID returns a new context containing the command ID.
func WithCommandID(ctx context.Context, commandID string) context.Context {
	return context.WithValue(ctx, commandIDKey, commandID)
}

// CommandIDFromContext extracts the command ID from the context, if present.
func CommandIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(commandIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// FromContext returns a logger that includes the command_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := CommandIDFromContext(ctx); ok {
		return slog.Default().With(AttrKeyCommandID, id)
	}
	return slog.Default()
}
