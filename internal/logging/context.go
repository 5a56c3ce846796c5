package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldSessionID is the standardized structured logging key for per-invocation session ids.
	FieldSessionID = "session_id"
	// FieldConfigPath is the standardized structured logging key for the loaded config file.
	FieldConfigPath = "config_path"
	// FieldFilename is the standardized structured logging key for resolved output paths.
	FieldFilename = "filename"
)

type sessionIDKey struct{}

// WithSessionID stores the invocation session id on the context.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// SessionIDFromContext retrieves the session id recorded by WithSessionID.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(sessionIDKey{}).(string)
	return id, ok && id != ""
}

// WithContext returns a logger augmented with fields derived from the context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if id, ok := SessionIDFromContext(ctx); ok {
		return logger.With(slog.String(FieldSessionID, id))
	}
	return logger
}
