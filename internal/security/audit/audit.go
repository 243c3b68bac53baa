package audit

import (
	"context"
	"log/slog"
	"time"
)

// RequestIDContextKey carries the request ID assigned at the top of
// the middleware chain into audit events.
type RequestIDContextKey struct{}

// Logger emits structured audit events for privileged actions. Events
// go to the normal log stream under the "audit" message so they can be
// filtered downstream.
type Logger struct {
	logger *slog.Logger
}

func NewLogger(logger *slog.Logger) *Logger {
	return &Logger{logger: logger}
}

func (al *Logger) LogAction(ctx context.Context, principal, action, resource, resourceID, status, details string) {
	requestID := ""
	if reqID, ok := ctx.Value(RequestIDContextKey{}).(string); ok {
		requestID = reqID
	}

	al.logger.Info("audit",
		slog.String("action", action),
		slog.String("resource", resource),
		slog.String("resource_id", resourceID),
		slog.String("principal", principal),
		slog.String("status", status),
		slog.String("details", details),
		slog.String("request_id", requestID),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *Logger) LogJobCreated(ctx context.Context, principal, jobID string) {
	al.LogAction(ctx, principal, "create", "job", jobID, "success", "")
}

func (al *Logger) LogJobDeleted(ctx context.Context, principal, jobID string) {
	al.LogAction(ctx, principal, "delete", "job", jobID, "success", "")
}

func (al *Logger) LogDenied(ctx context.Context, principal, operation, reason string) {
	al.LogAction(ctx, principal, "access_denied", "api", operation, "denied", reason)
}
