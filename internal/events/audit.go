package events

import (
	"context"

	"go.uber.org/zap"
)

// AuditLog writes every link creation to a structured log.
type AuditLog struct {
	logger *zap.Logger
}

// NewAuditLog creates a new audit log writing to logger.
func NewAuditLog(logger *zap.Logger) *AuditLog {
	return &AuditLog{logger: logger}
}

// LinkCreated handles a LinkCreatedEvent.
func (a *AuditLog) LinkCreated(_ context.Context, event *LinkCreatedEvent) error {
	a.logger.Info("link created",
		zap.String("code", event.Code),
		zap.String("url", event.URL),
		zap.Bool("generated", event.Generated),
		zap.Time("createdAt", event.CreatedAt),
		zap.String("requestId", event.RequestID),
	)

	return nil
}
