package events

import (
	"context"
	"saude-connect/internal/app/contracts"
	"saude-connect/internal/app/models"
	"saude-connect/internal/pkg/constvars"
	"saude-connect/internal/pkg/utils"

	"go.uber.org/zap"
)

type noopEventPublisher struct {
	Log *zap.Logger
}

// NewNoopEventPublisher is used when no broker is configured; events are
// only logged at debug level.
func NewNoopEventPublisher(logger *zap.Logger) contracts.EventPublisher {
	return &noopEventPublisher{Log: logger}
}

func (p *noopEventPublisher) Publish(ctx context.Context, event *models.ClientEvent) error {
	p.Log.Debug("noopEventPublisher.Publish dropped event",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
	)
	return nil
}
