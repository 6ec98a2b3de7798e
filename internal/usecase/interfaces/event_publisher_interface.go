package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/events"
)

// IEventPublisher ships domain events to other services (e.g. Redis pub/sub).
type IEventPublisher interface {
	Publish(ctx context.Context, e events.Event) error
}

// IMetricsRecorder counts business transitions for observability.
type IMetricsRecorder interface {
	IncTransition(aggregate, status string)
	IncPublishFailure(eventName string)
}
