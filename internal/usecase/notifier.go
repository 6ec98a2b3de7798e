package usecase

import (
	"context"
	"time"

	"oficina_xpto/internal/clock"
	"oficina_xpto/internal/domain/events"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	aggregateCustomer     = "customer"
	aggregateServiceOrder = "service_order"
	aggregateBudget       = "budget"
)

// Collaborators groups what every use case needs besides its repositories.
// Nil Publisher and Metrics disable the corresponding side effect.
type Collaborators struct {
	Publisher interfaces.IEventPublisher
	Metrics   interfaces.IMetricsRecorder
	Clock     clock.Clock
	IDs       events.IDGenerator
	Logger    *zap.Logger
}

type notifier struct {
	publisher interfaces.IEventPublisher
	metrics   interfaces.IMetricsRecorder
	clock     clock.Clock
	ids       events.IDGenerator
	logger    *zap.Logger
}

func newNotifier(c Collaborators, area string) notifier {
	n := notifier{
		publisher: c.Publisher,
		metrics:   c.Metrics,
		clock:     c.Clock,
		ids:       c.IDs,
		logger:    c.Logger,
	}
	if n.clock == nil {
		n.clock = clock.SystemClock{}
	}
	if n.ids == nil {
		n.ids = uuid.NewString
	}
	if n.logger == nil {
		n.logger = zap.NewNop()
	}
	n.logger = n.logger.With(zap.String("area", area), zap.String("layer", "usecase"))
	return n
}

func (n notifier) now() time.Time {
	return n.clock.Now()
}

// publish never fails the caller; a lost event is logged and counted.
func (n notifier) publish(ctx context.Context, name, aggregateID string, payload map[string]any) {
	if n.publisher == nil {
		return
	}
	e := events.New(n.ids, n.clock, name, aggregateID, payload)
	if err := n.publisher.Publish(ctx, e); err != nil {
		n.logger.Warn("failed to publish event",
			zap.String("event", name),
			zap.String("aggregate_id", aggregateID),
			zap.Error(err),
		)
		if n.metrics != nil {
			n.metrics.IncPublishFailure(name)
		}
	}
}

func (n notifier) transitioned(aggregate, status string) {
	if n.metrics != nil {
		n.metrics.IncTransition(aggregate, status)
	}
}
