package events

import (
	"time"

	"oficina_xpto/internal/clock"
)

const (
	CustomerCreated           = "customer.created"
	CustomerUpdated           = "customer.updated"
	ServiceOrderCreated       = "service_order.created"
	ServiceOrderStatusChanged = "service_order.status_changed"
	ServiceOrderItemsChanged  = "service_order.items_changed"
	BudgetCreated             = "budget.created"
	BudgetSent                = "budget.sent"
	BudgetApproved            = "budget.approved"
	BudgetRejected            = "budget.rejected"
	BudgetExpired             = "budget.expired"
)

// IDGenerator returns a fresh, unique event id.
type IDGenerator func() string

// Event is an immutable record of something that happened to an aggregate.
type Event struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	AggregateID string         `json:"aggregate_id"`
	OccurredAt  time.Time      `json:"occurred_at"`
	Payload     map[string]any `json:"payload,omitempty"`
}

// New builds an Event; id and timestamp come from the injected generator and clock.
func New(ids IDGenerator, clk clock.Clock, name, aggregateID string, payload map[string]any) Event {
	return Event{
		ID:          ids(),
		Name:        name,
		AggregateID: aggregateID,
		OccurredAt:  clk.Now(),
		Payload:     payload,
	}
}
