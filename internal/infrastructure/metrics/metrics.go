package metrics

import (
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts workshop state transitions and lost domain events.
type Metrics struct {
	Transitions     *prometheus.CounterVec
	PublishFailures *prometheus.CounterVec
}

var _ interfaces.IMetricsRecorder = (*Metrics)(nil)

// New registers the collectors on reg; pass prometheus.DefaultRegisterer to
// expose them on /metrics.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "oficina_transitions_total",
			Help: "Total number of aggregate state transitions, by aggregate and target status",
		}, []string{"aggregate", "status"}),
		PublishFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "oficina_event_publish_failures_total",
			Help: "Total number of domain events that could not be published",
		}, []string{"event"}),
	}
}

func (m *Metrics) IncTransition(aggregate, status string) {
	m.Transitions.WithLabelValues(aggregate, status).Inc()
}

func (m *Metrics) IncPublishFailure(eventName string) {
	m.PublishFailures.WithLabelValues(eventName).Inc()
}
