package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_IncTransition(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncTransition("budget", "SENT")
	m.IncTransition("budget", "SENT")
	m.IncTransition("service_order", "IN_PROGRESS")

	if got := testutil.ToFloat64(m.Transitions.WithLabelValues("budget", "SENT")); got != 2 {
		t.Fatalf("expected 2 budget transitions, got %v", got)
	}
	if got := testutil.ToFloat64(m.Transitions.WithLabelValues("service_order", "IN_PROGRESS")); got != 1 {
		t.Fatalf("expected 1 service order transition, got %v", got)
	}
}

func TestMetrics_IncPublishFailure(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncPublishFailure("budget.sent")

	if got := testutil.ToFloat64(m.PublishFailures.WithLabelValues("budget.sent")); got != 1 {
		t.Fatalf("expected 1 publish failure, got %v", got)
	}
}
