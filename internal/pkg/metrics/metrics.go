// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"context"
	"strconv"
	"time"

	"fleetdispatch/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors. Use New to register them on a registry.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	Changes      *prometheus.CounterVec
	TasksByState *prometheus.GaugeVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fleetdispatch",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fleetdispatch",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Changes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fleetdispatch",
			Name:      "store_changes_total",
			Help:      "Committed entity writes by kind and operation.",
		}, []string{"kind", "op"}),
		TasksByState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "fleetdispatch",
			Name:      "tasks",
			Help:      "Current number of tasks by status.",
		}, []string{"status"}),
	}

	reg.MustRegister(m.HTTPRequests, m.HTTPDuration, m.Changes, m.TasksByState)
	return m
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, code int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ChangeObserver counts committed writes; it is handed to the unit of work factories.
func (m *Metrics) ChangeObserver() ports.ChangeObserver {
	return func(_ context.Context, changes []ports.Change) {
		for _, ch := range changes {
			m.Changes.WithLabelValues(ch.Kind, string(ch.Op)).Inc()
		}
	}
}

// SetTaskCounts replaces the per-status gauge with counts. Statuses that
// disappeared since the last call drop to zero.
func (m *Metrics) SetTaskCounts(counts map[string]int64) {
	m.TasksByState.Reset()
	for status, n := range counts {
		m.TasksByState.WithLabelValues(status).Set(float64(n))
	}
}
