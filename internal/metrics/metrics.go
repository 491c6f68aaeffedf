package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lunvee_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lunvee_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	eventsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lunvee_events_created_total",
		Help: "Count of events created by clients",
	})

	statusChangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lunvee_event_status_changes_total",
		Help: "Count of event status changes by resulting stage",
	}, []string{"status"})

	managerAssignmentsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lunvee_manager_assignments_total",
		Help: "Count of manager assignments and reassignments",
	})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveEventCreated increments the created-events counter.
func ObserveEventCreated() {
	eventsCreatedTotal.Inc()
}

// ObserveStatusChange records a status change with the resulting stage label.
func ObserveStatusChange(status string) {
	statusChangesTotal.WithLabelValues(status).Inc()
}

// ObserveManagerAssignment increments the assignment counter.
func ObserveManagerAssignment() {
	managerAssignmentsTotal.Inc()
}
