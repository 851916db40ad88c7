package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the API.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// OrderTransitions counts state machine edges taken by orders.
	OrderTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "order_transitions_total", Help: "Order status transitions by edge."},
		[]string{"from", "to"},
	)
	// AgentAssignments counts dispatch attempts by outcome.
	AgentAssignments = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "agent_assignments_total", Help: "Agent assignment attempts by outcome."},
		[]string{"outcome"},
	)
	// DeliveriesCompleted counts orders that reached the delivered status.
	DeliveriesCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "deliveries_completed_total", Help: "Completed deliveries."},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on the package registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(OrderTransitions)
		Registry.MustRegister(AgentAssignments)
		Registry.MustRegister(DeliveriesCompleted)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
