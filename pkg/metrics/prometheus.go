package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	SchedulesBuilt   *prometheus.CounterVec
	BuildTime        prometheus.Histogram
	DefaultsApplied  *prometheus.CounterVec
	ErrorsCount      *prometheus.CounterVec
	HTTPRequests     *prometheus.CounterVec
	StatusBroadcasts prometheus.Counter
}

// NewMetrics creates new prometheus metrics on a dedicated registry
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		SchedulesBuilt: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schedules_built_total",
			Help:      "The total number of schedules computed, by overall service status",
		}, []string{"status"}),
		BuildTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "schedule_build_seconds",
			Help:      "Time taken to load a route and build its schedule",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
		}),
		DefaultsApplied: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_defaults_applied_total",
			Help:      "The total number of malformed route fields replaced with defaults",
		}, []string{"field"}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "The total number of HTTP requests served",
		}, []string{"method", "route", "code"}),
		StatusBroadcasts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_broadcasts_total",
			Help:      "The total number of service status events published",
		}),
	}
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
