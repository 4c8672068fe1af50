package planner

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors a Planner reports into.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	queries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	expanded *prometheus.HistogramVec
	hops     *prometheus.HistogramVec
}

// Outcome label values.
const (
	outcomeFound   = "found"
	outcomeNoRoute = "no_route"
	outcomeError   = "error"
)

// NewMetrics creates and registers the planner collectors on reg.
// Passing prometheus.DefaultRegisterer exposes them on the default /metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "skyroute_planner_queries_total",
			Help: "Route queries by criterion and outcome",
		}, []string{"criterion", "outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "skyroute_planner_query_duration_seconds",
			Help:    "Wall time of route queries",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"criterion"}),
		expanded: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "skyroute_planner_expanded_states",
			Help:    "Search states examined per query, summed over first-leg candidates",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"criterion"}),
		hops: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "skyroute_planner_route_hops",
			Help:    "Legs in returned routes",
			Buckets: prometheus.LinearBuckets(1, 1, 8),
		}, []string{"criterion"}),
	}
}

func (m *Metrics) record(c Criterion, r Route, expanded int, elapsed time.Duration) {
	if m == nil {
		return
	}
	name := c.String()
	label := outcomeNoRoute
	if r.Hops() > 0 {
		label = outcomeFound
		m.hops.WithLabelValues(name).Observe(float64(r.Hops()))
	}
	m.queries.WithLabelValues(name, label).Inc()
	m.duration.WithLabelValues(name).Observe(elapsed.Seconds())
	m.expanded.WithLabelValues(name).Observe(float64(expanded))
}

func (m *Metrics) failed(c Criterion) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(c.String(), outcomeError).Inc()
}
