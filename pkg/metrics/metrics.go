// Package metrics exposes Prometheus collectors for HTTP requests and
// database queries on a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	queries  *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "qa_forum",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "qa_forum",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "qa_forum",
			Name:      "db_queries_total",
			Help:      "Database queries by table and outcome.",
		}, []string{"table", "outcome"}),
	}
	m.registry.MustRegister(m.requests, m.latency, m.queries)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// InstrumentDB counts every query and row scan gorm runs on db
func (m *Metrics) InstrumentDB(db *gorm.DB) error {
	count := func(tx *gorm.DB) {
		table := tx.Statement.Table
		if table == "" {
			table = "raw"
		}
		outcome := "ok"
		if tx.Error != nil && tx.Error != gorm.ErrRecordNotFound {
			outcome = "error"
		}
		m.queries.WithLabelValues(table, outcome).Inc()
	}
	if err := db.Callback().Query().After("gorm:query").Register("metrics:query", count); err != nil {
		return err
	}
	return db.Callback().Row().After("gorm:row").Register("metrics:row", count)
}
