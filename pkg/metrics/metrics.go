// Package metrics содержит Prometheus-коллекторы сервиса.
package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор коллекторов, регистрируемых в Prometheus по умолчанию.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec

	DBConnectionsOpen  prometheus.Gauge
	DBConnectionsIdle  prometheus.Gauge
	DBConnectionsInUse prometheus.Gauge
	DBWaitCount        prometheus.Gauge
	DBWaitDuration     prometheus.Gauge
}

// New создает и регистрирует коллекторы под namespace, производным от имени сервиса.
func New(serviceName string) *Metrics {
	ns := namespace(serviceName)

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "db",
			Name:      "queries_total",
			Help:      "Total number of database queries.",
		}, []string{"operation", "status"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "Database query duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),

		DBConnectionsOpen: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Subsystem: "db",
			Name:      "connections_open",
			Help:      "Open connections in the pool.",
		}),

		DBConnectionsIdle: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Subsystem: "db",
			Name:      "connections_idle",
			Help:      "Idle connections in the pool.",
		}),

		DBConnectionsInUse: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Subsystem: "db",
			Name:      "connections_in_use",
			Help:      "Connections currently in use.",
		}),

		DBWaitCount: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Subsystem: "db",
			Name:      "wait_count",
			Help:      "Total number of connection waits.",
		}),

		DBWaitDuration: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Subsystem: "db",
			Name:      "wait_duration_seconds",
			Help:      "Total time blocked waiting for a connection.",
		}),
	}
}

// ObserveHTTPRequest фиксирует завершенный HTTP-запрос.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, durationSec float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(durationSec)
}

// ObserveDBQuery фиксирует выполненный запрос к БД.
func (m *Metrics) ObserveDBQuery(operation string, durationSec float64, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.DBQueriesTotal.WithLabelValues(operation, status).Inc()
	m.DBQueryDuration.WithLabelValues(operation).Observe(durationSec)
}

// SetDBPoolStats обновляет метрики пула соединений.
func (m *Metrics) SetDBPoolStats(open, idle, inUse int, waitCount int64, waitDurationSec float64) {
	m.DBConnectionsOpen.Set(float64(open))
	m.DBConnectionsIdle.Set(float64(idle))
	m.DBConnectionsInUse.Set(float64(inUse))
	m.DBWaitCount.Set(float64(waitCount))
	m.DBWaitDuration.Set(waitDurationSec)
}

func namespace(serviceName string) string {
	ns := strings.ToLower(serviceName)
	ns = strings.ReplaceAll(ns, "-", "_")
	ns = strings.ReplaceAll(ns, ".", "_")
	return ns
}
