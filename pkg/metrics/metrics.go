package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "shuttle"

// Metrics набор метрик сервиса (HTTP, БД, бизнес-метрики)
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration     *prometheus.HistogramVec
	DBOpenConnections   prometheus.Gauge
	DBInUseConnections  prometheus.Gauge
	DBIdleConnections   prometheus.Gauge
	DBWaitCount         prometheus.Gauge
	DBWaitDurationTotal prometheus.Gauge

	DeparturesGenerated prometheus.Counter
	BookingsCreated     prometheus.Counter
	BookingsRejected    *prometheus.CounterVec
	CacheLookups        *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer создает метрики в указанном реестре (используется в тестах)
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency by operation.",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_open_connections",
			Help:        "Number of established connections.",
			ConstLabels: constLabels,
		}),
		DBInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use.",
			ConstLabels: constLabels,
		}),
		DBIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_idle_connections",
			Help:        "Number of idle connections.",
			ConstLabels: constLabels,
		}),
		DBWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for.",
			ConstLabels: constLabels,
		}),
		DBWaitDurationTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_wait_duration_seconds_total",
			Help:        "Total time blocked waiting for a new connection.",
			ConstLabels: constLabels,
		}),
		DeparturesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "departures_generated_total",
			Help:        "Departures materialized by the window generator.",
			ConstLabels: constLabels,
		}),
		BookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "bookings_created_total",
			Help:        "Successfully created bookings.",
			ConstLabels: constLabels,
		}),
		BookingsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "bookings_rejected_total",
			Help:        "Rejected booking attempts by reason.",
			ConstLabels: constLabels,
		}, []string{"reason"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "availability_cache_lookups_total",
			Help:        "Availability cache lookups by result.",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.DBWaitDurationTotal,
		m.DeparturesGenerated,
		m.BookingsCreated,
		m.BookingsRejected,
		m.CacheLookups,
	)

	return m
}

// ObserveDBQuery записывает длительность запроса к БД. Безопасен для nil
func (m *Metrics) ObserveDBQuery(operation string, started time.Time) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// AddDeparturesGenerated безопасен для nil
func (m *Metrics) AddDeparturesGenerated(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.DeparturesGenerated.Add(float64(n))
}

// IncBookingsCreated безопасен для nil
func (m *Metrics) IncBookingsCreated() {
	if m == nil {
		return
	}
	m.BookingsCreated.Inc()
}

// IncBookingsRejected безопасен для nil
func (m *Metrics) IncBookingsRejected(reason string) {
	if m == nil {
		return
	}
	m.BookingsRejected.WithLabelValues(reason).Inc()
}

// IncCacheLookup безопасен для nil
func (m *Metrics) IncCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}

// ObserveHTTPRequest записывает счетчик и длительность HTTP запроса. Безопасен для nil
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, started time.Time) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(started).Seconds())
}
