package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus метрик сервиса
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec

	dbPoolOpenConns  *prometheus.GaugeVec
	dbPoolIdleConns  *prometheus.GaugeVec
	dbPoolInUseConns *prometheus.GaugeVec
}

// New создает и регистрирует метрики в дефолтном registry
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),

		dbQueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		}, []string{"service", "operation"}),

		dbPoolOpenConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_open_connections",
			Help: "Number of open connections in the pool",
		}, []string{"service"}),

		dbPoolIdleConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_idle_connections",
			Help: "Number of idle connections in the pool",
		}, []string{"service"}),

		dbPoolInUseConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),
	}
}

// ObserveHTTPRequest фиксирует метрики одного HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует метрики одного запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	m.dbQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(m.serviceName, operation).Inc()
	}
}

// SetDBPoolStats обновляет gauge метрики connection pool
func (m *Metrics) SetDBPoolStats(open, idle, inUse int) {
	m.dbPoolOpenConns.WithLabelValues(m.serviceName).Set(float64(open))
	m.dbPoolIdleConns.WithLabelValues(m.serviceName).Set(float64(idle))
	m.dbPoolInUseConns.WithLabelValues(m.serviceName).Set(float64(inUse))
}
