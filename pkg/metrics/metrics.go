package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
// Все методы безопасно вызывать на nil (метрики выключены)
type Metrics struct {
	service string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbConnections   *prometheus.GaugeVec

	bookingsAdmitted *prometheus.CounterVec
	bookingsRejected *prometheus.CounterVec
	pencilEvictions  *prometheus.CounterVec
}

// New регистрирует метрики в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в указанном реестре (используется в тестах)
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		service: serviceName,

		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		dbQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"service", "operation", "status"}),

		dbConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database connection pool state",
		}, []string{"service", "state"}),

		bookingsAdmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_admitted_total",
			Help: "Bookings admitted by status",
		}, []string{"service", "status"}),

		bookingsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_rejected_total",
			Help: "Bookings rejected for insufficient capacity by status",
		}, []string{"service", "status"}),

		pencilEvictions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pencil_bookings_evicted_total",
			Help: "Pencil bookings evicted by confirmed bookings",
		}, []string{"service"}),
	}
}

// ObserveHTTPRequest фиксирует обработанный HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(service, method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(service, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(service, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(service, operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueryDuration.WithLabelValues(service, operation, status).Observe(duration.Seconds())
}

// SetDBStats публикует состояние пула соединений
func (m *Metrics) SetDBStats(service string, stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues(service, "open").Set(float64(stats.OpenConnections))
	m.dbConnections.WithLabelValues(service, "in_use").Set(float64(stats.InUse))
	m.dbConnections.WithLabelValues(service, "idle").Set(float64(stats.Idle))
	m.dbConnections.WithLabelValues(service, "wait_count").Set(float64(stats.WaitCount))
}

// BookingAdmitted фиксирует принятое бронирование и число вытесненных pencil-бронирований
func (m *Metrics) BookingAdmitted(status string, evicted int) {
	if m == nil {
		return
	}
	m.bookingsAdmitted.WithLabelValues(m.service, status).Inc()
	if evicted > 0 {
		m.pencilEvictions.WithLabelValues(m.service).Add(float64(evicted))
	}
}

// BookingRejected фиксирует бронирование, отклоненное из-за нехватки номеров
func (m *Metrics) BookingRejected(status string) {
	if m == nil {
		return
	}
	m.bookingsRejected.WithLabelValues(m.service, status).Inc()
}
