package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллектор Prometheus-метрик сервиса
type Metrics struct {
	serviceName string

	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueriesTotal    *prometheus.CounterVec
	DBQueryDuration   *prometheus.HistogramVec
	DBConnections     *prometheus.GaugeVec
	DBWaitCountTotal  *prometheus.GaugeVec
	DBWaitDurationSec *prometheus.GaugeVec

	// Бизнес-метрики движка бронирований
	BookingsCreatedTotal    *prometheus.CounterVec
	BookingTransitionsTotal *prometheus.CounterVec
	CapacityRejectionsTotal *prometheus.CounterVec
	PaymentsTotal           *prometheus.CounterVec
}

// New создает метрики и регистрирует их в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном реестре (используется в тестах)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"service", "method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),

		DBQueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "db_queries_total",
				Help: "Total number of database queries.",
			},
			[]string{"service", "operation", "status"},
		),
		DBQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query latency.",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"service", "operation"},
		),
		DBConnections: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_connections",
				Help: "Database connection pool state.",
			},
			[]string{"service", "state"},
		),
		DBWaitCountTotal: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_wait_count_total",
				Help: "Total number of connections waited for.",
			},
			[]string{"service"},
		),
		DBWaitDurationSec: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_wait_duration_seconds_total",
				Help: "Total time blocked waiting for a new connection.",
			},
			[]string{"service"},
		),

		BookingsCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookings_created_total",
				Help: "Count of bookings created.",
			},
			[]string{"service"},
		),
		BookingTransitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "booking_status_transitions_total",
				Help: "Count of applied booking status transitions.",
			},
			[]string{"service", "from", "to"},
		),
		CapacityRejectionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "booking_capacity_rejections_total",
				Help: "Count of requests rejected because caretaker capacity was exhausted.",
			},
			[]string{"service", "stage"},
		),
		PaymentsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_total",
				Help: "Count of payment state changes by resulting status.",
			},
			[]string{"service", "status"},
		),
	}
}

// ServiceName возвращает имя сервиса, используемое в лейблах
func (m *Metrics) ServiceName() string {
	return m.serviceName
}

// IncBookingCreated увеличивает счетчик созданных бронирований
func (m *Metrics) IncBookingCreated() {
	m.BookingsCreatedTotal.WithLabelValues(m.serviceName).Inc()
}

// IncBookingTransition увеличивает счетчик переходов статуса
func (m *Metrics) IncBookingTransition(from, to string) {
	m.BookingTransitionsTotal.WithLabelValues(m.serviceName, from, to).Inc()
}

// IncCapacityRejection увеличивает счетчик отказов по вместимости (stage: create|accept)
func (m *Metrics) IncCapacityRejection(stage string) {
	m.CapacityRejectionsTotal.WithLabelValues(m.serviceName, stage).Inc()
}

// IncPayment увеличивает счетчик платежей по итоговому статусу
func (m *Metrics) IncPayment(status string) {
	m.PaymentsTotal.WithLabelValues(m.serviceName, status).Inc()
}

// Noop реализация бизнес-метрик, когда метрики выключены
type Noop struct{}

func (Noop) IncBookingCreated()               {}
func (Noop) IncBookingTransition(_, _ string) {}
func (Noop) IncCapacityRejection(_ string)    {}
func (Noop) IncPayment(_ string)              {}
