package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections prometheus.Gauge
	DBInUseConns      prometheus.Gauge

	SlotsGenerated       *prometheus.CounterVec
	RecurringOccurrences *prometheus.CounterVec
	BookingsCreated      *prometheus.CounterVec
	PricingCacheRequests *prometheus.CounterVec
}

// New регистрирует метрики в глобальном регистре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в указанном регистре (используется в тестах)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency.",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of open database connections.",
			ConstLabels: labels,
		}),
		DBInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections in use.",
			ConstLabels: labels,
		}),
		SlotsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "scheduling_slots_generated_total",
			Help:        "Bookable slots returned to callers.",
			ConstLabels: labels,
		}, []string{"barber_id"}),
		RecurringOccurrences: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "scheduling_recurring_occurrences_total",
			Help:        "Recurring occurrences evaluated, by outcome.",
			ConstLabels: labels,
		}, []string{"outcome"}),
		BookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Bookings persisted, by source.",
			ConstLabels: labels,
		}, []string{"source"}),
		PricingCacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "pricing_cache_requests_total",
			Help:        "Pricing cache lookups, by result.",
			ConstLabels: labels,
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConns,
		m.SlotsGenerated,
		m.RecurringOccurrences,
		m.BookingsCreated,
		m.PricingCacheRequests,
	)

	return m
}

// ObserveSlotsGenerated учитывает количество слотов, отданных клиенту
func (m *Metrics) ObserveSlotsGenerated(barberID int64, n int) {
	if m == nil {
		return
	}
	m.SlotsGenerated.WithLabelValues(strconv.FormatInt(barberID, 10)).Add(float64(n))
}

// ObserveRecurringOccurrence учитывает одно проверенное вхождение серии (available/skipped)
func (m *Metrics) ObserveRecurringOccurrence(outcome string) {
	if m == nil {
		return
	}
	m.RecurringOccurrences.WithLabelValues(outcome).Inc()
}

// ObserveBookingCreated учитывает созданное бронирование (single/recurring)
func (m *Metrics) ObserveBookingCreated(source string) {
	if m == nil {
		return
	}
	m.BookingsCreated.WithLabelValues(source).Inc()
}
