// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллекторы сервиса
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	CacheRequestsTotal   *prometheus.CounterVec
	UnresolvedFacilities *prometheus.CounterVec
	FacilitiesServed     *prometheus.HistogramVec
	WarmupRunsTotal      *prometheus.CounterVec
}

// New регистрирует коллекторы в default registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry регистрирует коллекторы в переданном registry
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),

		CacheRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_cache_requests_total",
			Help:        "Past-date availability cache lookups by result",
			ConstLabels: constLabels,
		}, []string{"result"}),

		UnresolvedFacilities: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_unresolved_facilities_total",
			Help:        "Facilities dropped because no coordinates matched",
			ConstLabels: constLabels,
		}, []string{"source"}),

		FacilitiesServed: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "availability_facilities_served",
			Help:        "Number of facilities in an availability response",
			Buckets:     []float64{0, 5, 10, 20, 40, 80},
			ConstLabels: constLabels,
		}, []string{"source"}),

		WarmupRunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_cache_warmup_runs_total",
			Help:        "Scheduled cache warmup runs by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}
}

// Результаты для лейблов
const (
	ResultHit     = "hit"
	ResultMiss    = "miss"
	ResultError   = "error"
	ResultSuccess = "success"
)

// ObserveCache учитывает обращение к кэшу прошлых дат. Безопасен для nil.
func (m *Metrics) ObserveCache(result string) {
	if m == nil {
		return
	}
	m.CacheRequestsTotal.WithLabelValues(result).Inc()
}

// ObserveAggregation учитывает размер ответа и отброшенные площадки. Безопасен для nil.
func (m *Metrics) ObserveAggregation(source string, served, unresolved int) {
	if m == nil {
		return
	}
	m.FacilitiesServed.WithLabelValues(source).Observe(float64(served))
	if unresolved > 0 {
		m.UnresolvedFacilities.WithLabelValues(source).Add(float64(unresolved))
	}
}

// ObserveWarmup учитывает запуск прогрева кэша. Безопасен для nil.
func (m *Metrics) ObserveWarmup(result string) {
	if m == nil {
		return
	}
	m.WarmupRunsTotal.WithLabelValues(result).Inc()
}
