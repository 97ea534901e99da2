// Package metrics Prometheus метрики сервиса
//
// Все методы безопасны для nil получателя: при выключенных метриках
// вместо коллектора передаётся nil.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Результаты оформления корзины
const (
	CheckoutCommitted = "committed"
	CheckoutLeadTime  = "lead_time_violation"
	CheckoutNoItems   = "no_items"
	CheckoutInvalid   = "invalid_time"
	CheckoutFailed    = "failed"
)

// Metrics набор метрик сервиса
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	checkouts    *prometheus.CounterVec
	storageFault *prometheus.CounterVec
	cartGroups   prometheus.Gauge
	cartItems    prometheus.Gauge
	reloads      *prometheus.CounterVec
}

// New создает метрики и регистрирует их в стандартном регистре
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в reg
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "cart_checkouts_total",
			Help:        "Checkout attempts by result",
			ConstLabels: labels,
		}, []string{"result"}),
		storageFault: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "cart_storage_faults_total",
			Help:        "Recovered cart storage faults by kind",
			ConstLabels: labels,
		}, []string{"kind"}),
		cartGroups: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "cart_groups",
			Help:        "Number of merged groups in the last computed cart view",
			ConstLabels: labels,
		}),
		cartItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "cart_items",
			Help:        "Number of line items in the last computed cart view",
			ConstLabels: labels,
		}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "cart_reloads_total",
			Help:        "Cart reloads triggered by change detection",
			ConstLabels: labels,
		}, []string{"source"}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.checkouts,
		m.storageFault,
		m.cartGroups,
		m.cartItems,
		m.reloads,
	)

	return m
}

// ObserveHTTPRequest учитывает выполненный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// CheckoutOutcome учитывает результат оформления
func (m *Metrics) CheckoutOutcome(result string) {
	if m == nil {
		return
	}
	m.checkouts.WithLabelValues(result).Inc()
}

// StorageFault учитывает восстановленную ошибку хранилища
func (m *Metrics) StorageFault(kind string) {
	if m == nil {
		return
	}
	m.storageFault.WithLabelValues(kind).Inc()
}

// CartView запоминает размер последнего вычисленного представления корзины
func (m *Metrics) CartView(items, groups int) {
	if m == nil {
		return
	}
	m.cartItems.Set(float64(items))
	m.cartGroups.Set(float64(groups))
}

// CartReload учитывает перечитывание корзины
func (m *Metrics) CartReload(source string) {
	if m == nil {
		return
	}
	m.reloads.WithLabelValues(source).Inc()
}
