package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of the service
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	CartOperationsTotal *prometheus.CounterVec
	CheckoutsTotal      *prometheus.CounterVec
	SlotsDerivedTotal   prometheus.Counter
}

// New registers collectors in the default registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry registers collectors in reg
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		CartOperationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "cart_operations_total",
			Help:        "Cart mutations by operation and result",
			ConstLabels: constLabels,
		}, []string{"operation", "result"}),

		CheckoutsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "checkout_sessions_total",
			Help:        "Checkout session attempts by result",
			ConstLabels: constLabels,
		}, []string{"result"}),

		SlotsDerivedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "slots_derived_total",
			Help:        "Number of slots produced for availability requests",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.CartOperationsTotal,
		m.CheckoutsTotal,
		m.SlotsDerivedTotal,
	)

	return m
}

// ObserveCartOperation counts a cart mutation. Safe on a nil receiver so that
// callers do not branch on whether metrics are enabled.
func (m *Metrics) ObserveCartOperation(operation string, err error) {
	if m == nil {
		return
	}
	m.CartOperationsTotal.WithLabelValues(operation, result(err)).Inc()
}

// ObserveCheckout counts a checkout session attempt
func (m *Metrics) ObserveCheckout(err error) {
	if m == nil {
		return
	}
	m.CheckoutsTotal.WithLabelValues(result(err)).Inc()
}

// ObserveSlots adds the number of derived slots
func (m *Metrics) ObserveSlots(n int) {
	if m == nil {
		return
	}
	m.SlotsDerivedTotal.Add(float64(n))
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
