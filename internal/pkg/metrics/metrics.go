package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	namespace = "novora"

	statusLabel = "status"
	eventLabel  = "event"
)

// NewRegistry returns a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Metrics for webhook delivery. A nil *Metrics records nothing.
type Metrics struct {
	TriggeredTotal       *prometheus.CounterVec
	DeliveryAttemptTotal *prometheus.CounterVec
	DeliveryDeferTotal   *prometheus.CounterVec
	DeliveryLatency      *prometheus.HistogramVec
	RequestDuration      *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		TriggeredTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "webhook_triggered_total",
				Help:      "Total number of webhook deliveries created",
			},
			[]string{eventLabel},
		),
		DeliveryAttemptTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "webhook_delivery_attempts_total",
				Help:      "Total number of processed deliveries by resulting status",
			},
			[]string{statusLabel},
		),
		DeliveryDeferTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "webhook_delivery_deferred_total",
				Help:      "Total number of deliveries pushed back without an attempt",
			},
			[]string{"reason"},
		),
		DeliveryLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "webhook_delivery_duration_seconds",
				Help:      "Time spent sending a webhook request",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{statusLabel},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_server_request_duration_seconds",
				Help:      "Duration of API requests",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "code"},
		),
	}

	if reg != nil {
		reg.MustRegister(
			m.TriggeredTotal,
			m.DeliveryAttemptTotal,
			m.DeliveryDeferTotal,
			m.DeliveryLatency,
			m.RequestDuration,
		)
	}

	return m
}

func (m *Metrics) RecordTrigger(event string) {
	if m == nil {
		return
	}
	m.TriggeredTotal.With(prometheus.Labels{eventLabel: event}).Inc()
}

// RecordAttempt counts a processed delivery; took is the request time and is
// skipped when zero.
func (m *Metrics) RecordAttempt(status string, took time.Duration) {
	if m == nil {
		return
	}
	m.DeliveryAttemptTotal.With(prometheus.Labels{statusLabel: status}).Inc()
	if took > 0 {
		m.DeliveryLatency.With(prometheus.Labels{statusLabel: status}).Observe(took.Seconds())
	}
}

func (m *Metrics) RecordDefer(reason string) {
	if m == nil {
		return
	}
	m.DeliveryDeferTotal.With(prometheus.Labels{"reason": reason}).Inc()
}

// RecordRequest observes an API request; path is the route pattern, not the raw URL.
func (m *Metrics) RecordRequest(method, path string, code int, took time.Duration) {
	if m == nil {
		return
	}
	m.RequestDuration.With(prometheus.Labels{
		"method": method,
		"path":   path,
		"code":   strconv.Itoa(code),
	}).Observe(took.Seconds())
}
