package buffer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcomes recorded for each call to Parse.
const (
	resultSuccess = "success"
	resultFailure = "failure"
	resultRetry   = "retry"
	resultEnd     = "end"
	resultError   = "error"
)

// Metrics holds Prometheus collectors describing Source activity. A nil
// *Metrics records nothing.
type Metrics struct {
	attempts  *prometheus.CounterVec
	bytesRead prometheus.Counter
	grows     prometheus.Counter
	capacity  prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		attempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nibble_buffer_parse_attempts_total",
				Help: "Total number of parse attempts by outcome",
			},
			[]string{"result"},
		),

		bytesRead: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "nibble_buffer_bytes_read_total",
				Help: "Total number of bytes read from the underlying reader",
			},
		),

		grows: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "nibble_buffer_grows_total",
				Help: "Total number of buffer reallocations",
			},
		),

		capacity: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "nibble_buffer_capacity_bytes",
				Help: "Capacity of the most recently allocated buffer",
			},
		),
	}
}

func (m *Metrics) attempt(result string) {
	if m == nil {
		return
	}
	m.attempts.WithLabelValues(result).Inc()
}

func (m *Metrics) read(n int) {
	if m == nil {
		return
	}
	m.bytesRead.Add(float64(n))
}

func (m *Metrics) grow(capacity int) {
	if m == nil {
		return
	}
	m.grows.Inc()
	m.capacity.Set(float64(capacity))
}
