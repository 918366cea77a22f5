package transport

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics instruments the interceptor pipeline.
type Metrics struct {
	requests       *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	unauthorized   prometheus.Counter
	corruptRecords prometheus.Counter
}

// NewMetrics registers pipeline metrics on the given registerer.
// A nil registerer falls back to prometheus.DefaultRegisterer.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Outbound API requests by method and response status.",
		}, []string{"method", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "Outbound API request duration.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		unauthorized: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "unauthorized_total",
			Help:      "Responses that came back 401 and cleared the session.",
		}),
		corruptRecords: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "corrupt_records_total",
			Help:      "Durable session records that failed to parse.",
		}),
	}
}

func (m *Metrics) observeRequest(method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}

func (m *Metrics) observeUnauthorized() {
	if m == nil {
		return
	}
	m.unauthorized.Inc()
}

func (m *Metrics) observeCorruptRecord() {
	if m == nil {
		return
	}
	m.corruptRecords.Inc()
}
