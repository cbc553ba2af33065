package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Retries observes retry loops around Kubernetes API requests.
	Retries RetriesMetric = &retriesMetric{}
)

func init() {
	Retries.(*retriesMetric).init()
}

// RetriesMetric observes retry loops around Kubernetes API requests.
type RetriesMetric interface {
	// Observe records a finished retry loop at codeLocation.
	// attempts counts all calls including the first one. err is the
	// final result of the loop.
	Observe(codeLocation string, attempts uint64, latency time.Duration, err error)
}

type retriesMetric struct {
	initOnlyOnce sync.Once
	retries      *prometheus.CounterVec
	failures     *prometheus.CounterVec
	latency      *prometheus.HistogramVec
}

// latencyBuckets are 10ms to 500s in steps of 1 and 5 per decade.
func latencyBuckets() []float64 {
	list := make([]float64, 0, 10)
	for i := 1e-2; i <= 1e+2; i *= 10.0 {
		list = append(list, i, i*5.0)
	}
	return list
}

func (m *retriesMetric) init() {
	m.initOnlyOnce.Do(func() {
		labels := []string{"location"}

		m.retries = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Subsystem: Subsystem,
				Name:      "api_retries_total",
				Help:      "The number of retried Kubernetes API requests. The first attempt is not counted.",
			},
			labels,
		)
		m.failures = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Subsystem: Subsystem,
				Name:      "api_retry_failures_total",
				Help:      "The number of retry loops that ended with an error.",
			},
			labels,
		)
		m.latency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Subsystem: Subsystem,
				Name:      "api_retry_latency_seconds",
				Help:      "The duration (in seconds) of retry loops that needed at least one retry.",
				Buckets:   latencyBuckets(),
			},
			labels,
		)
		Registerer().MustRegister(m.retries, m.failures, m.latency)
	})
}

func (m *retriesMetric) Observe(codeLocation string, attempts uint64, latency time.Duration, err error) {
	if err != nil {
		m.failures.WithLabelValues(codeLocation).Inc()
	}
	if attempts > 1 {
		m.retries.WithLabelValues(codeLocation).Add(float64(attempts - 1))
		m.latency.WithLabelValues(codeLocation).Observe(latency.Seconds())
	}
}
