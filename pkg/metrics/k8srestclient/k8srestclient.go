/*
Package k8srestclient exports the metrics of the Kubernetes REST client
(k8s.io/client-go) used to talk to the API server. Import it for side effects.
*/
package k8srestclient

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/SAP/stewardci-console/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	k8sclientmetrics "k8s.io/client-go/tools/metrics"
)

const subsystem = metrics.Subsystem + "_k8s_restclient"

var (
	_ k8sclientmetrics.LatencyMetric = (*latency)(nil)
	_ k8sclientmetrics.ResultMetric  = (*requestResults)(nil)

	requestLatencyInstance = &latency{
		name: "request_latency_millis",
		help: "Latency of API server requests partitioned by URL scheme, hostname, port, URL path and HTTP method.",
	}
	rateLimitLatencyInstance = &latency{
		name: "ratelimit_latency_millis",
		help: "Client-side rate limiter latency partitioned by URL scheme, hostname, port, URL path and HTTP method.",
	}
	requestResultsInstance = &requestResults{}
)

func init() {
	requestLatencyInstance.init()
	rateLimitLatencyInstance.init()
	requestResultsInstance.init()

	k8sclientmetrics.Register(
		k8sclientmetrics.RegisterOpts{
			RateLimiterLatency: rateLimitLatencyInstance,
			RequestLatency:     requestLatencyInstance,
			RequestResult:      requestResultsInstance,
		},
	)
}

type latency struct {
	name         string
	help         string
	metric       *prometheus.HistogramVec
	initOnlyOnce sync.Once
}

func (m *latency) init() {
	m.initOnlyOnce.Do(func() {
		buckets := make([]float64, 0, 14)
		for i := 1.0; i <= 1e+6; i *= 10.0 {
			buckets = append(buckets, i, i*5.0)
		}
		m.metric = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Subsystem: subsystem,
				Name:      m.name,
				Help:      m.help,
				Buckets:   buckets,
			},
			[]string{"scheme", "hostname", "port", "path", "method"},
		)
		metrics.Registerer().MustRegister(m.metric)
	})
}

func (m *latency) Observe(_ context.Context, method string, u url.URL, latency time.Duration) {
	m.metric.With(prometheus.Labels{
		"scheme":   u.Scheme,
		"hostname": u.Hostname(),
		"port":     urlPort(u),
		"path":     u.Path,
		"method":   method,
	}).Observe(float64(latency.Milliseconds()))
}

type requestResults struct {
	metric       *prometheus.CounterVec
	initOnlyOnce sync.Once
}

func (m *requestResults) init() {
	m.initOnlyOnce.Do(func() {
		m.metric = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Subsystem: subsystem,
				Name:      "request_results",
				Help:      "Number of finished API server requests partitioned by host, HTTP method and status code.",
			},
			[]string{"host", "method", "status"},
		)
		metrics.Registerer().MustRegister(m.metric)
	})
}

func (m *requestResults) Increment(_ context.Context, code string, method string, host string) {
	m.metric.With(prometheus.Labels{
		"host":   host,
		"method": method,
		"status": code,
	}).Inc()
}

// urlPort returns the port of u, defaulting to the scheme's well-known port
// so that URLs with and without explicit default port share a partition.
func urlPort(u url.URL) string {
	port := u.Port()
	if port == "" {
		switch u.Scheme {
		case "https":
			port = "443"
		case "http":
			port = "80"
		}
	}
	return port
}
