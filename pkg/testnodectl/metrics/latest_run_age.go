package metrics

import (
	"sync"
	"time"

	"github.com/SAP/stewardci-console/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// LatestRunAge observes the age of the latest PipelineRun of a test
	// scenario each time a test node is projected.
	LatestRunAge AgeMetric = &latestRunAge{}
)

func init() {
	LatestRunAge.(*latestRunAge).init()
}

type latestRunAge struct {
	initOnlyOnce sync.Once
	metric       prometheus.Histogram
}

func (m *latestRunAge) init() {
	m.initOnlyOnce.Do(func() {
		m.metric = prometheus.NewHistogram(prometheus.HistogramOpts{
			Subsystem: subsystem,
			Name:      "latest_run_age_seconds",
			Help: "A histogram of the age of the latest PipelineRun per test scenario" +
				" at the time its test node is projected.",
			// 1m .. ~34d
			Buckets: prometheus.ExponentialBuckets(60, 2, 16),
		})
		metrics.Registerer().MustRegister(m.metric)
	})
}

// Observe observes the age of an object created at created. Objects created
// after now are not observed.
func (m *latestRunAge) Observe(created, now time.Time) {
	if created.IsZero() {
		return
	}
	age := now.Sub(created)
	if age < 0 {
		return
	}
	m.metric.Observe(age.Seconds())
}
