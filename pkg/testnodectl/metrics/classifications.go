package metrics

import (
	"sync"

	"github.com/SAP/stewardci-console/pkg/metrics"
	"github.com/SAP/stewardci-console/pkg/runstatus"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Classifications counts the statuses derived for latest PipelineRuns
	// of test scenarios.
	Classifications StatusCounterMetric = &classifications{}
)

func init() {
	Classifications.(*classifications).init()
}

type classifications struct {
	initOnlyOnce sync.Once
	metric       *prometheus.CounterVec
}

func (m *classifications) init() {
	m.initOnlyOnce.Do(func() {
		m.metric = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Subsystem: subsystem,
				Name:      "classifications_total",
				Help:      "The number of test node status classifications partitioned by resulting status.",
			},
			[]string{
				"status",
			},
		)
		metrics.Registerer().MustRegister(m.metric)
	})
}

func (m *classifications) Observe(status runstatus.RunStatus) {
	m.metric.WithLabelValues(statusLabelValue(status)).Inc()
}
