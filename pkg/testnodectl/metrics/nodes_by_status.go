package metrics

import (
	"sync"

	"github.com/SAP/stewardci-console/pkg/metrics"
	"github.com/SAP/stewardci-console/pkg/runstatus"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// NodesByStatus reflects the current number of test nodes of all
	// known applications per status.
	NodesByStatus StatusSummaryMetric = &nodesByStatus{}

	// Applications reflects the current number of applications with test
	// nodes.
	Applications SettableGaugeMetric = &applications{}
)

func init() {
	NodesByStatus.(*nodesByStatus).init()
	Applications.(*applications).init()
}

type nodesByStatus struct {
	initOnlyOnce sync.Once
	metric       *prometheus.GaugeVec
}

func (m *nodesByStatus) init() {
	m.initOnlyOnce.Do(func() {
		m.metric = prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Subsystem: subsystem,
				Name:      "nodes",
				Help:      "The current number of test nodes partitioned by status.",
			},
			[]string{
				"status",
			},
		)
		metrics.Registerer().MustRegister(m.metric)
	})
}

// Set sets the gauge of every status. Statuses missing in summary are set
// to zero.
func (m *nodesByStatus) Set(summary map[runstatus.RunStatus]int) {
	for _, status := range runstatus.Statuses() {
		m.metric.WithLabelValues(statusLabelValue(status)).Set(float64(summary[status]))
	}
}

type applications struct {
	initOnlyOnce sync.Once
	metric       prometheus.Gauge
}

func (m *applications) init() {
	m.initOnlyOnce.Do(func() {
		m.metric = prometheus.NewGauge(prometheus.GaugeOpts{
			Subsystem: subsystem,
			Name:      "applications",
			Help:      "The current number of applications with test nodes.",
		})
		metrics.Registerer().MustRegister(m.metric)
	})
}

func (m *applications) Set(value float64) {
	m.metric.Set(value)
}
