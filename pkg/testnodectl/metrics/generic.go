package metrics

import (
	"time"

	"github.com/SAP/stewardci-console/pkg/runstatus"
)

// CounterMetric is a monotonic counter metric.
type CounterMetric interface {
	Inc()
}

// SettableGaugeMetric is a numeric metric that can be set to a value.
type SettableGaugeMetric interface {
	Set(float64)
}

// StatusCounterMetric counts occurrences of run statuses.
type StatusCounterMetric interface {
	Observe(status runstatus.RunStatus)
}

// StatusSummaryMetric reflects a number per run status.
type StatusSummaryMetric interface {
	Set(summary map[runstatus.RunStatus]int)
}

// AgeMetric observes the age of objects.
type AgeMetric interface {
	Observe(created, now time.Time)
}

// statusLabelValue returns the metric label value for status.
func statusLabelValue(status runstatus.RunStatus) string {
	if !status.IsDefined() {
		return "None"
	}
	return string(status)
}
