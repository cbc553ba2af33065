package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Subsystem is the metric name prefix used by all metrics of this module.
const Subsystem = "steward_console"

var (
	registry = prometheus.NewPedanticRegistry()
)

// Registerer returns the registerer for metrics that should be exported
// by the metrics server
func Registerer() prometheus.Registerer {
	return registry
}

// Gatherer returns the gatherer the metrics handler reads from.
func Gatherer() prometheus.Gatherer {
	return registry
}
