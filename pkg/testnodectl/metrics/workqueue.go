package metrics

import (
	metricswq "github.com/SAP/stewardci-console/pkg/metrics/workqueue"
)

func init() {
	metricswq.RegisterQueue(WorkqueueName, subsystemForWorkqueue)
}
