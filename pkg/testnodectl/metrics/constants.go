package metrics

import "github.com/SAP/stewardci-console/pkg/metrics"

const (
	subsystem             = metrics.Subsystem + "_testnodes"
	subsystemForWorkqueue = subsystem + "_workqueue"

	// WorkqueueName is the name of the test node controller workqueue.
	// It is required by the metrics adapter for workqueues.
	WorkqueueName = "testnodectl"
)
