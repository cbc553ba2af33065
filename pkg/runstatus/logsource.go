package runstatus

import (
	corev1 "k8s.io/api/core/v1"
)

// LogSourceStatus is the state of a container as shown by the log viewer.
type LogSourceStatus string

// log source statuses
const (
	LogSourceRestarting LogSourceStatus = "restarting"
	LogSourceRunning    LogSourceStatus = "running"
	LogSourceTerminated LogSourceStatus = "terminated"
	LogSourceWaiting    LogSourceStatus = "waiting"
)

// LogSourceStatusOf returns the log source status of a step container.
// A missing container is waiting. A waiting container that has been
// running before is restarting.
func LogSourceStatusOf(container *corev1.ContainerStatus) LogSourceStatus {
	if container == nil {
		return LogSourceWaiting
	}
	state := container.State
	if state.Waiting != nil && !isEmptyState(container.LastTerminationState) {
		return LogSourceRestarting
	}
	if state.Waiting != nil {
		return LogSourceWaiting
	}
	if state.Terminated != nil {
		return LogSourceTerminated
	}
	return LogSourceRunning
}

func isEmptyState(state corev1.ContainerState) bool {
	return state.Waiting == nil && state.Running == nil && state.Terminated == nil
}
