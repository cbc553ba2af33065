package runstatus

import (
	tekton "github.com/tektoncd/pipeline/pkg/apis/pipeline/v1"
	corev1 "k8s.io/api/core/v1"
	knativeapis "knative.dev/pkg/apis"
)

// ConditionsGetter provides the status conditions of a resource.
// It is implemented by the status of all Knative-style resources, e.g.
// Tekton PipelineRuns and TaskRuns.
type ConditionsGetter interface {
	GetConditions() knativeapis.Conditions
}

// Classify returns the run status derived from the `Succeeded` condition
// provided by accessor.
// Returns StatusUndefined if accessor is nil, there are no conditions, there
// is no `Succeeded` condition or the condition has no status.
func Classify(accessor ConditionsGetter) RunStatus {
	if accessor == nil {
		return StatusUndefined
	}
	return ClassifyConditions(accessor.GetConditions())
}

// ClassifyConditions is like Classify but operates on a condition list.
func ClassifyConditions(conditions knativeapis.Conditions) RunStatus {
	if len(conditions) == 0 {
		return StatusUndefined
	}

	var succeeded *knativeapis.Condition
	for i := range conditions {
		if conditions[i].Type == knativeapis.ConditionSucceeded {
			succeeded = &conditions[i]
			break
		}
	}
	if succeeded == nil || succeeded.Status == "" {
		return StatusUndefined
	}

	var status RunStatus
	switch succeeded.Status {
	case corev1.ConditionTrue:
		status = StatusSucceeded
	case corev1.ConditionFalse:
		status = StatusFailed
	default:
		status = StatusRunning
	}

	if succeeded.Reason != "" && succeeded.Reason != string(status) {
		if override, ok := reasonOverrides[succeeded.Reason]; ok {
			return override
		}
	}
	return status
}

// OfPipelineRun returns the run status of the given PipelineRun.
// Returns StatusUndefined if pipelineRun is nil.
func OfPipelineRun(pipelineRun *tekton.PipelineRun) RunStatus {
	if pipelineRun == nil {
		return StatusUndefined
	}
	return Classify(&pipelineRun.Status)
}

// OfTaskRun returns the run status of the given TaskRun.
// Returns StatusUndefined if taskRun is nil.
func OfTaskRun(taskRun *tekton.TaskRun) RunStatus {
	if taskRun == nil {
		return StatusUndefined
	}
	return Classify(&taskRun.Status)
}
