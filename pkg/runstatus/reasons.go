package runstatus

// Reasons of the `Succeeded` condition that override the status derived
// from the condition status.
const (
	ReasonPipelineRunCancelled       = "PipelineRunCancelled"
	ReasonTaskRunCancelled           = "TaskRunCancelled"
	ReasonCancelled                  = "Cancelled"
	ReasonPipelineRunStopping        = "PipelineRunStopping"
	ReasonPipelineRunPending         = "PipelineRunPending"
	ReasonTaskRunStopping            = "TaskRunStopping"
	ReasonCreateContainerConfigError = "CreateContainerConfigError"
	ReasonExceededNodeResources      = "ExceededNodeResources"
	ReasonExceededResourceQuota      = "ExceededResourceQuota"
	ReasonConditionCheckFailed       = "ConditionCheckFailed"
)

// reasonOverrides maps condition reasons to the status they enforce.
// Reasons not listed here keep the status derived from the condition status.
var reasonOverrides = map[string]RunStatus{
	ReasonPipelineRunCancelled: StatusCancelled,
	ReasonTaskRunCancelled:     StatusCancelled,
	ReasonCancelled:            StatusCancelled,

	ReasonPipelineRunStopping: StatusFailed,
	ReasonTaskRunStopping:     StatusFailed,

	ReasonCreateContainerConfigError: StatusPending,
	ReasonExceededNodeResources:      StatusPending,
	ReasonExceededResourceQuota:      StatusPending,
	ReasonPipelineRunPending:         StatusPending,

	ReasonConditionCheckFailed: StatusSkipped,
}
