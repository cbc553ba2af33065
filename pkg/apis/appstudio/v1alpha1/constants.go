package v1alpha1

// ReleasedConditionType is the condition type tracking the overall state
// of a Release.
const ReleasedConditionType = "Released"

// condition reasons used by the release service
const (
	// ReasonFailed is set when a release step failed.
	ReasonFailed = "Failed"

	// ReasonProgressing is set while a release step is in progress.
	ReasonProgressing = "Progressing"

	// ReasonSucceeded is set when a release step succeeded.
	ReasonSucceeded = "Succeeded"
)
