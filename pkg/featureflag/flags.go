package featureflag

var (
	// ExposeTaskRunStatus controls whether the PipelineRun status endpoint
	// also reports the status of each TaskRun of the PipelineRun.
	ExposeTaskRunStatus = New("ExposeTaskRunStatus", Bool(false))

	// ClientBasedFetch makes HTTP handlers query the API server directly
	// instead of reading from the informer caches of the controller.
	ClientBasedFetch = New("ClientBasedFetch", Bool(false))
)
