package runstatus

// RunStatus is the human readable status of a run.
type RunStatus string

// run statuses
const (
	// StatusUndefined means that no status has been reported (yet).
	StatusUndefined RunStatus = ""

	StatusSucceeded          RunStatus = "Succeeded"
	StatusFailed             RunStatus = "Failed"
	StatusRunning            RunStatus = "Running"
	StatusFailedToStart      RunStatus = "FailedToStart"
	StatusPipelineNotStarted RunStatus = "PipelineNotStarted"
	StatusSkipped            RunStatus = "Skipped"
	StatusCancelled          RunStatus = "Cancelled"
	StatusPending            RunStatus = "Pending"
	StatusIdle               RunStatus = "Idle"

	// StatusInProgress is a legacy spelling of StatusRunning. It is never
	// returned by Classify and not part of Statuses.
	StatusInProgress RunStatus = "In Progress"
)

var allStatuses = [...]RunStatus{
	StatusSucceeded,
	StatusFailed,
	StatusRunning,
	StatusFailedToStart,
	StatusPipelineNotStarted,
	StatusSkipped,
	StatusCancelled,
	StatusPending,
	StatusIdle,
}

// Statuses returns all defined run statuses in a fixed order.
// StatusUndefined is not included.
func Statuses() []RunStatus {
	result := make([]RunStatus, len(allStatuses))
	copy(result, allStatuses[:])
	return result
}

// IsDefined returns true if s is one of the defined run statuses.
func (s RunStatus) IsDefined() bool {
	for _, v := range allStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// FilterValue returns the value used to filter run lists by status.
// Runs without status are represented by "-".
func FilterValue(s RunStatus) string {
	if s == StatusUndefined {
		return "-"
	}
	return string(s)
}
