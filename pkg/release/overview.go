package release

import (
	"time"

	"github.com/SAP/stewardci-console/pkg/apis/appstudio/v1alpha1"
	"github.com/SAP/stewardci-console/pkg/runstatus"
	"github.com/SAP/stewardci-console/pkg/utils"
	apimeta "k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// release processes
const (
	ProcessAutomatic = "Automatic"
	ProcessManual    = "Manual"
)

// OverviewData is the summary of a Release shown on its overview page.
type OverviewData struct {
	Name        string              `json:"name"`
	Namespace   string              `json:"namespace"`
	Created     metav1.Time         `json:"created"`
	Status      runstatus.RunStatus `json:"status"`
	PipelineRun string              `json:"pipelineRun,omitempty"`
	Duration    string              `json:"duration,omitempty"`
	Process     string              `json:"process"`
	Target      string              `json:"target,omitempty"`
	ReleasePlan string              `json:"releasePlan"`
	Snapshot    string              `json:"snapshot,omitempty"`
}

// Overview summarizes release. A running release's duration is computed up
// to now.
func Overview(release *v1alpha1.Release, now time.Time) OverviewData {
	if release == nil {
		return OverviewData{}
	}
	process := ProcessManual
	if release.Status.Automated {
		process = ProcessAutomatic
	}
	return OverviewData{
		Name:        release.GetName(),
		Namespace:   release.GetNamespace(),
		Created:     release.GetCreationTimestamp(),
		Status:      Status(release),
		PipelineRun: PipelineRun(release),
		Duration:    utils.HumanDuration(release.Status.StartTime, release.Status.CompletionTime, now),
		Process:     process,
		Target:      release.Status.Target,
		ReleasePlan: release.Spec.ReleasePlan,
		Snapshot:    release.Spec.Snapshot,
	}
}

// PipelineRun returns the `<namespace>/<name>` reference of the release
// PipelineRun. Releases created by older release services only report
// managed processing.
func PipelineRun(release *v1alpha1.Release) string {
	if p := release.Status.Processing; p != nil && p.PipelineRun != "" {
		return p.PipelineRun
	}
	if p := release.Status.ManagedProcessing; p != nil {
		return p.PipelineRun
	}
	return ""
}

// Status derives the run status of release from its Released condition.
func Status(release *v1alpha1.Release) runstatus.RunStatus {
	condition := apimeta.FindStatusCondition(release.Status.Conditions, v1alpha1.ReleasedConditionType)
	if condition == nil {
		return runstatus.StatusPending
	}
	switch condition.Status {
	case metav1.ConditionTrue:
		return runstatus.StatusSucceeded
	case metav1.ConditionFalse:
		if condition.Reason == v1alpha1.ReasonProgressing {
			return runstatus.StatusRunning
		}
		return runstatus.StatusFailed
	default:
		return runstatus.StatusRunning
	}
}
