package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Release is a K8s custom resource representing the release of an
// application snapshot via a release plan.
// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object
type Release struct {
	metav1.TypeMeta `json:",inline"`
	// +optional
	metav1.ObjectMeta `json:"metadata,omitempty"`
	Spec              ReleaseSpec `json:"spec"`
	// +optional
	Status ReleaseStatus `json:"status,omitempty"`
}

// ReleaseList is a list of Release objects
// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object
type ReleaseList struct {
	metav1.TypeMeta `json:",inline"`
	// +optional
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Release `json:"items"`
}

// ReleaseSpec is the spec of a Release
type ReleaseSpec struct {
	Snapshot    string `json:"snapshot"`
	ReleasePlan string `json:"releasePlan"`
}

// ReleaseStatus is the status of a Release
type ReleaseStatus struct {
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
	// +optional
	Automated bool `json:"automated,omitempty"`
	// +optional
	Target string `json:"target,omitempty"`
	// +optional
	StartTime *metav1.Time `json:"startTime,omitempty"`
	// +optional
	CompletionTime *metav1.Time `json:"completionTime,omitempty"`
	// Processing describes the release pipeline run.
	// +optional
	Processing *PipelineInfo `json:"processing,omitempty"`
	// ManagedProcessing is the former name of Processing. Older releases
	// only set this one.
	// +optional
	ManagedProcessing *PipelineInfo `json:"managedProcessing,omitempty"`
}

// PipelineInfo references a release PipelineRun.
type PipelineInfo struct {
	// PipelineRun is the `<namespace>/<name>` reference of the PipelineRun.
	// +optional
	PipelineRun string `json:"pipelineRun,omitempty"`
	// +optional
	StartTime *metav1.Time `json:"startTime,omitempty"`
	// +optional
	CompletionTime *metav1.Time `json:"completionTime,omitempty"`
}
