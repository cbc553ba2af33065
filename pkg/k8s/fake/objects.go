package fake

import (
	"time"

	appstudiov1alpha1 "github.com/SAP/stewardci-console/pkg/apis/appstudio/v1alpha1"
	appstudiov1beta1 "github.com/SAP/stewardci-console/pkg/apis/appstudio/v1beta1"
	tekton "github.com/tektoncd/pipeline/pkg/apis/pipeline/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	knativeapis "knative.dev/pkg/apis"
	duckv1 "knative.dev/pkg/apis/duck/v1"
)

// IntegrationTestScenario creates a new scenario object for an application.
func IntegrationTestScenario(name, namespace, application string) *appstudiov1beta1.IntegrationTestScenario {
	return &appstudiov1beta1.IntegrationTestScenario{
		TypeMeta: metav1.TypeMeta{
			APIVersion: appstudiov1beta1.SchemeGroupVersion.String(),
			Kind:       "IntegrationTestScenario",
		},
		ObjectMeta: ObjectMeta(name, namespace),
		Spec: appstudiov1beta1.IntegrationTestScenarioSpec{
			Application: application,
		},
	}
}

// TestPipelineRun creates a new integration test PipelineRun for a scenario
// of an application. If status is empty, no condition is set.
func TestPipelineRun(name, namespace, application, scenario string, created time.Time, status corev1.ConditionStatus, reason string) *tekton.PipelineRun {
	meta := ObjectMeta(name, namespace,
		appstudiov1beta1.LabelApplication, application,
		appstudiov1beta1.LabelTestScenario, scenario,
		appstudiov1beta1.LabelPipelineType, appstudiov1beta1.PipelineTypeTest,
	)
	meta.CreationTimestamp = metav1.NewTime(created)
	run := &tekton.PipelineRun{
		TypeMeta: metav1.TypeMeta{
			APIVersion: tekton.SchemeGroupVersion.String(),
			Kind:       "PipelineRun",
		},
		ObjectMeta: meta,
	}
	if status != "" {
		run.Status = tekton.PipelineRunStatus{
			Status: duckv1.Status{
				Conditions: duckv1.Conditions{
					{Type: knativeapis.ConditionSucceeded, Status: status, Reason: reason},
				},
			},
		}
	}
	return run
}

// TaskRun creates a new TaskRun belonging to a PipelineRun.
func TaskRun(name, namespace, pipelineRunName string, created time.Time, status corev1.ConditionStatus, reason string) *tekton.TaskRun {
	meta := ObjectMeta(name, namespace, "tekton.dev/pipelineRun", pipelineRunName)
	meta.CreationTimestamp = metav1.NewTime(created)
	return &tekton.TaskRun{
		TypeMeta: metav1.TypeMeta{
			APIVersion: tekton.SchemeGroupVersion.String(),
			Kind:       "TaskRun",
		},
		ObjectMeta: meta,
		Status: tekton.TaskRunStatus{
			Status: duckv1.Status{
				Conditions: duckv1.Conditions{
					{Type: knativeapis.ConditionSucceeded, Status: status, Reason: reason},
				},
			},
		},
	}
}

// Release creates a new Release object.
func Release(name, namespace string, status appstudiov1alpha1.ReleaseStatus) *appstudiov1alpha1.Release {
	return &appstudiov1alpha1.Release{
		TypeMeta: metav1.TypeMeta{
			APIVersion: appstudiov1alpha1.SchemeGroupVersion.String(),
			Kind:       "Release",
		},
		ObjectMeta: ObjectMeta(name, namespace),
		Status:     status,
	}
}

// Pod creates a new pod with one container per container status.
// The containers are named like the statuses.
func Pod(name, namespace string, containerStatuses ...corev1.ContainerStatus) *corev1.Pod {
	pod := &corev1.Pod{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Pod",
		},
		ObjectMeta: ObjectMeta(name, namespace),
		Status: corev1.PodStatus{
			ContainerStatuses: containerStatuses,
		},
	}
	for _, status := range containerStatuses {
		pod.Spec.Containers = append(pod.Spec.Containers, corev1.Container{Name: status.Name})
	}
	return pod
}
