package testnodes

import (
	"time"

	appstudio "github.com/SAP/stewardci-console/pkg/apis/appstudio/v1beta1"
	tekton "github.com/tektoncd/pipeline/pkg/apis/pipeline/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	knativeapis "knative.dev/pkg/apis"
	duckv1 "knative.dev/pkg/apis/duck/v1"
)

const ns1 = "namespace1"

var baseTime = time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

func newScenario(name string) appstudio.IntegrationTestScenario {
	return appstudio.IntegrationTestScenario{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: ns1},
		Spec:       appstudio.IntegrationTestScenarioSpec{Application: "app1"},
	}
}

func newRun(name, scenario string, createdAfter time.Duration, status corev1.ConditionStatus, reason string) *tekton.PipelineRun {
	labels := map[string]string{}
	if scenario != "" {
		labels[appstudio.LabelTestScenario] = scenario
	}
	return &tekton.PipelineRun{
		ObjectMeta: metav1.ObjectMeta{
			Name:              name,
			Namespace:         ns1,
			Labels:            labels,
			CreationTimestamp: metav1.NewTime(baseTime.Add(createdAfter)),
		},
		Status: tekton.PipelineRunStatus{
			Status: duckv1.Status{
				Conditions: duckv1.Conditions{
					{
						Type:   knativeapis.ConditionSucceeded,
						Status: status,
						Reason: reason,
					},
				},
			},
		},
	}
}
