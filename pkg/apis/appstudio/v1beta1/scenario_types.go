package v1beta1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// IntegrationTestScenario is a K8s custom resource defining a named
// integration test for an application.
// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object
type IntegrationTestScenario struct {
	metav1.TypeMeta `json:",inline"`
	// +optional
	metav1.ObjectMeta `json:"metadata,omitempty"`
	Spec              IntegrationTestScenarioSpec `json:"spec"`
	// +optional
	Status IntegrationTestScenarioStatus `json:"status,omitempty"`
}

// IntegrationTestScenarioList is a list of IntegrationTestScenario objects
// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object
type IntegrationTestScenarioList struct {
	metav1.TypeMeta `json:",inline"`
	// +optional
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []IntegrationTestScenario `json:"items"`
}

// IntegrationTestScenarioSpec is the spec of an IntegrationTestScenario
type IntegrationTestScenarioSpec struct {
	// Application is the name of the application the scenario tests.
	Application string `json:"application"`
	// ResolverRef points to the Tekton pipeline executed for the scenario.
	ResolverRef ResolverRef `json:"resolverRef"`
	// +optional
	Params []PipelineParameter `json:"params,omitempty"`
	// +optional
	Contexts []TestContext `json:"contexts,omitempty"`
}

// ResolverRef references a Tekton pipeline via a remote resolver.
type ResolverRef struct {
	Resolver string          `json:"resolver"`
	Params   []ResolverParam `json:"params"`
}

// ResolverParam is a single parameter of a ResolverRef.
type ResolverParam struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PipelineParameter is a parameter passed to the test pipeline.
type PipelineParameter struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
	// +optional
	Values []string `json:"values,omitempty"`
}

// TestContext restricts when a scenario is executed.
type TestContext struct {
	Name string `json:"name"`
	// +optional
	Description string `json:"description,omitempty"`
}

// IntegrationTestScenarioStatus is the status of an IntegrationTestScenario
type IntegrationTestScenarioStatus struct {
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}
