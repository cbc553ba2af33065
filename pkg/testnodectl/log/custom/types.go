/*
Package custom implements configurable details added to log entries about
Kubernetes objects handled by the test node controller.

The configuration is a YAML list of entries:

	- logKey: team
	  kind: label
	  spec:
	    key: example.com/team
	- logKey: commit
	  kind: annotation
	  spec:
	    key: pipelinesascode.tekton.dev/sha

Entries of unsupported kinds are ignored.
*/
package custom

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// LoggingDetailsProvider extracts details from an object to be added to
// log entries. The returned slice contains key-value pairs with keys at even
// indexes.
type LoggingDetailsProvider = func(obj metav1.Object) []any

type loggingDetailConfig struct {
	LogKey string       `yaml:"logKey,omitempty"`
	Kind   providerKind `yaml:"kind,omitempty"`
	Spec   providerSpec `yaml:"spec,omitempty"`
}

type providerKind string

const (
	providerKindLabel      providerKind = "label"
	providerKindAnnotation providerKind = "annotation"
)

type providerSpec struct {
	Key string `yaml:"key,omitempty"`
}

// metadataMaps maps provider kinds to the object metadata map they read.
var metadataMaps = map[providerKind]func(metav1.Object) map[string]string{
	providerKindLabel:      metav1.Object.GetLabels,
	providerKindAnnotation: metav1.Object.GetAnnotations,
}
