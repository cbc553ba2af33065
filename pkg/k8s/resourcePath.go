package k8s

import (
	"net/url"
	"strings"

	tektonapi "github.com/tektoncd/pipeline/pkg/apis/pipeline"
)

// ResourceModel describes a resource type for building console links.
type ResourceModel struct {
	APIGroup   string
	APIVersion string
	Kind       string
	Plural     string
	Namespaced bool
	// CRD is true for custom resources. Their paths use the
	// `<group>~<version>~<kind>` reference instead of the plural.
	CRD bool
}

var (
	// PodModel is the ResourceModel of core/v1 Pods.
	PodModel = ResourceModel{
		APIVersion: "v1",
		Kind:       "Pod",
		Plural:     "pods",
		Namespaced: true,
	}

	// PipelineRunModel is the ResourceModel of Tekton PipelineRuns.
	PipelineRunModel = ResourceModel{
		APIGroup:   tektonapi.GroupName,
		APIVersion: "v1",
		Kind:       "PipelineRun",
		Plural:     "pipelineruns",
		Namespaced: true,
		CRD:        true,
	}
)

// ResourcePath returns the console path of a resource or resource list.
// name and namespace are optional. For namespaced models without namespace
// the path points to all namespaces.
func ResourcePath(model ResourceModel, name, namespace string) string {
	var b strings.Builder
	b.WriteString("/k8s/")

	if !model.Namespaced {
		b.WriteString("cluster/")
	} else if namespace != "" {
		b.WriteString("ns/")
		b.WriteString(namespace)
		b.WriteString("/")
	} else {
		b.WriteString("all-namespaces/")
	}

	if model.CRD {
		b.WriteString(strings.Join([]string{model.APIGroup, model.APIVersion, model.Kind}, "~"))
	} else if model.Plural != "" {
		b.WriteString(model.Plural)
	}

	if name != "" {
		b.WriteString("/")
		b.WriteString(escapeURIComponent(name))
	}
	return b.String()
}

// QueryEscape leaves fewer characters unescaped than URI components allow
// and encodes blanks as "+".
var uriComponentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// escapeURIComponent escapes all characters of s except
// `A-Z a-z 0-9 - _ . ! ~ * ' ( )`.
func escapeURIComponent(s string) string {
	return uriComponentReplacer.Replace(url.QueryEscape(s))
}
