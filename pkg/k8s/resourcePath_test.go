package k8s

import (
	"testing"

	"gotest.tools/v3/assert"
)

func Test_ResourcePath(t *testing.T) {
	t.Parallel()

	clusterModel := ResourceModel{APIVersion: "v1", Kind: "Namespace", Plural: "namespaces"}

	for _, tc := range []struct {
		name      string
		model     ResourceModel
		resName   string
		namespace string
		expected  string
	}{
		{"pod in namespace", PodModel, "pod1", "ns1", "/k8s/ns/ns1/pods/pod1"},
		{"pods in all namespaces", PodModel, "", "", "/k8s/all-namespaces/pods"},
		{"crd in namespace", PipelineRunModel, "run1", "ns1", "/k8s/ns/ns1/tekton.dev~v1~PipelineRun/run1"},
		{"crd list", PipelineRunModel, "", "ns1", "/k8s/ns/ns1/tekton.dev~v1~PipelineRun"},
		{"cluster scoped", clusterModel, "ns1", "ignored", "/k8s/cluster/namespaces/ns1"},
		{"escaped name", PodModel, "a#b c", "ns1", "/k8s/ns/ns1/pods/a%23b%20c"},
		{"reserved characters", PodModel, "a:b@c&d=e+f$g/h?i", "ns1", "/k8s/ns/ns1/pods/a%3Ab%40c%26d%3De%2Bf%24g%2Fh%3Fi"},
		{"unreserved marks", PodModel, "a-b_c.d!e~f*g'h(i)", "ns1", "/k8s/ns/ns1/pods/a-b_c.d!e~f*g'h(i)"},
		{"escaped percent", PodModel, "100%21", "ns1", "/k8s/ns/ns1/pods/100%2521"},
		{"no plural", ResourceModel{Namespaced: true}, "x", "ns1", "/k8s/ns/ns1//x"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tc := tc
			t.Parallel()

			// EXERCISE
			result := ResourcePath(tc.model, tc.resName, tc.namespace)

			// VERIFY
			assert.Equal(t, tc.expected, result)
		})
	}
}
