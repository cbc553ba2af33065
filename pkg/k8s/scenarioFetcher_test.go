package k8s

import (
	"context"
	"fmt"
	"testing"

	appstudio "github.com/SAP/stewardci-console/pkg/apis/appstudio/v1beta1"
	"github.com/SAP/stewardci-console/pkg/k8s/fake"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
	metav1unstructured "k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

func Test_clientBasedScenarioFetcher_ForApplication(t *testing.T) {
	// SETUP
	factory := fake.NewClientFactory(
		fake.IntegrationTestScenario("s2", ns1, app1),
		fake.IntegrationTestScenario("s1", ns1, app1),
		fake.IntegrationTestScenario("s3", ns1, "otherApp"),
		fake.IntegrationTestScenario("s4", "ns2", app1),
	)
	examinee := NewClientBasedScenarioFetcher(factory.Dynamic())

	// EXERCISE
	result, resultErr := examinee.ForApplication(context.Background(), ns1, app1)

	// VERIFY
	assert.NilError(t, resultErr)
	assert.Assert(t, is.Len(result, 2))
	assert.Equal(t, "s1", result[0].Name)
	assert.Equal(t, "s2", result[1].Name)
	assert.Equal(t, app1, result[0].Spec.Application)
}

func Test_clientBasedScenarioFetcher_ForApplication_Error(t *testing.T) {
	// SETUP
	factory := fake.NewClientFactory()
	factory.DynamicClient().PrependReactor("list", "*", fake.NewErrorReactor(fmt.Errorf("expected")))
	examinee := NewClientBasedScenarioFetcher(factory.Dynamic())

	// EXERCISE
	result, resultErr := examinee.ForApplication(context.Background(), ns1, app1)

	// VERIFY
	assert.Assert(t, result == nil)
	assert.ErrorContains(t, resultErr, "failed to list IntegrationTestScenarios in namespace 'namespace1'")
}

func Test_listerBasedScenarioFetcher_SkipsUndecodable(t *testing.T) {
	// SETUP
	factory := fake.NewClientFactory()
	informer := factory.DynamicInformerFactory().ForResource(appstudio.IntegrationTestScenarioResource)
	good := &metav1unstructured.Unstructured{Object: map[string]interface{}{
		"apiVersion": "appstudio.redhat.com/v1beta1",
		"kind":       "IntegrationTestScenario",
		"metadata":   map[string]interface{}{"name": "good", "namespace": ns1},
		"spec":       map[string]interface{}{"application": app1},
	}}
	bad := &metav1unstructured.Unstructured{Object: map[string]interface{}{
		"apiVersion": "appstudio.redhat.com/v1beta1",
		"kind":       "IntegrationTestScenario",
		"metadata":   map[string]interface{}{"name": "bad", "namespace": ns1},
		"spec":       "not an object",
	}}
	assert.NilError(t, informer.Informer().GetIndexer().Add(good))
	assert.NilError(t, informer.Informer().GetIndexer().Add(bad))
	examinee := NewListerBasedScenarioFetcher(informer.Lister())

	// EXERCISE
	result, resultErr := examinee.ForApplication(context.Background(), ns1, app1)

	// VERIFY
	assert.NilError(t, resultErr)
	assert.Assert(t, is.Len(result, 1))
	assert.Equal(t, "good", result[0].Name)
}
