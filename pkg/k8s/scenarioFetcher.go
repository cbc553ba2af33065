package k8s

import (
	"context"
	"sort"

	appstudio "github.com/SAP/stewardci-console/pkg/apis/appstudio/v1beta1"
	serrors "github.com/SAP/stewardci-console/pkg/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/tools/cache"
	klog "k8s.io/klog/v2"
)

// ScenarioFetcher has methods to fetch IntegrationTestScenario objects from Kubernetes
type ScenarioFetcher interface {
	// ForApplication returns the IntegrationTestScenarios of the given
	// application ordered by name.
	// Objects that cannot be decoded are skipped.
	ForApplication(ctx context.Context, namespace, application string) ([]appstudio.IntegrationTestScenario, error)
}

type listerBasedScenarioFetcher struct {
	lister cache.GenericLister
}

// NewListerBasedScenarioFetcher returns a ScenarioFetcher reading from the
// cache of a dynamic informer for IntegrationTestScenarios.
func NewListerBasedScenarioFetcher(lister cache.GenericLister) ScenarioFetcher {
	return &listerBasedScenarioFetcher{lister: lister}
}

// ForApplication implements interface ScenarioFetcher
func (f *listerBasedScenarioFetcher) ForApplication(ctx context.Context, namespace, application string) ([]appstudio.IntegrationTestScenario, error) {
	objs, err := f.lister.ByNamespace(namespace).List(labels.Everything())
	if err != nil {
		return nil, serrors.Errorf(err, "failed to list IntegrationTestScenarios in namespace '%s'", namespace)
	}
	return filterScenarios(ctx, objs, application), nil
}

type clientBasedScenarioFetcher struct {
	client dynamic.Interface
}

// NewClientBasedScenarioFetcher returns a ScenarioFetcher that queries the
// Kubernetes API server directly.
func NewClientBasedScenarioFetcher(client dynamic.Interface) ScenarioFetcher {
	return &clientBasedScenarioFetcher{client: client}
}

// ForApplication implements interface ScenarioFetcher
func (f *clientBasedScenarioFetcher) ForApplication(ctx context.Context, namespace, application string) ([]appstudio.IntegrationTestScenario, error) {
	list, err := f.client.Resource(appstudio.IntegrationTestScenarioResource).Namespace(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, serrors.Errorf(err, "failed to list IntegrationTestScenarios in namespace '%s'", namespace)
	}
	objs := make([]runtime.Object, 0, len(list.Items))
	for i := range list.Items {
		objs = append(objs, &list.Items[i])
	}
	return filterScenarios(ctx, objs, application), nil
}

func filterScenarios(ctx context.Context, objs []runtime.Object, application string) []appstudio.IntegrationTestScenario {
	logger := klog.FromContext(ctx)
	result := []appstudio.IntegrationTestScenario{}
	for _, obj := range objs {
		scenario := appstudio.IntegrationTestScenario{}
		if err := FromUnstructured(obj, &scenario); err != nil {
			logger.V(3).Info("Skipping undecodable IntegrationTestScenario", "error", err.Error())
			continue
		}
		if scenario.Spec.Application != application {
			continue
		}
		result = append(result, scenario)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}
