package fake

import (
	"time"

	appstudioapi "github.com/SAP/stewardci-console/pkg/apis/appstudio"
	appstudiov1alpha1 "github.com/SAP/stewardci-console/pkg/apis/appstudio/v1alpha1"
	appstudiov1beta1 "github.com/SAP/stewardci-console/pkg/apis/appstudio/v1beta1"
	tektonapi "github.com/tektoncd/pipeline/pkg/apis/pipeline"
	tektonclientfake "github.com/tektoncd/pipeline/pkg/client/clientset/versioned/fake"
	tektonclientv1 "github.com/tektoncd/pipeline/pkg/client/clientset/versioned/typed/pipeline/v1"
	tektoninformers "github.com/tektoncd/pipeline/pkg/client/informers/externalversions"
	metav1unstructured "k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	runtime "k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	dynamic "k8s.io/client-go/dynamic"
	dynamicinformer "k8s.io/client-go/dynamic/dynamicinformer"
	dynamicfake "k8s.io/client-go/dynamic/fake"
	kubernetes "k8s.io/client-go/kubernetes/fake"
	corev1 "k8s.io/client-go/kubernetes/typed/core/v1"
)

// ClientFactory is a factory for fake clients.
type ClientFactory struct {
	kubernetesClientset    *kubernetes.Clientset
	dynamicClient          *dynamicfake.FakeDynamicClient
	dynamicInformerFactory dynamicinformer.DynamicSharedInformerFactory
	tektonClientset        *tektonclientfake.Clientset
	tektonInformerFactory  tektoninformers.SharedInformerFactory
}

// listKinds maps the AppStudio resources served by the fake dynamic client
// to their list kinds.
var listKinds = map[schema.GroupVersionResource]string{
	appstudiov1beta1.IntegrationTestScenarioResource: "IntegrationTestScenarioList",
	appstudiov1alpha1.ReleaseResource:                "ReleaseList",
}

// NewClientFactory creates a new ClientFactory.
// Tekton objects are served by the fake Tekton clientset, AppStudio objects
// by the fake dynamic client and all other objects by the fake Kubernetes
// clientset.
func NewClientFactory(objects ...runtime.Object) *ClientFactory {
	tektonObjects, dynamicObjects, kubernetesObjects := groupObjectsByAPI(objects)

	dynamicClient := dynamicfake.NewSimpleDynamicClientWithCustomListKinds(runtime.NewScheme(), listKinds, dynamicObjects...)
	tektonClientset := tektonclientfake.NewSimpleClientset(tektonObjects...)
	return &ClientFactory{
		kubernetesClientset:    kubernetes.NewSimpleClientset(kubernetesObjects...),
		dynamicClient:          dynamicClient,
		dynamicInformerFactory: dynamicinformer.NewDynamicSharedInformerFactory(dynamicClient, time.Minute*10),
		tektonClientset:        tektonClientset,
		tektonInformerFactory:  tektoninformers.NewSharedInformerFactory(tektonClientset, time.Minute*10),
	}
}

func groupObjectsByAPI(objects []runtime.Object) (
	tekton []runtime.Object,
	dynamic []runtime.Object,
	kubernetes []runtime.Object,
) {
	tekton = []runtime.Object{}
	dynamic = []runtime.Object{}
	kubernetes = []runtime.Object{}
	for _, o := range objects {
		switch o.GetObjectKind().GroupVersionKind().Group {
		case tektonapi.GroupName:
			tekton = append(tekton, o)
		case appstudioapi.GroupName:
			dynamic = append(dynamic, toUnstructured(o))
		default:
			kubernetes = append(kubernetes, o)
		}
	}
	return
}

func toUnstructured(obj runtime.Object) runtime.Object {
	if _, ok := obj.(*metav1unstructured.Unstructured); ok {
		return obj
	}
	content, err := runtime.DefaultUnstructuredConverter.ToUnstructured(obj)
	if err != nil {
		panic(err)
	}
	return &metav1unstructured.Unstructured{Object: content}
}

// KubernetesClientset returns the Kubernetes fake clientset.
func (f *ClientFactory) KubernetesClientset() *kubernetes.Clientset {
	return f.kubernetesClientset
}

// CoreV1 returns fake CoreV1 clients
func (f *ClientFactory) CoreV1() corev1.CoreV1Interface {
	return f.kubernetesClientset.CoreV1()
}

// Dynamic returns the fake dynamic client
func (f *ClientFactory) Dynamic() dynamic.Interface {
	return f.dynamicClient
}

// DynamicClient returns the fake dynamic client with its fake API.
func (f *ClientFactory) DynamicClient() *dynamicfake.FakeDynamicClient {
	return f.dynamicClient
}

// DynamicInformerFactory returns the informer factory for the fake dynamic client
func (f *ClientFactory) DynamicInformerFactory() dynamicinformer.DynamicSharedInformerFactory {
	return f.dynamicInformerFactory
}

// TektonClientset returns the Tekton fake clientset.
func (f *ClientFactory) TektonClientset() *tektonclientfake.Clientset {
	return f.tektonClientset
}

// TektonInformerFactory returns the Tekton informer factory
func (f *ClientFactory) TektonInformerFactory() tektoninformers.SharedInformerFactory {
	return f.tektonInformerFactory
}

// TektonV1 returns the Tekton v1 client
func (f *ClientFactory) TektonV1() tektonclientv1.TektonV1Interface {
	return f.tektonClientset.TektonV1()
}
