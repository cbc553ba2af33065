package k8s

import (
	"time"

	tektonclient "github.com/tektoncd/pipeline/pkg/client/clientset/versioned"
	tektonclientv1 "github.com/tektoncd/pipeline/pkg/client/clientset/versioned/typed/pipeline/v1"
	tektoninformers "github.com/tektoncd/pipeline/pkg/client/informers/externalversions"
	dynamic "k8s.io/client-go/dynamic"
	dynamicinformer "k8s.io/client-go/dynamic/dynamicinformer"
	"k8s.io/client-go/kubernetes"
	corev1 "k8s.io/client-go/kubernetes/typed/core/v1"
	"k8s.io/client-go/rest"
	klog "k8s.io/klog/v2"
)

// ClientFactory is the interface for Kubernetes client factories.
type ClientFactory interface {
	// CoreV1 returns the core/v1 Kubernetes client
	CoreV1() corev1.CoreV1Interface

	// Dynamic returns the dynamic Kubernetes client
	Dynamic() dynamic.Interface

	// DynamicInformerFactory returns the informer factory for resources
	// accessed via the dynamic client, e.g. AppStudio resources.
	DynamicInformerFactory() dynamicinformer.DynamicSharedInformerFactory

	// TektonV1 returns the tekton.dev/v1 Kubernetes client
	TektonV1() tektonclientv1.TektonV1Interface

	// TektonInformerFactory returns the informer factory for Tekton
	TektonInformerFactory() tektoninformers.SharedInformerFactory
}

type clientFactory struct {
	kubernetesClientset    *kubernetes.Clientset
	dynamicClient          dynamic.Interface
	dynamicInformerFactory dynamicinformer.DynamicSharedInformerFactory
	tektonClientset        *tektonclient.Clientset
	tektonInformerFactory  tektoninformers.SharedInformerFactory
}

// NewClientFactory creates new client factory based on rest config
func NewClientFactory(config *rest.Config, resyncPeriod time.Duration) ClientFactory {
	kubernetesClientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		klog.V(2).Infof("could not create Kubernetes clientset: %s", err)
		return nil
	}

	dynamicClient, err := dynamic.NewForConfig(config)
	if err != nil {
		klog.V(2).Infof("could not create dynamic Kubernetes clientset: %s", err)
		return nil
	}
	dynamicInformerFactory := dynamicinformer.NewDynamicSharedInformerFactory(dynamicClient, resyncPeriod)

	tektonClientset, err := tektonclient.NewForConfig(config)
	if err != nil {
		klog.V(2).Infof("could not create Tekton clientset: %s", err)
		return nil
	}
	tektonInformerFactory := tektoninformers.NewSharedInformerFactory(tektonClientset, resyncPeriod)

	return &clientFactory{
		kubernetesClientset:    kubernetesClientset,
		dynamicClient:          dynamicClient,
		dynamicInformerFactory: dynamicInformerFactory,
		tektonClientset:        tektonClientset,
		tektonInformerFactory:  tektonInformerFactory,
	}
}

// CoreV1 implements interface ClientFactory
func (f *clientFactory) CoreV1() corev1.CoreV1Interface {
	return f.kubernetesClientset.CoreV1()
}

// Dynamic implements interface ClientFactory
func (f *clientFactory) Dynamic() dynamic.Interface {
	return f.dynamicClient
}

// DynamicInformerFactory implements interface ClientFactory
func (f *clientFactory) DynamicInformerFactory() dynamicinformer.DynamicSharedInformerFactory {
	return f.dynamicInformerFactory
}

// TektonInformerFactory implements interface ClientFactory
func (f *clientFactory) TektonInformerFactory() tektoninformers.SharedInformerFactory {
	return f.tektonInformerFactory
}

// TektonV1 implements interface ClientFactory
func (f *clientFactory) TektonV1() tektonclientv1.TektonV1Interface {
	return f.tektonClientset.TektonV1()
}
