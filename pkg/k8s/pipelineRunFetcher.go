package k8s

import (
	"context"

	serrors "github.com/SAP/stewardci-console/pkg/errors"
	tekton "github.com/tektoncd/pipeline/pkg/apis/pipeline/v1"
	tektonclientv1 "github.com/tektoncd/pipeline/pkg/client/clientset/versioned/typed/pipeline/v1"
	tektonlisters "github.com/tektoncd/pipeline/pkg/client/listers/pipeline/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/client-go/tools/cache"
)

// LabelTektonPipelineRun is the label Tekton sets on TaskRuns to identify the
// PipelineRun they belong to.
const LabelTektonPipelineRun = "tekton.dev/pipelineRun"

// PipelineRunFetcher has methods to fetch Tekton PipelineRun objects from Kubernetes
type PipelineRunFetcher interface {
	// ByName fetches a PipelineRun by namespace and name.
	// Returns nil,nil if the PipelineRun does not exist.
	ByName(ctx context.Context, namespace, name string) (*tekton.PipelineRun, error)

	// ByKey fetches a PipelineRun by its `<namespace>/<name>` key.
	// Returns nil,nil if the PipelineRun does not exist.
	ByKey(ctx context.Context, key string) (*tekton.PipelineRun, error)

	// List returns all PipelineRuns in the namespace matching the selector.
	// The returned objects must not be modified.
	List(ctx context.Context, namespace string, selector labels.Selector) ([]*tekton.PipelineRun, error)
}

type listerBasedPipelineRunFetcher struct {
	lister tektonlisters.PipelineRunLister
}

// NewListerBasedPipelineRunFetcher returns a PipelineRunFetcher that reads
// from the informer cache.
func NewListerBasedPipelineRunFetcher(lister tektonlisters.PipelineRunLister) PipelineRunFetcher {
	return &listerBasedPipelineRunFetcher{
		lister: lister,
	}
}

// ByName implements interface PipelineRunFetcher
func (f *listerBasedPipelineRunFetcher) ByName(ctx context.Context, namespace, name string) (*tekton.PipelineRun, error) {
	run, err := f.lister.PipelineRuns(namespace).Get(name)
	return returnCopyOrNilOnNotFound(run, err, namespace, name)
}

// ByKey implements interface PipelineRunFetcher
func (f *listerBasedPipelineRunFetcher) ByKey(ctx context.Context, key string) (*tekton.PipelineRun, error) {
	return byKey(ctx, f, key)
}

// List implements interface PipelineRunFetcher
func (f *listerBasedPipelineRunFetcher) List(ctx context.Context, namespace string, selector labels.Selector) ([]*tekton.PipelineRun, error) {
	if selector == nil {
		selector = labels.Everything()
	}
	runs, err := f.lister.PipelineRuns(namespace).List(selector)
	if err != nil {
		return nil, serrors.Errorf(err, "failed to list PipelineRuns in namespace '%s'", namespace)
	}
	return runs, nil
}

type clientBasedPipelineRunFetcher struct {
	client tektonclientv1.TektonV1Interface
}

// NewClientBasedPipelineRunFetcher returns a PipelineRunFetcher that queries
// the Kubernetes API server directly.
func NewClientBasedPipelineRunFetcher(client tektonclientv1.TektonV1Interface) PipelineRunFetcher {
	return &clientBasedPipelineRunFetcher{client: client}
}

// ByName implements interface PipelineRunFetcher
func (f *clientBasedPipelineRunFetcher) ByName(ctx context.Context, namespace, name string) (*tekton.PipelineRun, error) {
	run, err := f.client.PipelineRuns(namespace).Get(ctx, name, metav1.GetOptions{})
	return returnCopyOrNilOnNotFound(run, err, namespace, name)
}

// ByKey implements interface PipelineRunFetcher
func (f *clientBasedPipelineRunFetcher) ByKey(ctx context.Context, key string) (*tekton.PipelineRun, error) {
	return byKey(ctx, f, key)
}

// List implements interface PipelineRunFetcher
func (f *clientBasedPipelineRunFetcher) List(ctx context.Context, namespace string, selector labels.Selector) ([]*tekton.PipelineRun, error) {
	opts := metav1.ListOptions{}
	if selector != nil {
		opts.LabelSelector = selector.String()
	}
	list, err := f.client.PipelineRuns(namespace).List(ctx, opts)
	if err != nil {
		return nil, serrors.Errorf(err, "failed to list PipelineRuns in namespace '%s'", namespace)
	}
	result := make([]*tekton.PipelineRun, 0, len(list.Items))
	for i := range list.Items {
		result = append(result, &list.Items[i])
	}
	return result, nil
}

func byKey(ctx context.Context, f PipelineRunFetcher, key string) (*tekton.PipelineRun, error) {
	namespace, name, err := cache.SplitMetaNamespaceKey(key)
	if err != nil {
		return nil, err
	}
	return f.ByName(ctx, namespace, name)
}

func returnCopyOrNilOnNotFound(run *tekton.PipelineRun, err error, namespace, name string) (*tekton.PipelineRun, error) {
	if err != nil {
		if k8serrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, serrors.Errorf(err, "failed to fetch PipelineRun '%s' in namespace '%s'", name, namespace)
	}
	return run.DeepCopy(), nil
}
