package k8s

import (
	"context"
	"sort"

	serrors "github.com/SAP/stewardci-console/pkg/errors"
	tekton "github.com/tektoncd/pipeline/pkg/apis/pipeline/v1"
	tektonclientv1 "github.com/tektoncd/pipeline/pkg/client/clientset/versioned/typed/pipeline/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
)

// TaskRunFetcher has methods to fetch Tekton TaskRun objects from Kubernetes
type TaskRunFetcher interface {
	// ForPipelineRun returns the TaskRuns of the given PipelineRun ordered
	// by creation time.
	ForPipelineRun(ctx context.Context, namespace, pipelineRunName string) ([]tekton.TaskRun, error)
}

type clientBasedTaskRunFetcher struct {
	client tektonclientv1.TektonV1Interface
}

// NewClientBasedTaskRunFetcher returns a TaskRunFetcher that queries the
// Kubernetes API server directly.
func NewClientBasedTaskRunFetcher(client tektonclientv1.TektonV1Interface) TaskRunFetcher {
	return &clientBasedTaskRunFetcher{client: client}
}

// ForPipelineRun implements interface TaskRunFetcher
func (f *clientBasedTaskRunFetcher) ForPipelineRun(ctx context.Context, namespace, pipelineRunName string) ([]tekton.TaskRun, error) {
	selector := labels.SelectorFromSet(labels.Set{LabelTektonPipelineRun: pipelineRunName})
	list, err := f.client.TaskRuns(namespace).List(ctx, metav1.ListOptions{LabelSelector: selector.String()})
	if err != nil {
		return nil, serrors.Errorf(err, "failed to list TaskRuns of PipelineRun '%s' in namespace '%s'", pipelineRunName, namespace)
	}
	items := list.Items
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreationTimestamp.Before(&items[j].CreationTimestamp)
	})
	return items, nil
}
