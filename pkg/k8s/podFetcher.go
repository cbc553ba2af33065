package k8s

import (
	"context"

	serrors "github.com/SAP/stewardci-console/pkg/errors"
	corev1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	corev1client "k8s.io/client-go/kubernetes/typed/core/v1"
)

// PodFetcher has methods to fetch the pods of TaskRuns from Kubernetes
type PodFetcher interface {
	// ByName fetches a pod by namespace and name.
	// Returns nil,nil if the pod does not exist.
	ByName(ctx context.Context, namespace, name string) (*corev1.Pod, error)
}

type clientBasedPodFetcher struct {
	client corev1client.PodsGetter
}

// NewClientBasedPodFetcher returns a PodFetcher that queries the
// Kubernetes API server directly.
func NewClientBasedPodFetcher(client corev1client.PodsGetter) PodFetcher {
	return &clientBasedPodFetcher{client: client}
}

// ByName implements interface PodFetcher
func (f *clientBasedPodFetcher) ByName(ctx context.Context, namespace, name string) (*corev1.Pod, error) {
	pod, err := f.client.Pods(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		if k8serrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, serrors.Errorf(err, "failed to fetch pod '%s' in namespace '%s'", name, namespace)
	}
	return pod, nil
}
