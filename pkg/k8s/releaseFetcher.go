package k8s

import (
	"context"

	appstudio "github.com/SAP/stewardci-console/pkg/apis/appstudio/v1alpha1"
	serrors "github.com/SAP/stewardci-console/pkg/errors"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/dynamic"
)

// ReleaseFetcher has methods to fetch Release objects from Kubernetes
type ReleaseFetcher interface {
	// ByName fetches a Release by namespace and name.
	// Returns nil,nil if the Release does not exist.
	ByName(ctx context.Context, namespace, name string) (*appstudio.Release, error)
}

type clientBasedReleaseFetcher struct {
	client dynamic.Interface
}

// NewClientBasedReleaseFetcher returns a ReleaseFetcher that queries the
// Kubernetes API server directly.
func NewClientBasedReleaseFetcher(client dynamic.Interface) ReleaseFetcher {
	return &clientBasedReleaseFetcher{client: client}
}

// ByName implements interface ReleaseFetcher
func (f *clientBasedReleaseFetcher) ByName(ctx context.Context, namespace, name string) (*appstudio.Release, error) {
	obj, err := f.client.Resource(appstudio.ReleaseResource).Namespace(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		if k8serrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, serrors.Errorf(err, "failed to fetch Release '%s' in namespace '%s'", name, namespace)
	}
	release := &appstudio.Release{}
	if err := FromUnstructured(obj, release); err != nil {
		return nil, err
	}
	return release, nil
}
