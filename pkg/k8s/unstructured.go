package k8s

import (
	"github.com/pkg/errors"
	metav1unstructured "k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
)

// FromUnstructured converts a runtime object served by a dynamic client or
// lister into the typed object dest points to.
func FromUnstructured(obj runtime.Object, dest interface{}) error {
	u, ok := obj.(*metav1unstructured.Unstructured)
	if !ok {
		return errors.Errorf("expected *unstructured.Unstructured but got %T", obj)
	}
	err := runtime.DefaultUnstructuredConverter.FromUnstructured(u.UnstructuredContent(), dest)
	if err != nil {
		return errors.Wrapf(err, "failed to convert %s '%s/%s'", u.GetKind(), u.GetNamespace(), u.GetName())
	}
	return nil
}
