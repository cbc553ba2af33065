package fake

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ObjectMeta returns object metadata with the given name and namespace.
// Labels are taken pairwise from labelKVs.
func ObjectMeta(name string, namespace string, labelKVs ...string) metav1.ObjectMeta {
	meta := metav1.ObjectMeta{Name: name, Namespace: namespace}
	if len(labelKVs) > 0 {
		meta.Labels = map[string]string{}
		for i := 0; i+1 < len(labelKVs); i += 2 {
			meta.Labels[labelKVs[i]] = labelKVs[i+1]
		}
	}
	return meta
}

// ObjectKey returns the `<namespace>/<name>` key of an object as used by
// informer caches and listers.
func ObjectKey(name string, namespace string) string {
	if namespace == "" {
		return name
	}
	return namespace + "/" + name
}
