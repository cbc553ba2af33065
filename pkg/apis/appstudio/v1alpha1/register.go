package v1alpha1

import (
	x "github.com/SAP/stewardci-console/pkg/apis/appstudio"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// GroupVersion is the version for the scheme
const GroupVersion = "v1alpha1"

// SchemeGroupVersion ...
var SchemeGroupVersion = schema.GroupVersion{Group: x.GroupName, Version: GroupVersion}

var (
	// SchemeBuilder builds the scheme
	SchemeBuilder = runtime.NewSchemeBuilder(addKnownTypes)
	// AddToScheme ...
	AddToScheme = SchemeBuilder.AddToScheme

	// ReleaseResource is the resource of releases, used with the dynamic
	// client.
	ReleaseResource = SchemeGroupVersion.WithResource("releases")
)

func addKnownTypes(scheme *runtime.Scheme) error {
	scheme.AddKnownTypes(SchemeGroupVersion,
		&Release{},
		&ReleaseList{},
	)

	metav1.AddToGroupVersion(scheme, SchemeGroupVersion)
	return nil
}
