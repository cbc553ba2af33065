package appstudio

const (
	// GroupName is the API group of the AppStudio custom resources.
	GroupName = "appstudio.redhat.com"
)
