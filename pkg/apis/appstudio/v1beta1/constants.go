package v1beta1

// labels
const (
	// LabelTestScenario is the key of the label identifying the integration
	// test scenario a PipelineRun has been created for.
	// The label value is the name of the IntegrationTestScenario.
	LabelTestScenario = "test.appstudio.openshift.io/scenario"

	// LabelApplication is the key of the label identifying the application
	// a PipelineRun belongs to.
	LabelApplication = "appstudio.openshift.io/application"

	// LabelPipelineType is the key of the label classifying PipelineRuns
	// by purpose, e.g. build or test.
	LabelPipelineType = "pipelines.appstudio.openshift.io/type"

	// PipelineTypeTest is the value of LabelPipelineType for integration
	// test PipelineRuns.
	PipelineTypeTest = "test"
)
