package k8s

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/SAP/stewardci-console/pkg/k8s PipelineRunFetcher,ScenarioFetcher,TaskRunFetcher,ReleaseFetcher
