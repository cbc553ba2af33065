package testnodes

import (
	appstudio "github.com/SAP/stewardci-console/pkg/apis/appstudio/v1beta1"
	"github.com/SAP/stewardci-console/pkg/runstatus"
	tekton "github.com/tektoncd/pipeline/pkg/apis/pipeline/v1"
)

// Input is the input of Build.
// The loaded flags state whether the respective list has been fetched
// completely.
type Input struct {
	Scenarios       []appstudio.IntegrationTestScenario
	ScenariosLoaded bool
	Runs            []*tekton.PipelineRun
	RunsLoaded      bool
}

// Graph is the integration test part of an application graph.
type Graph struct {
	Nodes []TestNode `json:"nodes"`
	// LatestRuns contains the latest PipelineRun of each scenario that
	// has been run at least once, in scenario order.
	LatestRuns []*tekton.PipelineRun `json:"-"`
	// Loaded is true if both scenarios and runs have been loaded.
	Loaded bool `json:"loaded"`
}

// Build projects the input to a Graph. See Project.
func Build(in Input) Graph {
	nodes, latestRuns := project(in.Scenarios, in.Runs)
	return Graph{
		Nodes:      nodes,
		LatestRuns: latestRuns,
		Loaded:     in.ScenariosLoaded && in.RunsLoaded,
	}
}

// Summary counts the nodes per status.
func Summary(nodes []TestNode) map[runstatus.RunStatus]int {
	result := map[runstatus.RunStatus]int{}
	for _, n := range nodes {
		result[n.Data.Status]++
	}
	return result
}
