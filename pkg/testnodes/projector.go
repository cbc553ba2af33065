package testnodes

import (
	appstudio "github.com/SAP/stewardci-console/pkg/apis/appstudio/v1beta1"
	"github.com/SAP/stewardci-console/pkg/runstatus"
	tekton "github.com/tektoncd/pipeline/pkg/apis/pipeline/v1"
)

// TestNode is the graph node representing a single integration test
// scenario of an application.
type TestNode struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Data  NodeData `json:"data"`
}

// NodeData is the payload of a TestNode.
type NodeData struct {
	// Status is the status of the latest PipelineRun of the scenario, or
	// PipelineNotStarted if the scenario has never been run.
	Status      runstatus.RunStatus `json:"status"`
	Application string              `json:"application,omitempty"`
	Scenario    string              `json:"scenario"`
	// LatestRun is the name of the latest PipelineRun of the scenario.
	// +optional
	LatestRun string `json:"latestRun,omitempty"`
	// RunCount is the number of PipelineRuns found for the scenario.
	RunCount int `json:"runCount"`
}

// Project creates one TestNode per scenario, in the order of scenarios.
// Each node carries the status of the most recently created PipelineRun
// labelled for the scenario. If multiple runs have the same creation
// timestamp, the last one in runs wins. Scenarios without runs get status
// PipelineNotStarted. Runs not labelled for any of the scenarios are
// ignored.
// Neither scenarios nor runs are modified.
func Project(scenarios []appstudio.IntegrationTestScenario, runs []*tekton.PipelineRun) []TestNode {
	nodes, _ := project(scenarios, runs)
	return nodes
}

type scenarioRuns struct {
	latest *tekton.PipelineRun
	count  int
}

func project(scenarios []appstudio.IntegrationTestScenario, runs []*tekton.PipelineRun) ([]TestNode, []*tekton.PipelineRun) {
	byScenario := groupByScenario(runs)

	nodes := make([]TestNode, 0, len(scenarios))
	latestRuns := []*tekton.PipelineRun{}
	for i := range scenarios {
		scenario := &scenarios[i]
		name := scenario.GetName()
		group := byScenario[name]

		data := NodeData{
			Status:      runstatus.StatusPipelineNotStarted,
			Application: scenario.Spec.Application,
			Scenario:    name,
		}
		if group != nil {
			data.Status = runstatus.OfPipelineRun(group.latest)
			data.LatestRun = group.latest.GetName()
			data.RunCount = group.count
			latestRuns = append(latestRuns, group.latest)
		}
		nodes = append(nodes, TestNode{
			ID:    name,
			Label: name,
			Data:  data,
		})
	}
	return nodes, latestRuns
}

func groupByScenario(runs []*tekton.PipelineRun) map[string]*scenarioRuns {
	result := map[string]*scenarioRuns{}
	for _, run := range runs {
		if run == nil {
			continue
		}
		name, ok := run.GetLabels()[appstudio.LabelTestScenario]
		if !ok {
			continue
		}
		group := result[name]
		if group == nil {
			group = &scenarioRuns{}
			result[name] = group
		}
		group.count++
		if group.latest == nil || !run.CreationTimestamp.Before(&group.latest.CreationTimestamp) {
			group.latest = run
		}
	}
	return result
}
