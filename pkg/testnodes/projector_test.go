package testnodes

import (
	"testing"
	"time"

	appstudio "github.com/SAP/stewardci-console/pkg/apis/appstudio/v1beta1"
	"github.com/SAP/stewardci-console/pkg/runstatus"
	"github.com/davecgh/go-spew/spew"
	"github.com/mohae/deepcopy"
	tekton "github.com/tektoncd/pipeline/pkg/apis/pipeline/v1"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
	corev1 "k8s.io/api/core/v1"
)

func Test_Project_NoScenarios(t *testing.T) {
	t.Parallel()

	// SETUP
	runs := []*tekton.PipelineRun{
		newRun("run1", "s1", 0, corev1.ConditionTrue, ""),
	}

	// EXERCISE
	result := Project(nil, runs)

	// VERIFY
	assert.Assert(t, result != nil)
	assert.Assert(t, is.Len(result, 0))
}

func Test_Project_NoRuns(t *testing.T) {
	t.Parallel()

	// SETUP
	scenarios := []appstudio.IntegrationTestScenario{newScenario("s1")}

	// EXERCISE
	result := Project(scenarios, nil)

	// VERIFY
	assert.DeepEqual(t, []TestNode{
		{
			ID:    "s1",
			Label: "s1",
			Data: NodeData{
				Status:      runstatus.StatusPipelineNotStarted,
				Application: "app1",
				Scenario:    "s1",
			},
		},
	}, result)
}

func Test_Project_LatestRunWins(t *testing.T) {
	t.Parallel()

	// SETUP
	scenarios := []appstudio.IntegrationTestScenario{newScenario("s1")}
	older := newRun("older", "s1", 0, corev1.ConditionTrue, "")
	newer := newRun("newer", "s1", time.Minute, corev1.ConditionFalse, "")

	for _, runs := range [][]*tekton.PipelineRun{
		{older, newer},
		{newer, older},
	} {
		// EXERCISE
		result := Project(scenarios, runs)

		// VERIFY
		assert.Assert(t, is.Len(result, 1))
		assert.Equal(t, runstatus.StatusFailed, result[0].Data.Status, spew.Sdump(runs))
		assert.Equal(t, "newer", result[0].Data.LatestRun)
		assert.Equal(t, 2, result[0].Data.RunCount)
	}
}

func Test_Project_SameCreationTime_LastSeenWins(t *testing.T) {
	t.Parallel()

	// SETUP
	scenarios := []appstudio.IntegrationTestScenario{newScenario("s1")}
	first := newRun("first", "s1", 0, corev1.ConditionTrue, "")
	second := newRun("second", "s1", 0, corev1.ConditionFalse, runstatus.ReasonPipelineRunCancelled)

	// EXERCISE
	result := Project(scenarios, []*tekton.PipelineRun{first, second})

	// VERIFY
	assert.Equal(t, runstatus.StatusCancelled, result[0].Data.Status)
	assert.Equal(t, "second", result[0].Data.LatestRun)
}

func Test_Project_PreservesScenarioOrder(t *testing.T) {
	t.Parallel()

	// SETUP
	scenarios := []appstudio.IntegrationTestScenario{
		newScenario("zeta"),
		newScenario("alpha"),
		newScenario("mid"),
	}
	runs := []*tekton.PipelineRun{
		newRun("r-mid", "mid", 2*time.Minute, corev1.ConditionUnknown, ""),
		newRun("r-alpha", "alpha", time.Minute, corev1.ConditionFalse, runstatus.ReasonConditionCheckFailed),
		newRun("r-zeta", "zeta", 0, corev1.ConditionTrue, ""),
	}

	// EXERCISE
	result := Project(scenarios, runs)

	// VERIFY
	assert.Assert(t, is.Len(result, 3))
	assert.Equal(t, "zeta", result[0].Label)
	assert.Equal(t, runstatus.StatusSucceeded, result[0].Data.Status)
	assert.Equal(t, "alpha", result[1].Label)
	assert.Equal(t, runstatus.StatusSkipped, result[1].Data.Status)
	assert.Equal(t, "mid", result[2].Label)
	assert.Equal(t, runstatus.StatusRunning, result[2].Data.Status)
}

func Test_Project_IgnoresUnrelatedRuns(t *testing.T) {
	t.Parallel()

	// SETUP
	scenarios := []appstudio.IntegrationTestScenario{newScenario("s1")}
	runs := []*tekton.PipelineRun{
		nil,
		newRun("unlabelled", "", time.Hour, corev1.ConditionFalse, ""),
		newRun("other", "s2", time.Hour, corev1.ConditionFalse, ""),
		newRun("mine", "s1", 0, corev1.ConditionTrue, ""),
	}

	// EXERCISE
	result := Project(scenarios, runs)

	// VERIFY
	assert.Equal(t, runstatus.StatusSucceeded, result[0].Data.Status)
	assert.Equal(t, 1, result[0].Data.RunCount)
}

func Test_Project_RunWithoutConditions(t *testing.T) {
	t.Parallel()

	// SETUP
	scenarios := []appstudio.IntegrationTestScenario{newScenario("s1")}
	run := newRun("run1", "s1", 0, corev1.ConditionTrue, "")
	run.Status.Conditions = nil

	// EXERCISE
	result := Project(scenarios, []*tekton.PipelineRun{run})

	// VERIFY
	assert.Equal(t, runstatus.StatusUndefined, result[0].Data.Status)
	assert.Equal(t, "run1", result[0].Data.LatestRun)
}

func Test_Project_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	// SETUP
	scenarios := []appstudio.IntegrationTestScenario{newScenario("s1"), newScenario("s2")}
	runs := []*tekton.PipelineRun{
		newRun("run2", "s1", time.Minute, corev1.ConditionFalse, ""),
		newRun("run1", "s1", 0, corev1.ConditionTrue, ""),
	}
	origScenarios := deepcopy.Copy(scenarios).([]appstudio.IntegrationTestScenario)
	origRuns := deepcopy.Copy(runs).([]*tekton.PipelineRun)

	// EXERCISE
	first := Project(scenarios, runs)
	second := Project(scenarios, runs)

	// VERIFY
	assert.DeepEqual(t, origScenarios, scenarios)
	assert.DeepEqual(t, origRuns, runs)
	assert.DeepEqual(t, first, second)
}
