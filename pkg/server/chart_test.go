package server

import (
	"testing"

	"github.com/SAP/stewardci-console/pkg/runstatus"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func Test_statusPieData(t *testing.T) {
	t.Parallel()

	// SETUP
	summary := map[runstatus.RunStatus]int{
		runstatus.StatusUndefined: 1,
		runstatus.StatusRunning:   2,
		runstatus.StatusSucceeded: 3,
		runstatus.StatusIdle:      0,
	}

	// EXERCISE
	result := statusPieData(summary)

	// VERIFY
	assert.Assert(t, is.Len(result, 3))
	assert.Equal(t, "Succeeded", result[0].Name)
	assert.Equal(t, 3, result[0].Value)
	assert.Equal(t, runstatus.ColorSuccess.Value, result[0].ItemStyle.Color)
	assert.Equal(t, "Running", result[1].Name)
	assert.Equal(t, runstatus.ColorRunning.Value, result[1].ItemStyle.Color)
	assert.Equal(t, "-", result[2].Name)
	assert.Equal(t, runstatus.ColorPending.Value, result[2].ItemStyle.Color)
}
