package runstatus

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func Test_DisplayFor_AllStatusesMapped(t *testing.T) {
	t.Parallel()

	for _, s := range Statuses() {
		_, ok := displays[s]
		assert.Assert(t, ok, "no display entry for status %q", s)
		assert.Assert(t, DisplayFor(s).Message != "")
	}
}

func Test_DisplayFor(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		status          RunStatus
		expectedMessage string
		expectedColor   ColorToken
	}{
		{StatusSucceeded, "Succeeded", ColorSuccess},
		{StatusFailed, "Failed", ColorFailure},
		{StatusFailedToStart, "PipelineRun failed to start", ColorFailure},
		{StatusRunning, "Running", ColorRunning},
		{StatusSkipped, "Skipped", ColorSkipped},
		{StatusCancelled, "Cancelled", ColorCancelled},
		{StatusIdle, "Pending", ColorPending},
		{StatusPending, "Pending", ColorPending},
		{StatusPipelineNotStarted, "PipelineRun not started yet", ColorPending},
		{StatusUndefined, "PipelineRun not started yet", ColorPending},
		{StatusInProgress, "Running", ColorRunning},
		{RunStatus("Unknown"), "PipelineRun not started yet", ColorPending},
	} {
		t.Run(string(tc.status), func(t *testing.T) {
			tc := tc
			t.Parallel()

			// EXERCISE
			result := DisplayFor(tc.status)

			// VERIFY
			assert.Equal(t, tc.expectedMessage, result.Message)
			assert.Equal(t, tc.expectedColor, result.Color)
		})
	}
}

func Test_DisplayTable(t *testing.T) {
	t.Parallel()

	// EXERCISE
	table := DisplayTable()

	// VERIFY
	assert.Assert(t, is.Len(table, len(Statuses())))
	for i, s := range Statuses() {
		assert.Equal(t, s, table[i].Status)
		assert.Equal(t, DisplayFor(s), table[i].Display)
	}
}

func Test_Statuses_ReturnsCopy(t *testing.T) {
	t.Parallel()

	// SETUP
	statuses := Statuses()

	// EXERCISE
	statuses[0] = StatusUndefined

	// VERIFY
	assert.Equal(t, StatusSucceeded, Statuses()[0])
}

func Test_IsDefined(t *testing.T) {
	t.Parallel()

	for _, s := range Statuses() {
		assert.Assert(t, s.IsDefined())
	}
	assert.Assert(t, !StatusUndefined.IsDefined())
	assert.Assert(t, !RunStatus("foo").IsDefined())
}

func Test_FilterValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-", FilterValue(StatusUndefined))
	assert.Equal(t, "Failed", FilterValue(StatusFailed))
}
