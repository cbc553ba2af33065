package metrics

import (
	"testing"
	"time"

	"github.com/SAP/stewardci-console/pkg/metrics"
	"github.com/SAP/stewardci-console/pkg/runstatus"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"gotest.tools/v3/assert"
)

func Test_globalMetrics_areInitialized(t *testing.T) {
	t.Parallel()

	// VERIFY
	assert.Assert(t, ControllerHeartbeats.(*controllerHeartbeats).metric != nil)
	assert.Assert(t, Classifications.(*classifications).metric != nil)
	assert.Assert(t, NodesByStatus.(*nodesByStatus).metric != nil)
	assert.Assert(t, Applications.(*applications).metric != nil)
	assert.Assert(t, LatestRunAge.(*latestRunAge).metric != nil)
}

func gatherOne(t *testing.T, reg *prometheus.Registry) *dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	assert.NilError(t, err)
	assert.Equal(t, len(families), 1)
	return families[0]
}

func Test_classifications_Observe(t *testing.T) {
	// no parallel: patching global state

	// SETUP
	reg := metrics.Testing{}.NewRegistry(t)
	examinee := &classifications{}
	examinee.init()

	// EXERCISE
	examinee.Observe(runstatus.StatusSucceeded)
	examinee.Observe(runstatus.StatusSucceeded)
	examinee.Observe(runstatus.StatusUndefined)

	// VERIFY
	family := gatherOne(t, reg)
	assert.Equal(t, family.GetName(), "steward_console_testnodes_classifications_total")
	values := map[string]float64{}
	for _, m := range family.GetMetric() {
		values[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
	}
	assert.DeepEqual(t, map[string]float64{"Succeeded": 2, "None": 1}, values)
}

func Test_nodesByStatus_Set(t *testing.T) {
	// no parallel: patching global state

	// SETUP
	reg := metrics.Testing{}.NewRegistry(t)
	examinee := &nodesByStatus{}
	examinee.init()

	// EXERCISE
	examinee.Set(map[runstatus.RunStatus]int{runstatus.StatusFailed: 3})
	examinee.Set(map[runstatus.RunStatus]int{runstatus.StatusRunning: 1})

	// VERIFY
	family := gatherOne(t, reg)
	assert.Equal(t, len(family.GetMetric()), len(runstatus.Statuses()))
	for _, m := range family.GetMetric() {
		expected := 0.0
		if m.GetLabel()[0].GetValue() == string(runstatus.StatusRunning) {
			expected = 1
		}
		assert.Equal(t, m.GetGauge().GetValue(), expected, m.GetLabel()[0].GetValue())
	}
}

func Test_latestRunAge_Observe(t *testing.T) {
	// no parallel: patching global state

	// SETUP
	reg := metrics.Testing{}.NewRegistry(t)
	examinee := &latestRunAge{}
	examinee.init()
	now := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)

	// EXERCISE
	examinee.Observe(now.Add(-5*time.Minute), now)
	examinee.Observe(now.Add(time.Minute), now)
	examinee.Observe(time.Time{}, now)

	// VERIFY
	histogram := gatherOne(t, reg).GetMetric()[0].GetHistogram()
	assert.Equal(t, histogram.GetSampleCount(), uint64(1))
	assert.Equal(t, histogram.GetSampleSum(), float64(300))
}
