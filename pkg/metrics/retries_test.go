package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func newPatchedRetriesMetric(t *testing.T) (*retriesMetric, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewPedanticRegistry()
	t.Cleanup(Testing{}.PatchRegistry(reg))
	examinee := &retriesMetric{}
	examinee.init()
	return examinee, reg
}

func gatherByName(t *testing.T, reg *prometheus.Registry) map[string]*dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	assert.NilError(t, err)
	result := map[string]*dto.MetricFamily{}
	for _, family := range families {
		result[family.GetName()] = family
	}
	return result
}

func Test_retriesMetric_Retried(t *testing.T) {
	// no parallel: patching global state

	// SETUP
	examinee, reg := newPatchedRetriesMetric(t)

	// EXERCISE
	examinee.Observe("location1", 4, 3*time.Second, nil)

	// VERIFY
	families := gatherByName(t, reg)
	assert.Assert(t, is.Len(families, 2))

	retries := families["steward_console_api_retries_total"].GetMetric()
	assert.Assert(t, is.Len(retries, 1))
	assert.Equal(t, "location", retries[0].Label[0].GetName())
	assert.Equal(t, "location1", retries[0].Label[0].GetValue())
	assert.Equal(t, float64(3), retries[0].Counter.GetValue())

	latency := families["steward_console_api_retry_latency_seconds"].GetMetric()
	assert.Assert(t, is.Len(latency, 1))
	assert.Equal(t, uint64(1), latency[0].Histogram.GetSampleCount())
	assert.Equal(t, float64(3), latency[0].Histogram.GetSampleSum())
	for _, bucket := range latency[0].Histogram.Bucket {
		if 3 <= bucket.GetUpperBound() {
			assert.Equal(t, uint64(1), bucket.GetCumulativeCount())
		} else {
			assert.Equal(t, uint64(0), bucket.GetCumulativeCount())
		}
	}
}

func Test_retriesMetric_FirstAttemptSucceeded(t *testing.T) {
	// no parallel: patching global state

	// SETUP
	examinee, reg := newPatchedRetriesMetric(t)

	// EXERCISE
	examinee.Observe("location1", 1, time.Millisecond, nil)

	// VERIFY
	assert.Assert(t, is.Len(gatherByName(t, reg), 0))
}

func Test_retriesMetric_Failed(t *testing.T) {
	// no parallel: patching global state

	// SETUP
	examinee, reg := newPatchedRetriesMetric(t)

	// EXERCISE
	examinee.Observe("location1", 1, time.Millisecond, fmt.Errorf("expected"))

	// VERIFY
	families := gatherByName(t, reg)
	assert.Assert(t, is.Len(families, 1))
	failures := families["steward_console_api_retry_failures_total"].GetMetric()
	assert.Equal(t, float64(1), failures[0].Counter.GetValue())
}
