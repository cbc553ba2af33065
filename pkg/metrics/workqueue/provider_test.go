package workqueue

import (
	"testing"

	"github.com/SAP/stewardci-console/pkg/metrics"
	"gotest.tools/v3/assert"
)

func Test_prometheusMetricsProvider_ReusesMetricsPerName(t *testing.T) {
	// no parallel: patching global state

	// SETUP
	reg := metrics.Testing{}.NewRegistry(t)
	RegisterQueue("providerTestQueue", "provider_test")
	examinee := &prometheusMetricsProvider{}

	// EXERCISE
	depth1 := examinee.NewDepthMetric("providerTestQueue")
	depth2 := examinee.NewDepthMetric("providerTestQueue")
	depth1.Inc()
	examinee.NewAddsMetric("providerTestQueue").Inc()
	examinee.NewLatencyMetric("providerTestQueue").Observe(0.5)

	// VERIFY
	assert.Equal(t, depth1, depth2)
	families, err := reg.Gather()
	assert.NilError(t, err)
	names := []string{}
	for _, family := range families {
		names = append(names, family.GetName())
	}
	assert.DeepEqual(t, []string{
		"provider_test_adds_total",
		"provider_test_depth",
		"provider_test_latency_seconds",
	}, names)
}

func Test_queueRegistry_UnknownQueuePanics(t *testing.T) {
	t.Parallel()

	examinee := &queueRegistry{}

	defer func() {
		assert.Assert(t, recover() != nil)
	}()
	examinee.mustGetSubsystem("unknownQueue")
}

func Test_queueRegistry_DuplicateRegistrationPanics(t *testing.T) {
	t.Parallel()

	// SETUP
	examinee := &queueRegistry{}
	examinee.register("queue1", "subsystem1")

	// EXERCISE
	defer func() {
		// VERIFY
		assert.Assert(t, recover() != nil)
		assert.Equal(t, "subsystem1", examinee.mustGetSubsystem("queue1"))
	}()
	examinee.register("queue1", "subsystem2")
}
