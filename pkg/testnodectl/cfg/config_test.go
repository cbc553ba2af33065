package cfg

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	serrors "github.com/SAP/stewardci-console/pkg/errors"
	"github.com/SAP/stewardci-console/pkg/k8s"
	"github.com/SAP/stewardci-console/pkg/k8s/fake"
	"github.com/lithammer/dedent"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"knative.dev/pkg/system"
)

const testSystemNamespaceName = "steward-console-testing"

func init() {
	os.Setenv(system.NamespaceEnvKey, testSystemNamespaceName)
}

func newConfigMap(data map[string]string) *corev1.ConfigMap {
	return &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{
			Name:      configMapName,
			Namespace: testSystemNamespaceName,
		},
		Data: data,
	}
}

func Test_LoadConfig_NoConfigMap(t *testing.T) {
	t.Parallel()

	// SETUP
	cf := fake.NewClientFactory()

	// EXERCISE
	resultConfig, resultErr := LoadConfig(context.Background(), cf)

	// VERIFY
	assert.NilError(t, resultErr)
	assert.Equal(t, "pipelines.appstudio.openshift.io/type=test", resultConfig.RunLabelSelector.String())
	assert.Assert(t, resultConfig.HeartbeatInterval == nil)
	assert.Assert(t, resultConfig.CustomLoggingDetails == nil)
}

func Test_LoadConfig_EmptyConfigMap(t *testing.T) {
	t.Parallel()

	// SETUP
	cf := fake.NewClientFactory(newConfigMap(nil))

	// EXERCISE
	resultConfig, resultErr := LoadConfig(context.Background(), cf)

	// VERIFY
	assert.NilError(t, resultErr)
	assert.Equal(t, DefaultRunLabelSelector.String(), resultConfig.RunLabelSelector.String())
}

func Test_LoadConfig_CompleteConfig(t *testing.T) {
	t.Parallel()

	// SETUP
	cf := fake.NewClientFactory(newConfigMap(map[string]string{
		configKeyRunLabelSelector:  "pipelines.appstudio.openshift.io/type in (test,e2e)",
		configKeyHeartbeatInterval: "2m",
		configKeyCustomLoggingDetails: dedent.Dedent(`
			- logKey: team
			  kind: label
			  spec:
			    key: example.com/team
		`),
		"someKeyThatShouldBeIgnored": "34957349",
	}))

	// EXERCISE
	resultConfig, resultErr := LoadConfig(context.Background(), cf)

	// VERIFY
	assert.NilError(t, resultErr)
	assert.Equal(t, "pipelines.appstudio.openshift.io/type in (e2e,test)", resultConfig.RunLabelSelector.String())
	assert.DeepEqual(t, &metav1.Duration{Duration: 2 * time.Minute}, resultConfig.HeartbeatInterval)
	assert.Assert(t, resultConfig.CustomLoggingDetails != nil)
	run := fake.TestPipelineRun("run1", "ns1", "app1", "s1", time.Now(), corev1.ConditionTrue, "")
	run.Labels["example.com/team"] = "team1"
	assert.DeepEqual(t, []any{"team", "team1"}, resultConfig.CustomLoggingDetails(run))
}

func Test_LoadConfig_ZeroHeartbeatIntervalIgnored(t *testing.T) {
	t.Parallel()

	// SETUP
	cf := fake.NewClientFactory(newConfigMap(map[string]string{
		configKeyHeartbeatInterval: "0s",
	}))

	// EXERCISE
	resultConfig, resultErr := LoadConfig(context.Background(), cf)

	// VERIFY
	assert.NilError(t, resultErr)
	assert.Assert(t, resultConfig.HeartbeatInterval == nil)
}

func Test_LoadConfig_InvalidValues(t *testing.T) {
	for _, tc := range []struct {
		name          string
		data          map[string]string
		expectedError string
	}{
		{
			name:          "selector",
			data:          map[string]string{configKeyRunLabelSelector: "a in (b"},
			expectedError: `invalid configuration: ConfigMap "steward-console-testnodes" in namespace "steward-console-testing": key "runLabelSelector": cannot parse value "a in (b"`,
		},
		{
			name:          "heartbeatInterval",
			data:          map[string]string{configKeyHeartbeatInterval: "often"},
			expectedError: `invalid configuration: ConfigMap "steward-console-testnodes" in namespace "steward-console-testing": key "heartbeatInterval": cannot parse value "often"`,
		},
		{
			name:          "customLoggingDetails",
			data:          map[string]string{configKeyCustomLoggingDetails: "- logKey: a\n  kind: label\n"},
			expectedError: `invalid configuration: ConfigMap "steward-console-testnodes" in namespace "steward-console-testing": key "customLoggingDetails"`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tc := tc
			t.Parallel()

			// SETUP
			cf := fake.NewClientFactory(newConfigMap(tc.data))

			// EXERCISE
			resultConfig, resultErr := LoadConfig(context.Background(), cf)

			// VERIFY
			assert.Assert(t, resultConfig == nil)
			assert.ErrorContains(t, resultErr, tc.expectedError)
			assert.Assert(t, !serrors.IsRecoverable(resultErr))
		})
	}
}

func Test_LoadConfig_ErrorOnGet(t *testing.T) {
	t.Parallel()

	// SETUP
	cf := fake.NewClientFactory()
	cf.KubernetesClientset().PrependReactor("get", "configmaps", fake.NewErrorReactor(fmt.Errorf("some error")))

	// EXERCISE
	resultConfig, resultErr := LoadConfig(context.Background(), cf)

	// VERIFY
	assert.Assert(t, resultConfig == nil)
	assert.Assert(t, serrors.IsRecoverable(resultErr))
	assert.Error(t, resultErr, `invalid configuration: ConfigMap "steward-console-testnodes" in namespace "steward-console-testing": some error`)
}

func Test_FromContext(t *testing.T) {
	t.Parallel()

	// SETUP
	cf := fake.NewClientFactory(newConfigMap(map[string]string{
		configKeyHeartbeatInterval: "1m",
	}))
	ctx := NewContext(k8s.WithClientFactory(context.Background(), cf))

	// EXERCISE
	none, noneErr := FromContext(context.Background())
	loaded, loadedErr := FromContext(ctx)
	again, againErr := FromContext(ctx)

	// VERIFY
	assert.NilError(t, noneErr)
	assert.Assert(t, none == nil)
	assert.NilError(t, loadedErr)
	assert.Assert(t, is.Equal(time.Minute, loaded.HeartbeatInterval.Duration))
	assert.NilError(t, againErr)
	assert.Assert(t, again == loaded)
}

func Test_FromContext_NoClientFactory(t *testing.T) {
	t.Parallel()

	// EXERCISE
	result, err := FromContext(NewContext(context.Background()))

	// VERIFY
	assert.Assert(t, result == nil)
	assert.ErrorContains(t, err, "no client factory in context")
	assert.Assert(t, !serrors.IsRecoverable(err))
}
