package k8s

import (
	"context"
	"testing"

	appstudio "github.com/SAP/stewardci-console/pkg/apis/appstudio/v1beta1"
	"github.com/go-logr/logr"
	tekton "github.com/tektoncd/pipeline/pkg/apis/pipeline/v1"
	"gotest.tools/v3/assert"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/klog/v2"
	"k8s.io/klog/v2/ktesting"
)

func Test_NewPipelineRunLoggingContext(t *testing.T) {
	const loggerName = "fooLogger"
	const logText = "This is a test"

	expectedPipelineRunKVs := []interface{}{
		"pipelineRunObject", klog.ObjectRef{Name: "run1", Namespace: "run-ns1"},
		"pipelineRunUID", types.UID("123-abc"),
	}

	tests := []struct {
		name           string
		pipelineRun    *tekton.PipelineRun
		additionalKVs  []interface{}
		expectedLogKVs []interface{}
	}{
		{
			name:           "Logger with additional (contextual) key values data provided",
			additionalKVs:  []interface{}{"foo", 123},
			pipelineRun:    mockPipelineRun("run1", "run-ns1", "123-abc", ""),
			expectedLogKVs: append([]interface{}{"foo", 123}, expectedPipelineRunKVs...),
		},
		{
			name:           "Logger without additional key value (contextual) data",
			additionalKVs:  []interface{}{},
			pipelineRun:    mockPipelineRun("run1", "run-ns1", "123-abc", ""),
			expectedLogKVs: expectedPipelineRunKVs,
		},
		{
			name:           "PipelineRun with scenario label",
			additionalKVs:  []interface{}{},
			pipelineRun:    mockPipelineRun("run1", "run-ns1", "123-abc", "scenario1"),
			expectedLogKVs: append(append([]interface{}{}, expectedPipelineRunKVs...), "scenario", "scenario1"),
		},
		{
			name:           "Nil pipeline run object provided",
			additionalKVs:  []interface{}{"foo", 123},
			pipelineRun:    nil,
			expectedLogKVs: []interface{}{"foo", 123},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// SETUP
			logger := ktesting.NewLogger(
				t,
				ktesting.NewConfig(
					ktesting.BufferLogs(true),
				),
			)
			logger = klog.LoggerWithName(logger, loggerName)
			logger = klog.LoggerWithValues(logger, test.additionalKVs...)

			// EXERCISE
			ctx := NewPipelineRunLoggingContext(context.Background(), &logger, test.pipelineRun)
			klog.FromContext(ctx).Info(logText)

			// VERIFY
			underlyingLogger, ok := logger.GetSink().(ktesting.Underlier)
			if !ok {
				t.Fatalf("should have had ktesting LogSink, got %T", logger.GetSink())
			}
			logs := underlyingLogger.GetBuffer().Data()

			assert.Assert(t, logs[0].Prefix == loggerName)
			assert.Assert(t, logs[0].Message == logText)
			assert.DeepEqual(t, logs[0].WithKVList, test.expectedLogKVs)
		})
	}
}

func Test_NewPipelineRunLoggingContext_nil_logger(t *testing.T) {
	// SETUP
	pr := mockPipelineRun("run1", "run-ns1", "123-abc", "")

	// EXERCISE
	ctx := NewPipelineRunLoggingContext(context.Background(), nil, pr)

	// VERIFY
	assert.Assert(t, ctx != nil)

	logger, err := logr.FromContext(ctx)
	assert.NilError(t, err)

	func(t *testing.T, logger logr.Logger) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatal("Logging should not panic")
			}
		}()

		logger.Info("this is a test")
	}(t, logger)
}

func mockPipelineRun(runName, runNamespace string, runUID types.UID, scenario string) *tekton.PipelineRun {
	run := &tekton.PipelineRun{
		ObjectMeta: metav1.ObjectMeta{
			Name:      runName,
			Namespace: runNamespace,
			UID:       runUID,
		},
	}
	if scenario != "" {
		run.Labels = map[string]string{appstudio.LabelTestScenario: scenario}
	}
	return run
}
