package k8s

import (
	"context"

	appstudio "github.com/SAP/stewardci-console/pkg/apis/appstudio/v1beta1"
	"github.com/SAP/stewardci-console/pkg/utils"
	"github.com/go-logr/logr"
	tekton "github.com/tektoncd/pipeline/pkg/apis/pipeline/v1"
	klog "k8s.io/klog/v2"
)

// NewPipelineRunLoggingContext returns a context with a logger that carries
// the identity of the given PipelineRun and, if labelled, its test scenario.
// If logger is nil, the logger of ctx is extended.
func NewPipelineRunLoggingContext(ctx context.Context, logger *logr.Logger, run *tekton.PipelineRun) context.Context {
	if run == nil {
		ctx, _ = utils.ContextWithLogValues(ctx, logger)
		return ctx
	}
	kvs := []interface{}{
		"pipelineRunObject", klog.KObj(run),
		"pipelineRunUID", run.GetUID(),
	}
	if scenario, ok := run.GetLabels()[appstudio.LabelTestScenario]; ok {
		kvs = append(kvs, "scenario", scenario)
	}
	ctx, _ = utils.ContextWithLogValues(ctx, logger, kvs...)
	return ctx
}
