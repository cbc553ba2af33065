package log

import (
	"context"

	"github.com/SAP/stewardci-console/pkg/k8s"
	"github.com/SAP/stewardci-console/pkg/testnodectl/cfg"
	"github.com/SAP/stewardci-console/pkg/utils"
	"github.com/go-logr/logr"
	tekton "github.com/tektoncd/pipeline/pkg/apis/pipeline/v1"
	klog "k8s.io/klog/v2"
)

// ExtendContextLoggerWithApplication returns a context whose logger carries
// the given application, together with that logger.
func ExtendContextLoggerWithApplication(ctx context.Context, namespace, application string) (context.Context, logr.Logger) {
	return utils.ContextWithLogValues(ctx, nil,
		"namespace", namespace,
		"application", application,
	)
}

// ExtendContextLoggerWithPipelineRun returns a context whose logger carries
// details of the given PipelineRun, together with that logger.
// Custom logging details are added if configured in the context.
// The given run must not be nil.
func ExtendContextLoggerWithPipelineRun(ctx context.Context, run *tekton.PipelineRun) (context.Context, logr.Logger) {
	ctx = k8s.NewPipelineRunLoggingContext(ctx, nil, run)
	config, err := cfg.FromContext(ctx)
	if err == nil && config != nil && config.CustomLoggingDetails != nil {
		return utils.ContextWithLogValues(ctx, nil, config.CustomLoggingDetails(run)...)
	}
	return ctx, klog.FromContext(ctx)
}
