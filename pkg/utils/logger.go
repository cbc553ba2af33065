package utils

import (
	"context"

	"github.com/go-logr/logr"
	klog "k8s.io/klog/v2"
)

// ContextWithLogValues returns a context carrying a logger extended by the
// key-value pairs kvs, together with that logger.
// If logger is nil, the logger of ctx is extended. The given logger is
// never modified.
func ContextWithLogValues(ctx context.Context, logger *logr.Logger, kvs ...interface{}) (context.Context, logr.Logger) {
	if ctx == nil {
		ctx = context.Background()
	}
	var result logr.Logger
	if logger != nil {
		result = *logger
	} else {
		result = klog.FromContext(ctx)
	}
	if len(kvs) > 0 {
		result = klog.LoggerWithValues(result, kvs...)
	}
	return klog.NewContext(ctx, result), result
}

// ContextWithNamedLogger is like ContextWithLogValues for the logger of ctx
// but also appends name to the logger name, e.g. "base" becomes
// "base/name".
func ContextWithNamedLogger(ctx context.Context, name string, kvs ...interface{}) (context.Context, logr.Logger) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := klog.LoggerWithName(klog.FromContext(ctx), name)
	return ContextWithLogValues(ctx, &logger, kvs...)
}
