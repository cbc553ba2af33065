package k8s

import (
	"context"
)

type clientFactoryKey struct{}

// WithClientFactory returns a copy of ctx carrying factory.
// A nil factory leaves ctx unchanged.
func WithClientFactory(ctx context.Context, factory ClientFactory) context.Context {
	if factory == nil {
		return ctx
	}
	return context.WithValue(ctx, clientFactoryKey{}, factory)
}

// GetClientFactory returns the ClientFactory carried by ctx or nil.
func GetClientFactory(ctx context.Context) ClientFactory {
	if ctx == nil {
		return nil
	}
	factory, _ := ctx.Value(clientFactoryKey{}).(ClientFactory)
	return factory
}
