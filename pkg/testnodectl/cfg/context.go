package cfg

import (
	"context"

	serrors "github.com/SAP/stewardci-console/pkg/errors"
	"github.com/SAP/stewardci-console/pkg/k8s"
	"github.com/pkg/errors"
)

type contextKey struct{}

// FromContext returns the test node controller configuration if available
// in the context. Returns nil/nil if the context has none.
// Returns an error if the configuration cannot be loaded.
func FromContext(ctx context.Context) (*TestNodesConfigStruct, error) {
	if v, ok := ctx.Value(contextKey{}).(*configLoader); ok {
		return v.loadConfig(ctx)
	}
	return nil, nil
}

// NewContext returns a context that loads the configuration on first
// access, using the client factory carried by ctx (see
// k8s.WithClientFactory).
func NewContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, &configLoader{})
}

type configLoader struct {
	config *TestNodesConfigStruct
}

func (c *configLoader) loadConfig(ctx context.Context) (*TestNodesConfigStruct, error) {
	if c.config != nil {
		return c.config, nil
	}
	factory := k8s.GetClientFactory(ctx)
	if factory == nil {
		return nil, serrors.NonRecoverable(errors.New("cannot load configuration: no client factory in context"))
	}
	config, err := LoadConfig(ctx, factory)
	if err != nil {
		return nil, err
	}
	c.config = config
	return config, nil
}
