package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

// Testing provides utility functions for testing with this package.
// Do not use it for non-testing purposes!
type Testing struct{}

// PatchRegistry replaces the internal Prometheus metrics registry with a
// replacement and returns a function that reverts the patch.
// Nested replacements must be reverted in opposite order.
func (Testing) PatchRegistry(replacement *prometheus.Registry) func() {
	original := registry
	registry = replacement
	return func() {
		if registry != replacement {
			panic("cannot revert registry patch: registry has been replaced again")
		}
		registry = original
	}
}

// NewRegistry returns a new pedantic registry that replaces the internal
// registry until the test t has finished.
func (m Testing) NewRegistry(t testing.TB) *prometheus.Registry {
	t.Helper()
	reg := prometheus.NewPedanticRegistry()
	t.Cleanup(m.PatchRegistry(reg))
	return reg
}
