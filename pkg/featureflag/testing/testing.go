/*
Package testing provides utilities for tests that depend on
feature flags.

Feature flags are global. Tests changing them must restore the previous
state when finished and must not run in parallel with tests reading the
changed flags.
*/
package testing

import (
	gotesting "testing"

	"github.com/SAP/stewardci-console/pkg/featureflag"
)

/*
WithFeatureFlag sets the given feature flag to the given state and
returns a function reverting to the previous state.

Example:

	defer testing.WithFeatureFlag(featureflag.ExposeTaskRunStatus, true)()
*/
func WithFeatureFlag(ff *featureflag.FeatureFlag, enabled bool) func() {
	orig := ff.Enabled()
	set(ff, enabled)
	return func() {
		set(ff, orig)
	}
}

// SetForTest sets the given feature flag to the given state until t and
// all its subtests have finished.
func SetForTest(t gotesting.TB, ff *featureflag.FeatureFlag, enabled bool) {
	t.Helper()
	t.Cleanup(WithFeatureFlag(ff, enabled))
}

func set(ff *featureflag.FeatureFlag, enabled bool) {
	if enabled {
		featureflag.ParseFlags(ff.Key)
	} else {
		featureflag.ParseFlags("-" + ff.Key)
	}
}
