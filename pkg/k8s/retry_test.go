package k8s

import (
	"fmt"
	"testing"

	serrors "github.com/SAP/stewardci-console/pkg/errors"
	"gotest.tools/v3/assert"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/util/wait"
)

var testBackoff = wait.Backoff{Steps: 3}

func Test_RetryOnTransientError_RetriesTransient(t *testing.T) {
	t.Parallel()

	// SETUP
	calls := 0
	fn := func() error {
		calls++
		if calls < 3 {
			return serrors.Errorf(k8serrors.NewTooManyRequests("busy", 0), "failed")
		}
		return nil
	}

	// EXERCISE
	err := RetryOnTransientError(testBackoff, fn)

	// VERIFY
	assert.NilError(t, err)
	assert.Equal(t, 3, calls)
}

func Test_RetryOnTransientError_StopsOnPermanent(t *testing.T) {
	t.Parallel()

	// SETUP
	calls := 0
	expectedErr := fmt.Errorf("permanent")
	fn := func() error {
		calls++
		return expectedErr
	}

	// EXERCISE
	err := RetryOnTransientError(testBackoff, fn)

	// VERIFY
	assert.Equal(t, expectedErr, err)
	assert.Equal(t, 1, calls)
}

func Test_RetryOnTransientError_GivesUp(t *testing.T) {
	t.Parallel()

	// SETUP
	calls := 0
	fn := func() error {
		calls++
		return k8serrors.NewServiceUnavailable("down")
	}

	// EXERCISE
	err := RetryOnTransientError(testBackoff, fn)

	// VERIFY
	assert.Assert(t, k8serrors.IsServiceUnavailable(err))
	assert.Equal(t, 3, calls)
}
