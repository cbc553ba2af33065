package k8s

import (
	"time"

	serrors "github.com/SAP/stewardci-console/pkg/errors"
	"github.com/SAP/stewardci-console/pkg/metrics"
	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/client-go/util/retry"
)

// DefaultBackoff is the backoff used for API requests retried on transient
// errors.
var DefaultBackoff = wait.Backoff{
	Steps:    4,
	Duration: 100 * time.Millisecond,
	Factor:   2.0,
	Jitter:   0.1,
}

// RetryOnTransientError calls fn until it returns nil, a non-transient error
// or the backoff is exhausted. The number of retries is recorded with the
// caller's code location.
func RetryOnTransientError(backoff wait.Backoff, fn func() error) error {
	codeLocation := metrics.CodeLocation(1)
	start := time.Now()
	attempts := uint64(0)
	err := retry.OnError(backoff, serrors.IsRecoverable, func() error {
		attempts++
		return serrors.RecoverableIfTransient(fn())
	})
	metrics.Retries.Observe(codeLocation, attempts, time.Since(start), err)
	return err
}
