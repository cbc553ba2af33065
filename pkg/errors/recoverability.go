package errors

import (
	"errors"
)

type recoverabilityAnnotation struct {
	wrapped     error
	recoverable bool
}

var _ error = (*recoverabilityAnnotation)(nil)

func (a *recoverabilityAnnotation) Error() string {
	return a.wrapped.Error()
}

func (a *recoverabilityAnnotation) Unwrap() error {
	return a.wrapped
}

func (a *recoverabilityAnnotation) Is(target error) bool {
	return errors.Is(a.wrapped, target)
}

// Recoverable marks err as recoverable. A sync failing with a
// recoverable error is retried.
func Recoverable(err error) error {
	return RecoverableIf(err, true)
}

// NonRecoverable marks err as non-recoverable. A sync failing with a
// non-recoverable error is dropped from the queue.
func NonRecoverable(err error) error {
	return RecoverableIf(err, false)
}

// RecoverableIf marks err as recoverable or non-recoverable depending on
// cond. Returns nil for a nil error and err itself if it is already marked
// accordingly.
func RecoverableIf(err error, cond bool) error {
	if err == nil {
		return nil
	}
	if IsRecoverable(err) == cond {
		return err
	}
	return &recoverabilityAnnotation{
		wrapped:     err,
		recoverable: cond,
	}
}

// RecoverableIfTransient marks err as recoverable if it is, or wraps,
// a transient Kubernetes API error.
// Errors already marked explicitly are returned unchanged.
func RecoverableIfTransient(err error) error {
	if err == nil {
		return nil
	}
	if annotation := (*recoverabilityAnnotation)(nil); errors.As(err, &annotation) {
		return err
	}
	if isTransient(err) {
		return Recoverable(err)
	}
	if wrapped := WrapError(nil); errors.As(err, &wrapped) && wrapped.IsTransient() {
		return Recoverable(err)
	}
	return err
}

// IsRecoverable returns true if the given error has been marked as
// recoverable.
func IsRecoverable(err error) bool {
	if err == nil {
		return false
	}
	if annotation := (*recoverabilityAnnotation)(nil); errors.As(err, &annotation) {
		return annotation.recoverable
	}
	return false
}
