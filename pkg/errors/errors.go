package errors

import (
	"fmt"

	k8serrors "k8s.io/apimachinery/pkg/api/errors"
)

// WrapError is a wrapped k8s error
type WrapError interface {
	IsNotFound() bool
	IsTransient() bool
	Error() string
	Unwrap() error
}

type wrapError struct {
	msg string
	err error
}

// Errorf returns new error with message defined by format and args
// If error is not nil, err.Error() is attached to the message
func Errorf(err error, format string, args ...interface{}) WrapError {
	message := fmt.Sprintf(format, args...)
	if err != nil {
		message = fmt.Sprintf("%s: %s", message, err.Error())
	}
	return &wrapError{
		msg: message,
		err: err,
	}
}

// IsNotFound returns true if error wraps an NotFound error
func (e *wrapError) IsNotFound() bool {
	return k8serrors.IsNotFound(e.err)
}

// IsTransient returns true if the wrapped error is a Kubernetes API error
// that may disappear when the request is retried.
func (e *wrapError) IsTransient() bool {
	return isTransient(e.err)
}

// Error returns the error message
func (e *wrapError) Error() string {
	return e.msg
}

// Unwrap returns the wrapped error
func (e *wrapError) Unwrap() error {
	return e.err
}

func isTransient(err error) bool {
	if err == nil {
		return false
	}
	return k8serrors.IsServerTimeout(err) ||
		k8serrors.IsTimeout(err) ||
		k8serrors.IsTooManyRequests(err) ||
		k8serrors.IsServiceUnavailable(err) ||
		k8serrors.IsInternalError(err) ||
		k8serrors.IsUnexpectedServerError(err)
}
