package fake

import (
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/testing"
)

// NewErrorReactor returns a new ReactorFunc returning an error
func NewErrorReactor(expectedErr error) testing.ReactionFunc {
	return func(action testing.Action) (handled bool, ret runtime.Object, err error) {
		return true, nil, expectedErr
	}
}
