package cfg

import (
	"context"
	"time"

	appstudio "github.com/SAP/stewardci-console/pkg/apis/appstudio/v1beta1"
	serrors "github.com/SAP/stewardci-console/pkg/errors"
	"github.com/SAP/stewardci-console/pkg/k8s"
	"github.com/SAP/stewardci-console/pkg/testnodectl/log/custom"
	"github.com/SAP/stewardci-console/pkg/utils"
	"github.com/pkg/errors"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
	"knative.dev/pkg/system"
)

const (
	configMapName = "steward-console-testnodes"

	configKeyRunLabelSelector     = "runLabelSelector"
	configKeyHeartbeatInterval    = "heartbeatInterval"
	configKeyCustomLoggingDetails = "customLoggingDetails"
)

// DefaultRunLabelSelector selects the PipelineRuns of integration tests.
var DefaultRunLabelSelector = labels.SelectorFromSet(labels.Set{
	appstudio.LabelPipelineType: appstudio.PipelineTypeTest,
})

// TestNodesConfigStruct holds the configuration of the test node controller.
type TestNodesConfigStruct struct {
	// RunLabelSelector restricts the PipelineRuns considered for test nodes.
	// Defaults to DefaultRunLabelSelector.
	RunLabelSelector labels.Selector

	// HeartbeatInterval overrides the heartbeat interval given on the
	// command line. Nil if not configured.
	HeartbeatInterval *metav1.Duration

	// CustomLoggingDetails adds configured details of PipelineRuns to log
	// entries. Nil if not configured.
	CustomLoggingDetails custom.LoggingDetailsProvider
}

// LoadConfig loads the test node controller configuration from the
// ConfigMap in the system namespace. A missing ConfigMap yields the default
// configuration.
func LoadConfig(ctx context.Context, clientFactory k8s.ClientFactory) (*TestNodesConfigStruct, error) {
	dest := &TestNodesConfigStruct{
		RunLabelSelector: DefaultRunLabelSelector,
	}

	wrapError := func(cause error) error {
		return errors.Wrapf(cause,
			"invalid configuration: ConfigMap %q in namespace %q",
			configMapName,
			system.Namespace(),
		)
	}

	configMap, err := clientFactory.CoreV1().ConfigMaps(system.Namespace()).Get(ctx, configMapName, metav1.GetOptions{})
	if err != nil {
		if k8serrors.IsNotFound(err) {
			return dest, nil
		}
		return nil, serrors.Recoverable(wrapError(err))
	}

	if err := processConfig(configMap.Data, dest); err != nil {
		return nil, serrors.NonRecoverable(wrapError(err))
	}
	return dest, nil
}

func processConfig(configData map[string]string, dest *TestNodesConfigStruct) error {
	wrapParseError := func(cause error, key, strVal string) error {
		return errors.Wrapf(cause,
			"key %q: cannot parse value %q",
			key, strVal,
		)
	}

	if strVal := configData[configKeyRunLabelSelector]; strVal != "" {
		selector, err := labels.Parse(strVal)
		if err != nil {
			return wrapParseError(err, configKeyRunLabelSelector, strVal)
		}
		dest.RunLabelSelector = selector
	}

	if strVal := configData[configKeyHeartbeatInterval]; strVal != "" {
		d, err := time.ParseDuration(strVal)
		if err != nil {
			return wrapParseError(err, configKeyHeartbeatInterval, strVal)
		}
		if !utils.IsZeroDuration(&metav1.Duration{Duration: d}) {
			dest.HeartbeatInterval = &metav1.Duration{Duration: d}
		}
	}

	if strVal := configData[configKeyCustomLoggingDetails]; strVal != "" {
		provider, err := custom.GetLoggingDetailsProvider(strVal)
		if err != nil {
			return wrapParseError(err, configKeyCustomLoggingDetails, strVal)
		}
		dest.CustomLoggingDetails = provider
	}

	return nil
}
