package custom

import (
	"fmt"

	yaml "gopkg.in/yaml.v3"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// GetLoggingDetailsProvider parses the given YAML configuration and returns
// the corresponding LoggingDetailsProvider.
// Returns nil if the configuration is empty or contains only unsupported
// entries.
func GetLoggingDetailsProvider(configYAMLString string) (LoggingDetailsProvider, error) {
	detailConfigs := []loggingDetailConfig{}
	if configYAMLString != "" {
		if err := yaml.Unmarshal([]byte(configYAMLString), &detailConfigs); err != nil {
			return nil, err
		}
	}

	providers := []LoggingDetailsProvider{}
	for _, detailConfig := range detailConfigs {
		getMap, ok := metadataMaps[detailConfig.Kind]
		if !ok {
			continue
		}
		provider, err := newMetadataProvider(detailConfig.LogKey, detailConfig.Spec, getMap)
		if err != nil {
			return nil, err
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, nil
	}
	return mergeProviders(providers...), nil
}

func newMetadataProvider(logKey string, spec providerSpec, getMap func(metav1.Object) map[string]string) (LoggingDetailsProvider, error) {
	if logKey == "" || spec.Key == "" {
		return nil, fmt.Errorf("logKey and spec.key must not be empty")
	}
	return func(obj metav1.Object) []any {
		// a missing key yields an empty value to keep the set of log keys stable
		return []any{logKey, getMap(obj)[spec.Key]}
	}, nil
}

// mergeProviders creates a provider returning the concatenated results of
// the given providers in the given order.
func mergeProviders(providers ...LoggingDetailsProvider) LoggingDetailsProvider {
	return func(obj metav1.Object) []any {
		result := []any{}
		for _, provider := range providers {
			result = append(result, provider(obj)...)
		}
		return result
	}
}
