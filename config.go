package classy

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces the SDK's environment variables: CLASSY_API_URL and
// CLASSY_API_TOKEN. envconfig also honors the bare tag names API_URL and
// API_TOKEN when the prefixed variables are absent.
const envPrefix = "classy"

// envSettings is the environment fallback for construction-time
// configuration. Explicit options always take precedence; env values fill
// only the fields left unset.
type envSettings struct {
	APIURL   string `envconfig:"API_URL"`
	APIToken string `envconfig:"API_TOKEN"`
}

func resolveEnv() (envSettings, error) {
	var s envSettings
	if err := envconfig.Process(envPrefix, &s); err != nil {
		return envSettings{}, fmt.Errorf("resolve environment configuration: %w", err)
	}
	return s, nil
}
