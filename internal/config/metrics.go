package config

import "github.com/spf13/viper"

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics(v *viper.Viper) MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(v, envMetricsOn, defaultMetricsOn),
		Port:         envOrDefault(v, envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: envOrDefault(v, envOtelEndpoint, ""),
		ServiceName:  envOrDefault(v, envOtelService, defaultServiceName),
		OtlpInsecure: boolEnvOrDefault(v, envOtelInsecure, defaultOtelInsecure),
	}
}
