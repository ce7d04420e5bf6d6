package config

const (
	envPort         = "PORT"
	envSeedFile     = "SEED_FILE"
	envCORSEnabled  = "CORS_ENABLED"
	envCORSOrigins  = "CORS_ORIGINS"
	envMaxBodyBytes = "MAX_BODY_BYTES"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envConfigFile   = "CONFIG_FILE"

	defaultPort         = "9000"
	defaultSeedFile     = "players.json"
	defaultCORSEnabled  = true
	defaultCORSOrigins  = "*"
	defaultMaxBodyBytes = 1 << 20
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"
	defaultMetricsOn    = true
	defaultMetricsPort  = "9090"
	defaultServiceName  = "football-players-service"
	defaultOtelInsecure = true
)

// Keys exposed for flag binding.
const (
	KeyPort     = envPort
	KeySeedFile = envSeedFile
	KeyLogLevel = envLogLevel
)
