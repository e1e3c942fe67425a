package config

import "time"

const (
	envPort            = "PORT"
	envShutdownTimeout = "SHUTDOWN_TIMEOUT"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	// EnvFile names the variable pointing at an optional dotenv file.
	EnvFile = "ENV_FILE"

	defaultPort            = "4000"
	defaultShutdownTimeout = 10 * Duration(time.Second)
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
	defaultMetricsPort     = "9090"
	defaultServiceName     = "live-scoreboard"
	defaultEnvFile         = ".env"
)
