package config

const (
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// The balldontlie catalog is the only real provider; fixture keeps
	// local runs working without an API key.
	defaultProvider    = "balldontlie"
	defaultMetricsPort = "9090"
)
