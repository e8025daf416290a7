package config

const (
	defaultServerPort = 8080

	defaultCatalogThreshold = 100.0

	defaultBenchmarkSize     = 10000
	defaultBenchmarkMaxValue = 1000
	defaultBenchmarkWorkers  = 4
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"log.level":  "info",
		"log.format": "text",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "transform-demo",

		"server.enabled":          false,
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "15s",
		"server.request_timeout":  "30s",

		"catalog.threshold": defaultCatalogThreshold,

		"benchmark.size":      defaultBenchmarkSize,
		"benchmark.max_value": defaultBenchmarkMaxValue,
		"benchmark.seed":      0,
		"benchmark.parallel":  false,
		"benchmark.workers":   defaultBenchmarkWorkers,
	}
}
