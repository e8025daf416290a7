// Package config provides configuration loading and validation for the demo.
// Configuration is loaded with a layered system:
// built-in defaults -> base.yaml -> {profile}.yaml -> env vars.
// Both YAML files are optional, so the demo runs with no files present.
package config

import "time"

// Config holds all configuration for the demo.
type Config struct {
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Benchmark BenchmarkConfig `koanf:"benchmark"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// ServerConfig holds settings for the optional HTTP serve mode.
type ServerConfig struct {
	Enabled         bool          `koanf:"enabled"`
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	// RequestTimeout bounds each API request. Zero disables it.
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// CatalogConfig holds the product filter settings.
type CatalogConfig struct {
	// Threshold is the exclusive lower price bound for "expensive" products.
	Threshold float64 `koanf:"threshold"`
}

// BenchmarkConfig holds the loop vs pipeline comparison settings.
type BenchmarkConfig struct {
	Size     int `koanf:"size"`
	MaxValue int `koanf:"max_value"`
	// Seed of 0 seeds from the clock; any other value is reproducible.
	Seed     uint64 `koanf:"seed"`
	Parallel bool   `koanf:"parallel"`
	Workers  int    `koanf:"workers"`
}
