package config

import (
	"errors"
	"fmt"
	"math"
)

// MaxBenchmarkSize bounds benchmark.size so one run stays in memory.
const MaxBenchmarkSize = 10_000_000

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Server.validate(),
		c.Catalog.validate(),
		c.Benchmark.validate(),
	)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty"))
	}

	return errors.Join(errs...)
}

func (s *ServerConfig) validate() error {
	if !s.Enabled {
		return nil
	}

	var errs []error

	// Port 0 asks the kernel for a free port.
	if s.Port < 0 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 0 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must be positive"))
	}
	if s.RequestTimeout < 0 {
		errs = append(errs, errors.New("server.request_timeout must not be negative"))
	}

	return errors.Join(errs...)
}

func (c *CatalogConfig) validate() error {
	if math.IsNaN(c.Threshold) || math.IsInf(c.Threshold, 0) || c.Threshold < 0 {
		return fmt.Errorf("catalog.threshold must be a finite, non-negative number, got %v", c.Threshold)
	}
	return nil
}

func (b *BenchmarkConfig) validate() error {
	var errs []error

	if b.Size < 1 || b.Size > MaxBenchmarkSize {
		errs = append(errs, fmt.Errorf("benchmark.size must be between 1 and %d, got %d", MaxBenchmarkSize, b.Size))
	}
	if b.MaxValue < 1 {
		errs = append(errs, fmt.Errorf("benchmark.max_value must be >= 1, got %d", b.MaxValue))
	}
	if b.Parallel && b.Workers < 1 {
		errs = append(errs, fmt.Errorf("benchmark.workers must be >= 1 when parallel, got %d", b.Workers))
	}

	return errors.Join(errs...)
}
