package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-transform-demo/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\"", cfg.Log.Level)
	}
	if cfg.Server.Enabled {
		t.Error("Server.Enabled = true, want false for local")
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
}

func TestLoad_ServeProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("serve")
	if err != nil {
		t.Fatalf("Load(\"serve\") error: %v", err)
	}

	if !cfg.Server.Enabled {
		t.Error("Server.Enabled = false, want true for serve")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Benchmark.Parallel {
		t.Error("Benchmark.Parallel = false, want true for serve")
	}
	if cfg.Benchmark.Workers != 8 {
		t.Errorf("Benchmark.Workers = %d, want 8", cfg.Benchmark.Workers)
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\" (from base)", cfg.Log.Format)
	}
	if cfg.Catalog.Threshold != 100 {
		t.Errorf("Catalog.Threshold = %v, want 100 (from base)", cfg.Catalog.Threshold)
	}
	if cfg.Benchmark.Size != 10000 {
		t.Errorf("Benchmark.Size = %d, want 10000 (from base)", cfg.Benchmark.Size)
	}
}

func TestLoad_NoFilesUsesDefaults(t *testing.T) {
	cfg, err := config.Load("local", config.WithConfigDir(t.TempDir()))
	if err != nil {
		t.Fatalf("Load with empty dir error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Catalog.Threshold != 100 {
		t.Errorf("Catalog.Threshold = %v, want 100", cfg.Catalog.Threshold)
	}
	if cfg.Benchmark.Size != 10000 {
		t.Errorf("Benchmark.Size = %d, want 10000", cfg.Benchmark.Size)
	}
	if cfg.Benchmark.MaxValue != 1000 {
		t.Errorf("Benchmark.MaxValue = %d, want 1000", cfg.Benchmark.MaxValue)
	}
	if cfg.Benchmark.Seed != 0 {
		t.Errorf("Benchmark.Seed = %d, want 0", cfg.Benchmark.Seed)
	}
	if cfg.Server.ShutdownTimeout != 15*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 15s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Server.RequestTimeout != 30*time.Second {
		t.Errorf("Server.RequestTimeout = %v, want 30s", cfg.Server.RequestTimeout)
	}
}

func TestLoad_DefaultRunOpensNothing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dir  string
	}{
		{name: "repo config files", dir: filepath.Join("..", "..", "..", "configs")},
		{name: "no config files", dir: t.TempDir()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.Load("local", config.WithConfigDir(tt.dir))
			if err != nil {
				t.Fatalf("Load error: %v", err)
			}
			if cfg.Server.Enabled {
				t.Error("Server.Enabled = true, want false")
			}
			if cfg.Telemetry.Enabled {
				t.Error("Telemetry.Enabled = true, want false")
			}
		})
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_BENCHMARK_SIZE", "500")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Benchmark.Size != 500 {
		t.Errorf("Benchmark.Size = %d, want 500 (env override)", cfg.Benchmark.Size)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_BENCHMARK_MAX_VALUE", "50")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Benchmark.MaxValue != 50 {
		t.Errorf("Benchmark.MaxValue = %d, want 50 (env override)", cfg.Benchmark.MaxValue)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 15s (env override)", cfg.Server.ReadTimeout)
	}
}

func TestLoad_EnvOverrideFloatAndBool(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_CATALOG_THRESHOLD", "250.5")
	t.Setenv("APP_BENCHMARK_PARALLEL", "true")
	t.Setenv("APP_BENCHMARK_SEED", "42")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Catalog.Threshold != 250.5 {
		t.Errorf("Catalog.Threshold = %v, want 250.5", cfg.Catalog.Threshold)
	}
	if !cfg.Benchmark.Parallel {
		t.Error("Benchmark.Parallel = false, want true")
	}
	if cfg.Benchmark.Seed != 42 {
		t.Errorf("Benchmark.Seed = %d, want 42", cfg.Benchmark.Seed)
	}
}

func TestLoad_MissingProfileFallsBackToBase(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("nonexistent")
	if err != nil {
		t.Fatalf("Load(\"nonexistent\") error: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\" (from base)", cfg.Log.Level)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "base.yaml"), []byte("log: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := config.Load("local", config.WithConfigDir(dir))
	if err == nil {
		t.Fatal("Load with malformed base.yaml returned nil error, want error")
	}
}

func TestLoad_InvalidValueFromEnv(t *testing.T) {
	t.Setenv("APP_BENCHMARK_SIZE", "0")

	_, err := config.Load("local", config.WithConfigDir(t.TempDir()))
	if err == nil {
		t.Fatal("Load with benchmark.size=0 returned nil error, want error")
	}
	if !strings.Contains(err.Error(), "benchmark.size") {
		t.Errorf("error = %v, want mention of benchmark.size", err)
	}
}

func TestLoad_InvalidProfile(t *testing.T) {
	t.Parallel()

	tests := []string{"", "  ", "../etc", "a/b", `a\b`}
	for _, profile := range tests {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestProfileFromEnv(t *testing.T) {
	t.Setenv("APP_PROFILE", "")
	if got := config.ProfileFromEnv(); got != "local" {
		t.Errorf("ProfileFromEnv() = %q, want \"local\"", got)
	}

	t.Setenv("APP_PROFILE", "serve")
	if got := config.ProfileFromEnv(); got != "serve" {
		t.Errorf("ProfileFromEnv() = %q, want \"serve\"", got)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "valid config", mutate: func(*config.Config) {}},
		{
			name:    "invalid log level",
			mutate:  func(c *config.Config) { c.Log.Level = "verbose" },
			wantErr: "log.level",
		},
		{
			name: "otlp without endpoint",
			mutate: func(c *config.Config) {
				c.Telemetry.Enabled = true
				c.Telemetry.Exporter = "otlp"
			},
			wantErr: "telemetry.endpoint",
		},
		{
			name: "bad port ignored when server disabled",
			mutate: func(c *config.Config) {
				c.Server.Enabled = false
				c.Server.Port = -1
			},
		},
		{
			name: "negative port when server enabled",
			mutate: func(c *config.Config) {
				c.Server.Enabled = true
				c.Server.Port = -1
			},
			wantErr: "server.port",
		},
		{
			name: "port above range when server enabled",
			mutate: func(c *config.Config) {
				c.Server.Enabled = true
				c.Server.Port = 65536
			},
			wantErr: "server.port",
		},
		{
			name: "ephemeral port when server enabled",
			mutate: func(c *config.Config) {
				c.Server.Enabled = true
				c.Server.Port = 0
			},
		},
		{
			name: "negative request timeout",
			mutate: func(c *config.Config) {
				c.Server.Enabled = true
				c.Server.RequestTimeout = -time.Second
			},
			wantErr: "server.request_timeout",
		},
		{
			name:    "negative threshold",
			mutate:  func(c *config.Config) { c.Catalog.Threshold = -1 },
			wantErr: "catalog.threshold",
		},
		{
			name:    "oversized benchmark",
			mutate:  func(c *config.Config) { c.Benchmark.Size = config.MaxBenchmarkSize + 1 },
			wantErr: "benchmark.size",
		},
		{
			name:    "zero max value",
			mutate:  func(c *config.Config) { c.Benchmark.MaxValue = 0 },
			wantErr: "benchmark.max_value",
		},
		{
			name: "parallel without workers",
			mutate: func(c *config.Config) {
				c.Benchmark.Parallel = true
				c.Benchmark.Workers = 0
			},
			wantErr: "benchmark.workers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() returned error for valid config: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() returned nil, want error mentioning %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_AggregatesErrors(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Format = "xml"
	cfg.Benchmark.Size = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() returned nil, want error")
	}
	for _, want := range []string{"log.format", "benchmark.size"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error = %v, want mention of %q", err, want)
		}
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Log: config.LogConfig{
			Level:  "info",
			Format: "text",
		},
		Telemetry: config.TelemetryConfig{
			Enabled:     false,
			Exporter:    "stdout",
			ServiceName: "transform-demo",
		},
		Server: config.ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			RequestTimeout:  30 * time.Second,
		},
		Catalog: config.CatalogConfig{Threshold: 100},
		Benchmark: config.BenchmarkConfig{
			Size:     10000,
			MaxValue: 1000,
			Workers:  4,
		},
	}
}
