package main

import (
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-transform-demo/internal/adapters/http"
	"github.com/jsamuelsen11/go-transform-demo/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-transform-demo/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-transform-demo/internal/app"
	"github.com/jsamuelsen11/go-transform-demo/internal/domain/product"
	"github.com/jsamuelsen11/go-transform-demo/internal/platform/config"
	"github.com/jsamuelsen11/go-transform-demo/internal/platform/health"
	"github.com/jsamuelsen11/go-transform-demo/internal/platform/logging"
	"github.com/jsamuelsen11/go-transform-demo/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-transform-demo/internal/ports"
)

// newInjector builds the dependency graph. metrics may be nil when telemetry
// is disabled.
func newInjector(cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) *do.RootScope {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)

	registerDependencies(injector, cfg, logger)
	return injector
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*product.Catalog, error) {
		return product.DefaultCatalog(), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DemoService, error) {
		catalog := do.MustInvoke[*product.Catalog](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		bench := app.BenchmarkOptions{
			MaxValue: cfg.Benchmark.MaxValue,
			Seed:     cfg.Benchmark.Seed,
			Parallel: cfg.Benchmark.Parallel,
			Workers:  cfg.Benchmark.Workers,
		}
		return app.NewDemoService(catalog, bench, metricsRecorder(metrics), logger.With(logging.Component("demo"))), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.Runner, error) {
		svc := do.MustInvoke[ports.DemoService](i)
		return app.NewRunner(svc, cfg.Catalog.Threshold, cfg.Benchmark.Size, logger.With(logging.Component("runner"))), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.DemoHandler, error) {
		svc := do.MustInvoke[ports.DemoService](i)
		return handlers.NewDemoHandler(svc, cfg.Catalog.Threshold, cfg.Benchmark.Size), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		demoH := do.MustInvoke[*handlers.DemoHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(demoH, healthH,
			middleware.Stack(logger, metrics, cfg.Server.RequestTimeout)...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// metricsRecorder keeps a nil *telemetry.Metrics from becoming a non-nil
// interface, so the service falls back to its no-op recorder.
func metricsRecorder(m *telemetry.Metrics) ports.MetricsRecorder {
	if m == nil {
		return nil
	}
	return m
}
