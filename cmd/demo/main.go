// Package main is the entry point for the transform demo. It wires all
// dependencies using samber/do v2, prints the three demo phases to stdout,
// and, when server.enabled is set, serves the same operations over HTTP
// until SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	adapthttp "github.com/jsamuelsen11/go-transform-demo/internal/adapters/http"
	"github.com/jsamuelsen11/go-transform-demo/internal/app"
	"github.com/jsamuelsen11/go-transform-demo/internal/platform/config"
	"github.com/jsamuelsen11/go-transform-demo/internal/platform/logging"
	"github.com/jsamuelsen11/go-transform-demo/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-transform-demo/internal/ports"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(config.ProfileFromEnv())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		// Flush telemetry even when ctx is already canceled.
		otelCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := newInjector(cfg, logger, otel.metrics)

	runner, err := do.Invoke[*app.Runner](injector)
	if err != nil {
		return fmt.Errorf("resolving runner: %w", err)
	}
	if err := runner.Run(ctx, stdout); err != nil {
		return fmt.Errorf("running demo: %w", err)
	}

	if !cfg.Server.Enabled {
		return nil
	}
	return serve(ctx, injector, logger)
}

// serve runs the HTTP server until ctx is canceled or the server fails.
func serve(ctx context.Context, injector do.Injector, logger *slog.Logger) error {
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(app.NewSelfCheck(do.MustInvoke[ports.DemoService](injector)))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests within server.shutdown_timeout.
	if err := server.Shutdown(context.WithoutCancel(ctx)); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}
