// Package telemetry provides OpenTelemetry tracer and meter initialization
// with support for stdout (development) and OTLP/HTTP (production) exporters.
//
// Tracer initialization:
//
//	tp, err := telemetry.InitTracer(ctx, "transform-demo", telemetry.ExporterStdout, "")
//	defer tp.Shutdown(ctx)
//
// Meter initialization:
//
//	mp, err := telemetry.InitMeter(ctx, "transform-demo", telemetry.ExporterStdout, "")
//	defer mp.Shutdown(ctx)
//
// Pre-registered metrics:
//
//	metrics, err := telemetry.NewMetrics(mp, "transform-demo")
//	metrics.RecordCheck(ctx, true)
//
// The stdout exporters write to stderr so that telemetry never interleaves
// with the demo output on stdout.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Pipeline styles recorded on demo.pipeline.duration.
const (
	StyleLoop     = "loop"
	StylePipeline = "pipeline"
)

// ErrUnsupportedExporter is returned for exporter names other than
// ExporterStdout and ExporterOTLP.
var ErrUnsupportedExporter = errors.New("unsupported exporter")

// Attribute keys for metric labels.
var (
	AttrHTTPMethod = attribute.Key("http.method")
	AttrHTTPStatus = attribute.Key("http.status_code")
	AttrResult     = attribute.Key("result")
	AttrStyle      = attribute.Key("style")
)

// stdoutWriter is where the stdout exporters write.
var stdoutWriter io.Writer = os.Stderr

// Metrics holds pre-registered OpenTelemetry metric instruments.
// A nil *Metrics is valid; its Record methods do nothing.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	CheckTotal            metric.Int64Counter
	PipelineDuration      metric.Float64Histogram
}

// InitTracer creates and registers a global TracerProvider.
//
// The exporter parameter selects the span exporter: ExporterOTLP uses
// OTLP/HTTP with the given endpoint, ExporterStdout uses a pretty-printed
// exporter writing to stderr. Any other value is an error.
//
// The returned TracerProvider must be shut down when the application exits.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	spanExporter, err := newSpanExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, nil
}

// InitMeter creates and registers a global MeterProvider.
//
// Exporter selection follows InitTracer.
//
// The returned MeterProvider must be shut down when the application exits.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	metricExporter, err := newMetricExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, nil
}

// NewMetrics creates all metric instruments from the given MeterProvider,
// scoped to the named instrumentation scope.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	meter := mp.Meter(scope)

	serverDuration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("Duration of incoming HTTP requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating http.server.request.duration: %w", err)
	}

	serverTotal, err := meter.Int64Counter(
		"http.server.request.total",
		metric.WithDescription("Total number of incoming HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating http.server.request.total: %w", err)
	}

	checkTotal, err := meter.Int64Counter(
		"demo.check.total",
		metric.WithDescription("Self-check outcomes"),
		metric.WithUnit("{check}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating demo.check.total: %w", err)
	}

	pipelineDuration, err := meter.Float64Histogram(
		"demo.pipeline.duration",
		metric.WithDescription("Duration of one sum over the benchmark data"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating demo.pipeline.duration: %w", err)
	}

	return &Metrics{
		ServerRequestDuration: serverDuration,
		ServerRequestTotal:    serverTotal,
		CheckTotal:            checkTotal,
		PipelineDuration:      pipelineDuration,
	}, nil
}

// RecordCheck counts one self-check outcome.
func (m *Metrics) RecordCheck(ctx context.Context, passed bool) {
	if m == nil {
		return
	}
	result := "passed"
	if !passed {
		result = "failed"
	}
	m.CheckTotal.Add(ctx, 1, metric.WithAttributes(AttrResult.String(result)))
}

// RecordPipeline records how long one sum took in the given style.
func (m *Metrics) RecordPipeline(ctx context.Context, style string, d time.Duration) {
	if m == nil {
		return
	}
	m.PipelineDuration.Record(ctx, d.Seconds(), metric.WithAttributes(AttrStyle.String(style)))
}

// RecordServerRequest records duration and count for one HTTP request.
func (m *Metrics) RecordServerRequest(ctx context.Context, method string, status int, d time.Duration) {
	if m == nil {
		return
	}

	result := "success"
	if status >= 400 {
		result = "error"
	}

	attrs := metric.WithAttributes(
		AttrHTTPMethod.String(method),
		AttrHTTPStatus.Int(status),
		AttrResult.String(result),
	)

	m.ServerRequestDuration.Record(ctx, d.Seconds(), attrs)
	m.ServerRequestTotal.Add(ctx, 1, attrs)
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

func newSpanExporter(ctx context.Context, exporter, endpoint string) (sdktrace.SpanExporter, error) {
	switch exporter {
	case ExporterOTLP:
		if endpoint == "" {
			return nil, errors.New("otlp exporter requires an endpoint")
		}
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(hostPort(endpoint))}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithPrettyPrint(), stdouttrace.WithWriter(stdoutWriter))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
	}
}

func newMetricExporter(ctx context.Context, exporter, endpoint string) (sdkmetric.Exporter, error) {
	switch exporter {
	case ExporterOTLP:
		if endpoint == "" {
			return nil, errors.New("otlp exporter requires an endpoint")
		}
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(hostPort(endpoint))}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		return otlpmetrichttp.New(ctx, opts...)
	case ExporterStdout:
		return stdoutmetric.New(stdoutmetric.WithWriter(stdoutWriter))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
	}
}

// hostPort extracts the host:port from a URL string
// (e.g., "http://otel-collector:4318" -> "otel-collector:4318").
func hostPort(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint
	}
	return u.Host
}

// isHTTPS returns true if the endpoint URL uses the https scheme.
func isHTTPS(endpoint string) bool {
	u, err := url.Parse(endpoint)
	if err != nil {
		return false
	}
	return u.Scheme == "https"
}
