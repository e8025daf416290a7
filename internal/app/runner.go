package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-transform-demo/internal/pipeline"
	"github.com/jsamuelsen11/go-transform-demo/internal/ports"
	"github.com/jsamuelsen11/go-transform-demo/internal/transform"
)

const tracerName = "github.com/jsamuelsen11/go-transform-demo/internal/app"

// Section headers, printed in order.
const (
	HeaderDemo        = "========== PART 1: DEMO & PIPELINE =========="
	HeaderChecks      = "========== PART 2: UNIT TESTS (Manual) =========="
	HeaderPerformance = "========== PART 3: PERFORMANCE TEST =========="
)

// composeInput is the value the walkthrough feeds to both composition orders.
const composeInput = 5

// Runner prints the three demo phases.
type Runner struct {
	svc       ports.DemoService
	threshold float64
	benchSize int
	logger    *slog.Logger
	tracer    trace.Tracer
}

// NewRunner creates a Runner. threshold is the product price filter and
// benchSize the number of values the performance phase generates.
func NewRunner(svc ports.DemoService, threshold float64, benchSize int, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		svc:       svc,
		threshold: threshold,
		benchSize: benchSize,
		logger:    logger,
		tracer:    otel.Tracer(tracerName),
	}
}

type phase struct {
	name   string
	header string
	run    func(context.Context, *printer) error
}

// Run writes the walkthrough, the self-check summary and the timing
// comparison to w. Failed checks do not make Run fail; only a write error or
// a benchmark error does.
func (r *Runner) Run(ctx context.Context, w io.Writer) error {
	ctx, span := r.tracer.Start(ctx, "demo.run")
	defer span.End()

	p := &printer{w: w}
	phases := []phase{
		{name: "demo.walkthrough", header: HeaderDemo, run: r.walkthrough},
		{name: "demo.checks", header: HeaderChecks, run: r.checks},
		{name: "demo.performance", header: HeaderPerformance, run: r.performance},
	}

	for i, ph := range phases {
		if i > 0 {
			p.printf("\n")
		}
		p.printf("%s\n", ph.header)

		if err := r.runPhase(ctx, ph, p); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}

	if p.err != nil {
		return fmt.Errorf("writing demo output: %w", p.err)
	}
	return nil
}

func (r *Runner) runPhase(ctx context.Context, ph phase, p *printer) error {
	ctx, span := r.tracer.Start(ctx, ph.name)
	defer span.End()

	if err := ph.run(ctx, p); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.ErrorContext(ctx, "demo phase failed",
			slog.String("operation", ph.name),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s: %w", ph.name, err)
	}
	if p.err != nil {
		return fmt.Errorf("writing demo output: %w", p.err)
	}
	return nil
}

func (r *Runner) walkthrough(ctx context.Context, p *printer) error {
	_ = transform.FprintResult(p, StringLength, "Hello Java")
	p.printf("Rounded %v -> %d\n", 5.6, Round.Execute(5.6))

	p.printf("-- Products > %v$ --\n", r.threshold)
	names := r.svc.ExpensiveProducts(ctx, r.threshold)
	pipeline.ForEach(pipeline.From(names), transform.Consumer[string](func(name string) {
		p.printf("Item: %s\n", name)
	}))

	c := r.svc.Compose(ctx, composeInput)
	p.printf("andThen result: %d\n", c.Then)
	p.printf("compose result: %d\n", c.After)
	return nil
}

func (r *Runner) checks(ctx context.Context, p *printer) error {
	report := r.svc.RunChecks(ctx)

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("checks.passed", report.Passed),
		attribute.Int("checks.failed", report.Failed),
	)
	r.logger.InfoContext(ctx, "self-checks complete",
		slog.Int("passed", report.Passed),
		slog.Int("failed", report.Failed),
	)

	p.printf("Tests: %d Passed, %d Failed.\n", report.Passed, report.Failed)
	return nil
}

func (r *Runner) performance(ctx context.Context, p *printer) error {
	report, err := r.svc.Benchmark(ctx, r.benchSize)
	if err != nil {
		return err
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("benchmark.size", report.Size),
		attribute.Bool("benchmark.parallel", report.Parallel),
	)

	p.printf("Loop Time:   %d ns\n", report.LoopElapsed.Nanoseconds())
	p.printf("Stream Time: %d ns\n", report.PipelineElapsed.Nanoseconds())
	p.printf("Sums match: %t (%d)\n", report.LoopSum == report.PipelineSum, report.LoopSum)
	return nil
}

// printer is an io.Writer that keeps the first write error and drops every
// write after it.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) Write(b []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	n, err := p.w.Write(b)
	p.err = err
	return n, err
}

func (p *printer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p, format, args...)
}
