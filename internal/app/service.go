// Package app provides the application service behind the demo and the
// console runner that prints its three phases. The service coordinates the
// product catalog, the transform and pipeline packages, and the metrics port;
// it holds no business rules of its own.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/jsamuelsen11/go-transform-demo/internal/domain"
	"github.com/jsamuelsen11/go-transform-demo/internal/domain/product"
	"github.com/jsamuelsen11/go-transform-demo/internal/pipeline"
	"github.com/jsamuelsen11/go-transform-demo/internal/ports"
	"github.com/jsamuelsen11/go-transform-demo/internal/transform"
)

// MaxBenchmarkSize is the largest size Benchmark accepts.
const MaxBenchmarkSize = 10_000_000

// pcgStream is the second PCG word; the seed supplies the first.
const pcgStream = 0x9e3779b97f4a7c15

// Compile-time check that DemoService implements ports.DemoService.
var _ ports.DemoService = (*DemoService)(nil)

// BenchmarkOptions configures how Benchmark generates and sums its data.
type BenchmarkOptions struct {
	// MaxValue is the exclusive upper bound of generated values.
	MaxValue int
	// Seed of 0 seeds from the clock.
	Seed uint64
	// Parallel sums the pipeline side with pipeline.ParallelSum.
	Parallel bool
	Workers  int
}

// DemoService implements ports.DemoService.
type DemoService struct {
	catalog *product.Catalog
	bench   BenchmarkOptions
	metrics ports.MetricsRecorder
	logger  *slog.Logger
	checks  []Check
	now     func() time.Time
}

// Option configures a DemoService.
type Option func(*DemoService)

// WithChecks replaces the default self-check list.
func WithChecks(checks ...Check) Option {
	return func(s *DemoService) {
		s.checks = checks
	}
}

// WithClock sets the time source used for benchmark timings and time seeding.
func WithClock(now func() time.Time) Option {
	return func(s *DemoService) {
		s.now = now
	}
}

// NewDemoService creates a DemoService over catalog. A nil metrics recorder
// or logger is replaced with a no-op.
func NewDemoService(
	catalog *product.Catalog,
	bench BenchmarkOptions,
	metrics ports.MetricsRecorder,
	logger *slog.Logger,
	opts ...Option,
) *DemoService {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if bench.MaxValue < 1 {
		bench.MaxValue = 1
	}

	s := &DemoService{
		catalog: catalog,
		bench:   bench,
		metrics: metrics,
		logger:  logger,
		checks:  DefaultChecks(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExpensiveProducts returns the names of products priced strictly above
// threshold, in catalog order.
func (s *DemoService) ExpensiveProducts(ctx context.Context, threshold float64) []string {
	names := s.catalog.NamesAbove(threshold)

	s.logger.DebugContext(ctx, "filtered catalog",
		slog.Float64("threshold", threshold),
		slog.Int("matched", len(names)),
		slog.Int("total", s.catalog.Len()),
	)
	return names
}

// Compose applies MultiplyBy2 and Add10 to input in both orders.
func (s *DemoService) Compose(_ context.Context, input int) ports.Composition {
	return ports.Composition{
		Input: input,
		Then:  transform.Then[int, int, int](MultiplyBy2, Add10).Execute(input),
		After: transform.After[int, int, int](MultiplyBy2, Add10).Execute(input),
	}
}

// RunChecks evaluates every check in order. A failing check is counted and
// evaluation continues.
func (s *DemoService) RunChecks(ctx context.Context) ports.CheckReport {
	report := ports.CheckReport{Results: make([]ports.CheckResult, 0, len(s.checks))}

	for _, c := range s.checks {
		passed := c.Run()
		report.Results = append(report.Results, ports.CheckResult{Name: c.Name, Passed: passed})
		s.metrics.RecordCheck(ctx, passed)

		if passed {
			report.Passed++
			continue
		}
		report.Failed++
		s.logger.WarnContext(ctx, "self-check failed", slog.String("check", c.Name))
	}

	return report
}

// Benchmark generates size random integers in [0, MaxValue) and sums 2n over
// the even values twice: with a plain loop and with a filter-map-sum
// pipeline. Timings are single, un-warmed samples.
func (s *DemoService) Benchmark(ctx context.Context, size int) (*ports.BenchmarkReport, error) {
	if size < 1 || size > MaxBenchmarkSize {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"size": fmt.Sprintf("must be between 1 and %d", MaxBenchmarkSize),
		}}
	}

	numbers := s.generate(size)

	start := s.now()
	var loopSum int64
	for _, n := range numbers {
		if n%2 == 0 {
			loopSum += int64(n * 2)
		}
	}
	loopElapsed := s.now().Sub(start)

	start = s.now()
	pipelineSum, err := s.pipelineSum(ctx, numbers)
	pipelineElapsed := s.now().Sub(start)
	if err != nil {
		s.logger.ErrorContext(ctx, "pipeline sum failed",
			slog.String("operation", "Benchmark"),
			slog.Int("size", size),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("summing with pipeline: %w", err)
	}

	s.metrics.RecordPipeline(ctx, "loop", loopElapsed)
	s.metrics.RecordPipeline(ctx, "pipeline", pipelineElapsed)

	s.logger.DebugContext(ctx, "benchmark complete",
		slog.Int("size", size),
		slog.Bool("parallel", s.bench.Parallel),
		slog.Int64("sum", loopSum),
		slog.Duration("loop", loopElapsed),
		slog.Duration("pipeline", pipelineElapsed),
	)

	return &ports.BenchmarkReport{
		Size:            size,
		Parallel:        s.bench.Parallel,
		LoopSum:         loopSum,
		PipelineSum:     pipelineSum,
		LoopElapsed:     loopElapsed,
		PipelineElapsed: pipelineElapsed,
	}, nil
}

func (s *DemoService) pipelineSum(ctx context.Context, numbers []int) (int64, error) {
	if s.bench.Parallel {
		return pipeline.ParallelSum(ctx, numbers, s.bench.Workers, doubledEven)
	}
	evens := pipeline.Filter(pipeline.From(numbers), IsEven)
	doubled := pipeline.Map(evens, transform.Then[int, int, int64](MultiplyBy2, widen))
	return pipeline.Sum(doubled), nil
}

func (s *DemoService) generate(size int) []int {
	seed := s.bench.Seed
	if seed == 0 {
		seed = uint64(s.now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, pcgStream))

	numbers := make([]int, size)
	for i := range numbers {
		numbers[i] = rng.IntN(s.bench.MaxValue)
	}
	return numbers
}

type nopRecorder struct{}

func (nopRecorder) RecordCheck(context.Context, bool)                     {}
func (nopRecorder) RecordPipeline(context.Context, string, time.Duration) {}
