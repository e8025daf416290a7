package ports

import (
	"context"
	"time"
)

// DemoService defines the service port for the demo operations.
// Implemented by the application layer; called by the console runner and by
// the HTTP handlers.
type DemoService interface {
	// ExpensiveProducts returns the names of catalog products priced strictly
	// above threshold, in catalog order.
	ExpensiveProducts(ctx context.Context, threshold float64) []string

	// Compose applies multiplyBy2 and add10 to input in both composition
	// orders.
	Compose(ctx context.Context, input int) Composition

	// RunChecks evaluates the fixed self-check list. A failed check is
	// counted, never returned as an error.
	RunChecks(ctx context.Context) CheckReport

	// Benchmark generates size random integers and sums the doubled even
	// values with an imperative loop and with a declarative pipeline.
	// Returns domain.ErrValidation if size is out of range.
	Benchmark(ctx context.Context, size int) (*BenchmarkReport, error)
}

// Composition holds the two composition orders for one input.
type Composition struct {
	Input int
	// Then is add10(multiplyBy2(Input)).
	Then int
	// After is multiplyBy2(add10(Input)).
	After int
}

// CheckResult is the outcome of a single named check.
type CheckResult struct {
	Name   string
	Passed bool
}

// CheckReport aggregates check outcomes in evaluation order.
type CheckReport struct {
	Passed  int
	Failed  int
	Results []CheckResult
}

// BenchmarkReport holds the sums and the illustrative timings of one
// comparison run. LoopSum and PipelineSum are always equal.
type BenchmarkReport struct {
	Size            int
	Parallel        bool
	LoopSum         int64
	PipelineSum     int64
	LoopElapsed     time.Duration
	PipelineElapsed time.Duration
}
