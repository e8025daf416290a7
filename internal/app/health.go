package app

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/go-transform-demo/internal/ports"
)

// Compile-time check that SelfCheck implements ports.HealthChecker.
var _ ports.HealthChecker = (*SelfCheck)(nil)

// SelfCheck reports the demo as ready only while every self-check passes.
type SelfCheck struct {
	svc ports.DemoService
}

// NewSelfCheck creates a health checker that runs svc.RunChecks.
func NewSelfCheck(svc ports.DemoService) *SelfCheck {
	return &SelfCheck{svc: svc}
}

// Name implements ports.HealthChecker.
func (c *SelfCheck) Name() string {
	return "self-check"
}

// HealthCheck implements ports.HealthChecker.
func (c *SelfCheck) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	report := c.svc.RunChecks(ctx)
	if report.Failed > 0 {
		return fmt.Errorf("%d of %d checks failed", report.Failed, report.Passed+report.Failed)
	}
	return nil
}
