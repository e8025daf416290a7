package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-transform-demo/internal/platform/health"
	"github.com/jsamuelsen11/go-transform-demo/mocks"
)

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	results := health.New().CheckAll(context.Background())

	if results == nil {
		t.Fatal("expected non-nil map, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected empty map, got %d entries", len(results))
	}
}

func TestCheckAll_MixedHealth(t *testing.T) {
	t.Parallel()

	healthy := mocks.NewMockHealthChecker(t)
	healthy.EXPECT().Name().Return("catalog")
	healthy.EXPECT().HealthCheck(mock.Anything).Return(nil)

	unhealthy := mocks.NewMockHealthChecker(t)
	unhealthy.EXPECT().Name().Return("self-check")
	unhealthy.EXPECT().HealthCheck(mock.Anything).Return(errors.New("1 of 5 checks failed"))

	r := health.New()
	r.Register(healthy)
	r.Register(unhealthy)

	results := r.CheckAll(context.Background())

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results["catalog"] != nil {
		t.Errorf("catalog check = %v, want nil", results["catalog"])
	}
	if results["self-check"] == nil {
		t.Fatal("self-check = nil, want error")
	}
}

func TestCheckAll_ContextPropagated(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("self-check")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(checker)

	results := r.CheckAll(ctx)

	if !errors.Is(results["self-check"], context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", results["self-check"])
	}
}

func TestRegister_DuplicateNameReplaces(t *testing.T) {
	t.Parallel()

	first := mocks.NewMockHealthChecker(t)
	first.EXPECT().Name().Return("self-check")

	secondErr := errors.New("second failure")
	second := mocks.NewMockHealthChecker(t)
	second.EXPECT().Name().Return("self-check")
	second.EXPECT().HealthCheck(mock.Anything).Return(secondErr)

	r := health.New()
	r.Register(first)
	r.Register(second)

	results := r.CheckAll(context.Background())

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if !errors.Is(results["self-check"], secondErr) {
		t.Errorf("self-check = %v, want %v (from replacing checker)", results["self-check"], secondErr)
	}
}

func TestCheckAll_ConcurrentSafety(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	const goroutines = 50

	for i := range goroutines {
		wg.Add(1)
		if i%2 == 0 {
			go func() {
				defer wg.Done()
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("checker").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
			}()
		} else {
			go func() {
				defer wg.Done()
				r.CheckAll(context.Background())
			}()
		}
	}

	wg.Wait()
}
