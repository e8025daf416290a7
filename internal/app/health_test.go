package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-transform-demo/internal/domain/product"
	"github.com/jsamuelsen11/go-transform-demo/internal/ports"
	"github.com/jsamuelsen11/go-transform-demo/mocks"
)

func TestSelfCheck_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "self-check", NewSelfCheck(mocks.NewMockDemoService(t)).Name())
}

func TestSelfCheck_HealthCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		report  ports.CheckReport
		wantErr string
	}{
		{name: "all pass", report: ports.CheckReport{Passed: 5}},
		{name: "some fail", report: ports.CheckReport{Passed: 4, Failed: 1}, wantErr: "1 of 5 checks failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockDemoService(t)
			svc.EXPECT().RunChecks(mock.Anything).Return(tt.report)

			err := NewSelfCheck(svc).HealthCheck(context.Background())

			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestSelfCheck_CanceledContextSkipsChecks(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := mocks.NewMockDemoService(t)
	err := NewSelfCheck(svc).HealthCheck(ctx)

	assert.True(t, errors.Is(err, context.Canceled), "error = %v", err)
}

func TestSelfCheck_WithRealService(t *testing.T) {
	t.Parallel()

	svc := NewDemoService(product.DefaultCatalog(), BenchmarkOptions{MaxValue: 10}, nil, nil)
	require.NoError(t, NewSelfCheck(svc).HealthCheck(context.Background()))

	broken := NewDemoService(product.DefaultCatalog(), BenchmarkOptions{MaxValue: 10}, nil, nil,
		WithChecks(Check{Name: "broken", Run: func() bool { return false }}),
	)
	require.Error(t, NewSelfCheck(broken).HealthCheck(context.Background()))
}
