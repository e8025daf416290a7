package ports

import (
	"context"
	"time"
)

// MetricsRecorder receives demo measurements. Implemented by
// *telemetry.Metrics, whose nil value records nothing.
type MetricsRecorder interface {
	// RecordCheck counts one self-check outcome.
	RecordCheck(ctx context.Context, passed bool)

	// RecordPipeline records the duration of one sum in the given style
	// ("loop" or "pipeline").
	RecordPipeline(ctx context.Context, style string, d time.Duration)
}
