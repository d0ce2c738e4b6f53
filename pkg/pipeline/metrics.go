// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jllopis/pathfinder/pkg/errors"
)

// Metrics tracks pipeline throughput and failures by stage. All methods
// are nil-safe so the pipeline works without telemetry wired.
type Metrics struct {
	requests metric.Int64Counter
	failures metric.Int64Counter
	duration metric.Float64Histogram
}

// NewMetrics registers the pipeline instruments on the global meter.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter("pathfinder/pipeline")

	requests, err := meter.Int64Counter(
		"pathfinder.requests.total",
		metric.WithDescription("Pipeline runs started"),
	)
	if err != nil {
		return nil, err
	}
	failures, err := meter.Int64Counter(
		"pathfinder.failures.total",
		metric.WithDescription("Pipeline failures by stage and code"),
	)
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram(
		"pathfinder.request.duration_ms",
		metric.WithDescription("Pipeline run duration in milliseconds"),
	)
	if err != nil {
		return nil, err
	}
	return &Metrics{
		requests: requests,
		failures: failures,
		duration: duration,
	}, nil
}

func (m *Metrics) recordStart(ctx context.Context) {
	if m == nil {
		return
	}
	m.requests.Add(ctx, 1)
}

func (m *Metrics) recordFailure(ctx context.Context, err error) {
	if m == nil || err == nil {
		return
	}
	pe := errors.AsError(err)
	stage := pe.Stage
	if stage == "" {
		stage = "input"
	}
	m.failures.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("stage", stage),
			attribute.String("code", string(pe.Code)),
		),
	)
}

func (m *Metrics) recordDuration(ctx context.Context, millis float64) {
	if m == nil {
		return
	}
	m.duration.Record(ctx, millis)
}
