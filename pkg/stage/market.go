// SPDX-License-Identifier: Apache-2.0

package stage

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jllopis/pathfinder/pkg/catalog"
	"github.com/jllopis/pathfinder/pkg/core"
	"github.com/jllopis/pathfinder/pkg/schema"
)

// MarketStage resolves demand, trend, and salary data for a goal.
// It never fabricates values: an unknown goal is a lookup failure.
type MarketStage struct {
	source catalog.MarketSource
	gate   schema.Schema
	tracer trace.Tracer
}

// NewMarket creates the market insight stage.
func NewMarket(source catalog.MarketSource) *MarketStage {
	return &MarketStage{
		source: source,
		gate:   schema.ForMarketInsight(),
		tracer: otel.Tracer(tracerName),
	}
}

// Run produces a validated MarketInsight for the goal.
func (s *MarketStage) Run(ctx context.Context, goal core.Goal) (core.MarketInsight, error) {
	ctx, span := s.tracer.Start(ctx, "Stage.MarketInsight",
		trace.WithAttributes(
			attribute.String("stage", Market),
			attribute.String("goal", goal.Title),
		),
	)
	defer span.End()

	insight, err := s.source.MarketInsight(ctx, goal.Title)
	if err != nil {
		return core.MarketInsight{}, tag(err, Market)
	}
	if err := s.gate.Validate(insight); err != nil {
		return core.MarketInsight{}, tag(err, Market)
	}
	return insight, nil
}
