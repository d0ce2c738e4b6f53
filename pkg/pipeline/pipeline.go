// SPDX-License-Identifier: Apache-2.0
// Package pipeline orchestrates the three Pathfinder stages. Market
// insight and skill gap are independent and run concurrently; the
// roadmap depends on the gap and runs after it. The run ends in one of
// two terminal states: a fully validated Result, or the first failure
// tagged with the stage that produced it.
package pipeline

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jllopis/pathfinder/pkg/catalog"
	"github.com/jllopis/pathfinder/pkg/core"
	"github.com/jllopis/pathfinder/pkg/errors"
	"github.com/jllopis/pathfinder/pkg/stage"
)

// DefaultTimeout bounds a pipeline run when no explicit timeout is set.
const DefaultTimeout = 30 * time.Second

// Pipeline runs the statically wired stage sequence against a catalog.
// It is stateless across runs and safe for concurrent use.
type Pipeline struct {
	market  *stage.MarketStage
	gap     *stage.SkillGapStage
	roadmap *stage.RoadmapStage
	timeout time.Duration
	tracer  trace.Tracer
	metrics *Metrics
	logger  *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTimeout sets the per-run deadline. Zero disables the deadline.
func WithTimeout(d time.Duration) Option {
	return func(p *Pipeline) { p.timeout = d }
}

// WithMetrics attaches run and failure instruments.
func WithMetrics(m *Metrics) Option {
	return func(p *Pipeline) { p.metrics = m }
}

// WithLogger sets the logger used for run lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// New builds a pipeline over the given catalog.
func New(cat catalog.Catalog, opts ...Option) *Pipeline {
	p := &Pipeline{
		market:  stage.NewMarket(cat),
		gap:     stage.NewSkillGap(cat),
		roadmap: stage.NewRoadmap(cat),
		timeout: DefaultTimeout,
		tracer:  otel.Tracer("pathfinder/pipeline"),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes the full pipeline for raw user input. Input parsing
// failures are reported before any stage executes.
func (p *Pipeline) Run(ctx context.Context, goalText, skillsText string) (*core.Result, error) {
	goal, err := core.ParseGoal(goalText)
	if err != nil {
		p.metrics.recordFailure(ctx, err)
		return nil, err
	}
	userSkills := core.ParseSkills(skillsText)

	result := core.NewResult(goal, userSkills)
	ctx, span := p.tracer.Start(ctx, "Pipeline.Run",
		trace.WithAttributes(
			attribute.String("request_id", result.RequestID),
			attribute.String("goal", goal.Title),
			attribute.Int("user_skills", userSkills.Len()),
		),
	)
	defer span.End()

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	p.metrics.recordStart(ctx)
	p.logger.InfoContext(ctx, "pipeline run started",
		slog.String("request_id", result.RequestID),
		slog.String("goal", goal.Title),
		slog.Int("user_skills", userSkills.Len()),
	)

	err = p.execute(ctx, result, goal, userSkills)
	result.Elapsed = time.Since(result.StartedAt)
	p.metrics.recordDuration(ctx, float64(result.Elapsed)/float64(time.Millisecond))

	if err != nil {
		p.metrics.recordFailure(ctx, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		p.logger.ErrorContext(ctx, "pipeline run failed",
			slog.String("request_id", result.RequestID),
			slog.String("stage", errors.StageOf(err)),
			slog.Any("error", err),
		)
		return nil, err
	}

	p.logger.InfoContext(ctx, "pipeline run completed",
		slog.String("request_id", result.RequestID),
		slog.Int("missing_skills", result.Gap.Missing.Len()),
		slog.Int("milestones", len(result.Roadmap.Milestones)),
		slog.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}

// execute runs market and gap concurrently, then the roadmap. When both
// parallel stages fail, the market failure is reported: it is first in
// declared stage order.
func (p *Pipeline) execute(ctx context.Context, result *core.Result, goal core.Goal, userSkills core.SkillSet) error {
	type marketOut struct {
		insight core.MarketInsight
		err     error
	}
	type gapOut struct {
		gap core.SkillGap
		err error
	}

	marketCh := make(chan marketOut, 1)
	gapCh := make(chan gapOut, 1)
	go func() {
		insight, err := p.market.Run(ctx, goal)
		marketCh <- marketOut{insight: insight, err: err}
	}()
	go func() {
		gap, err := p.gap.Run(ctx, goal, userSkills)
		gapCh <- gapOut{gap: gap, err: err}
	}()

	var (
		marketDone, gapDone bool
		marketErr, gapErr   error
	)
	for !marketDone || !gapDone {
		select {
		case <-ctx.Done():
			if !marketDone {
				return deadlineError(ctx, stage.Market)
			}
			return deadlineError(ctx, stage.SkillGap)
		case m := <-marketCh:
			marketDone = true
			result.Insight, marketErr = m.insight, m.err
		case g := <-gapCh:
			gapDone = true
			result.Gap, gapErr = g.gap, g.err
		}
	}
	if marketErr != nil {
		return marketErr
	}
	if gapErr != nil {
		return gapErr
	}

	type roadmapOut struct {
		roadmap core.Roadmap
		err     error
	}
	roadmapCh := make(chan roadmapOut, 1)
	go func() {
		roadmap, err := p.roadmap.Run(ctx, result.Gap)
		roadmapCh <- roadmapOut{roadmap: roadmap, err: err}
	}()
	select {
	case <-ctx.Done():
		return deadlineError(ctx, stage.Roadmap)
	case r := <-roadmapCh:
		if r.err != nil {
			return r.err
		}
		result.Roadmap = r.roadmap
	}
	return nil
}

// deadlineError maps a done context to the failure taxonomy, tagged with
// the stage that was still pending.
func deadlineError(ctx context.Context, pending string) error {
	if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errors.New(errors.CodeTimeout, "request deadline exceeded", ctx.Err()).
			WithStage(pending)
	}
	return errors.New(errors.CodeInternal, "request cancelled", ctx.Err()).
		WithStage(pending)
}
