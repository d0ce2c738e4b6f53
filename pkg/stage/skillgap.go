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

// SkillGapStage computes required − user skills for a goal. An empty
// user skill set is valid input: the gap is then the full requirement.
type SkillGapStage struct {
	source catalog.SkillSource
	gate   schema.Schema
	tracer trace.Tracer
}

// NewSkillGap creates the skill gap stage.
func NewSkillGap(source catalog.SkillSource) *SkillGapStage {
	return &SkillGapStage{
		source: source,
		gate:   schema.ForSkillGap(),
		tracer: otel.Tracer(tracerName),
	}
}

// Run produces a validated SkillGap for the goal and the user's skills.
func (s *SkillGapStage) Run(ctx context.Context, goal core.Goal, userSkills core.SkillSet) (core.SkillGap, error) {
	ctx, span := s.tracer.Start(ctx, "Stage.SkillGap",
		trace.WithAttributes(
			attribute.String("stage", SkillGap),
			attribute.String("goal", goal.Title),
			attribute.Int("user_skills", userSkills.Len()),
		),
	)
	defer span.End()

	required, err := s.source.RequiredSkills(ctx, goal.Title)
	if err != nil {
		return core.SkillGap{}, tag(err, SkillGap)
	}
	gap := core.SkillGap{
		Goal:    goal.Title,
		Missing: required.Difference(userSkills),
	}
	if err := s.gate.Validate(gap); err != nil {
		return core.SkillGap{}, tag(err, SkillGap)
	}
	span.SetAttributes(attribute.Int("missing_skills", gap.Missing.Len()))
	return gap, nil
}
