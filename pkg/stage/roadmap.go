// SPDX-License-Identifier: Apache-2.0

package stage

import (
	"context"
	"sort"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jllopis/pathfinder/pkg/catalog"
	"github.com/jllopis/pathfinder/pkg/core"
	"github.com/jllopis/pathfinder/pkg/schema"
)

// RoadmapStage turns a skill gap into an ordered learning plan, one
// milestone per missing skill. Milestones are ordered topologically by
// catalog prerequisites; skills without ordering constraints fall back
// to a stable sort by canonical name so output is reproducible.
type RoadmapStage struct {
	source catalog.ResourceSource
	gate   schema.Schema
	tracer trace.Tracer
}

// NewRoadmap creates the roadmap stage.
func NewRoadmap(source catalog.ResourceSource) *RoadmapStage {
	return &RoadmapStage{
		source: source,
		gate:   schema.ForRoadmap(),
		tracer: otel.Tracer(tracerName),
	}
}

// Run produces a validated Roadmap for the gap. An empty gap yields an
// empty roadmap: the goal is already met.
func (s *RoadmapStage) Run(ctx context.Context, gap core.SkillGap) (core.Roadmap, error) {
	ctx, span := s.tracer.Start(ctx, "Stage.Roadmap",
		trace.WithAttributes(
			attribute.String("stage", Roadmap),
			attribute.String("goal", gap.Goal),
			attribute.Int("missing_skills", gap.Missing.Len()),
		),
	)
	defer span.End()

	roadmap := core.Roadmap{Goal: gap.Goal}
	resources := make(map[string]catalog.Resource, gap.Missing.Len())
	for _, skill := range gap.Missing.Names() {
		resource, err := s.source.LearningResource(ctx, skill)
		if err != nil {
			return core.Roadmap{}, tag(err, Roadmap)
		}
		resources[core.CanonicalSkill(skill)] = resource
	}

	for order, canonical := range orderByPrerequisites(gap.Missing, resources) {
		resource := resources[canonical]
		roadmap.Milestones = append(roadmap.Milestones, core.Milestone{
			Order:         order + 1,
			Skill:         resource.Skill,
			Resource:      resource.Title,
			Platform:      resource.Platform,
			DurationWeeks: resource.DurationWeeks,
		})
	}

	if err := s.gate.Validate(roadmap); err != nil {
		return core.Roadmap{}, tag(err, Roadmap)
	}
	return roadmap, nil
}

// orderByPrerequisites returns the canonical gap skills in learning
// order: prerequisite before dependent (Kahn's algorithm with a sorted
// ready set for determinism). Only prerequisites that are themselves in
// the gap constrain the order. A prerequisite cycle in the catalog
// cannot be honored; the affected skills are appended in name order.
func orderByPrerequisites(gap core.SkillSet, resources map[string]catalog.Resource) []string {
	pending := make(map[string]int, gap.Len())
	dependents := make(map[string][]string, gap.Len())
	for canonical, resource := range resources {
		pending[canonical] = 0
		for _, prereq := range resource.Prerequisites {
			key := core.CanonicalSkill(prereq)
			if _, inGap := resources[key]; inGap && key != canonical {
				pending[canonical]++
				dependents[key] = append(dependents[key], canonical)
			}
		}
	}

	var ready []string
	for canonical, count := range pending {
		if count == 0 {
			ready = append(ready, canonical)
		}
	}
	sort.Strings(ready)

	ordered := make([]string, 0, len(pending))
	for len(ready) > 0 {
		next := ready[0]
		ready = ready[1:]
		ordered = append(ordered, next)
		released := false
		for _, dependent := range dependents[next] {
			pending[dependent]--
			if pending[dependent] == 0 {
				ready = append(ready, dependent)
				released = true
			}
		}
		if released {
			sort.Strings(ready)
		}
	}

	if len(ordered) < len(pending) {
		var cyclic []string
		seen := make(map[string]bool, len(ordered))
		for _, canonical := range ordered {
			seen[canonical] = true
		}
		for canonical := range pending {
			if !seen[canonical] {
				cyclic = append(cyclic, canonical)
			}
		}
		sort.Strings(cyclic)
		ordered = append(ordered, cyclic...)
	}
	return ordered
}
