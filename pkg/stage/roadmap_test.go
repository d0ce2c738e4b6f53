package stage

import (
	"context"
	"testing"

	"github.com/jllopis/pathfinder/pkg/catalog"
	"github.com/jllopis/pathfinder/pkg/core"
	"github.com/jllopis/pathfinder/pkg/errors"
)

func TestRoadmapOneMilestonePerGapSkill(t *testing.T) {
	s := NewRoadmap(catalog.Seed())
	gap := core.SkillGap{
		Goal:    "Data Scientist",
		Missing: core.NewSkillSet("SQL", "Machine Learning"),
	}
	roadmap, err := s.Run(context.Background(), gap)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(roadmap.Milestones) != gap.Missing.Len() {
		t.Fatalf("milestones = %d, want %d", len(roadmap.Milestones), gap.Missing.Len())
	}
	for i, m := range roadmap.Milestones {
		if m.Order != i+1 {
			t.Errorf("milestone %d has order %d", i, m.Order)
		}
		if m.Resource == "" || m.DurationWeeks <= 0 {
			t.Errorf("milestone %d incomplete: %+v", i, m)
		}
	}
}

func TestRoadmapEmptyGap(t *testing.T) {
	s := NewRoadmap(catalog.Seed())
	roadmap, err := s.Run(context.Background(), core.SkillGap{Goal: "Data Scientist"})
	if err != nil {
		t.Fatalf("empty gap must not be an error: %v", err)
	}
	if len(roadmap.Milestones) != 0 {
		t.Errorf("expected empty roadmap, got %d milestones", len(roadmap.Milestones))
	}
}

func TestRoadmapPrerequisiteOrdering(t *testing.T) {
	// Machine Learning requires Python and Statistics; Deep Learning
	// requires Machine Learning. All four are in the gap.
	s := NewRoadmap(catalog.Seed())
	gap := core.SkillGap{
		Goal:    "Machine Learning Engineer",
		Missing: core.NewSkillSet("Deep Learning", "Machine Learning", "Python", "Statistics"),
	}
	roadmap, err := s.Run(context.Background(), gap)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	position := make(map[string]int, len(roadmap.Milestones))
	for _, m := range roadmap.Milestones {
		position[core.CanonicalSkill(m.Skill)] = m.Order
	}
	if position["python"] > position["machine learning"] {
		t.Errorf("Python must precede Machine Learning: %v", position)
	}
	if position["statistics"] > position["machine learning"] {
		t.Errorf("Statistics must precede Machine Learning: %v", position)
	}
	if position["machine learning"] > position["deep learning"] {
		t.Errorf("Machine Learning must precede Deep Learning: %v", position)
	}
}

func TestRoadmapStableNameOrderWithoutPrerequisites(t *testing.T) {
	s := NewRoadmap(catalog.Seed())
	gap := core.SkillGap{
		Goal:    "Backend Developer",
		Missing: core.NewSkillSet("SQL", "Go", "API Design"),
	}
	first, err := s.Run(context.Background(), gap)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{"API Design", "Go", "SQL"}
	for i, m := range first.Milestones {
		if m.Skill != want[i] {
			t.Errorf("milestone %d skill = %q, want %q", i+1, m.Skill, want[i])
		}
	}
}

func TestRoadmapPrerequisitesOutsideGapDoNotBlock(t *testing.T) {
	// Kubernetes requires Docker and Linux, but neither is in the gap;
	// the milestone must still be produced.
	s := NewRoadmap(catalog.Seed())
	gap := core.SkillGap{
		Goal:    "DevOps Engineer",
		Missing: core.NewSkillSet("Kubernetes"),
	}
	roadmap, err := s.Run(context.Background(), gap)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(roadmap.Milestones) != 1 || roadmap.Milestones[0].Order != 1 {
		t.Errorf("unexpected roadmap: %+v", roadmap.Milestones)
	}
}

func TestRoadmapUnknownSkillIsLookupFailure(t *testing.T) {
	s := NewRoadmap(catalog.Seed())
	gap := core.SkillGap{
		Goal:    "Data Scientist",
		Missing: core.NewSkillSet("Underwater Basket Weaving"),
	}
	_, err := s.Run(context.Background(), gap)
	if !errors.HasCode(err, errors.CodeLookup) {
		t.Errorf("expected LOOKUP_FAILURE, got %v", err)
	}
	if errors.StageOf(err) != Roadmap {
		t.Errorf("stage = %q, want %q", errors.StageOf(err), Roadmap)
	}
}

func TestRoadmapPrerequisiteCycleFallsBack(t *testing.T) {
	cyclic := catalog.Document{
		Careers: []catalog.Career{
			{Name: "X", Demand: "low", Trend: "stable", SalaryMin: 1, SalaryMax: 2, Skills: []string{"A", "B"}},
		},
		Resources: []catalog.Resource{
			{Skill: "A", Title: "Course A", DurationWeeks: 1, Prerequisites: []string{"B"}},
			{Skill: "B", Title: "Course B", DurationWeeks: 1, Prerequisites: []string{"A"}},
		},
	}
	source, err := catalog.NewStatic(cyclic)
	if err != nil {
		t.Fatalf("NewStatic: %v", err)
	}
	s := NewRoadmap(source)
	roadmap, err := s.Run(context.Background(), core.SkillGap{
		Goal:    "X",
		Missing: core.NewSkillSet("A", "B"),
	})
	if err != nil {
		t.Fatalf("cycle must degrade to name order, not fail: %v", err)
	}
	if len(roadmap.Milestones) != 2 {
		t.Fatalf("milestones = %d, want 2", len(roadmap.Milestones))
	}
	if roadmap.Milestones[0].Skill != "A" || roadmap.Milestones[1].Skill != "B" {
		t.Errorf("expected name-order fallback, got %+v", roadmap.Milestones)
	}
}
