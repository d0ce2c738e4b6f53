package stage

import (
	"context"
	"reflect"
	"testing"

	"github.com/jllopis/pathfinder/pkg/catalog"
	"github.com/jllopis/pathfinder/pkg/core"
	"github.com/jllopis/pathfinder/pkg/errors"
)

func TestSkillGapScenarioDataScientist(t *testing.T) {
	s := NewSkillGap(catalog.Seed())
	gap, err := s.Run(context.Background(),
		mustGoal(t, "Data Scientist"),
		core.NewSkillSet("Python", "Statistics"),
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{"Machine Learning", "SQL"}
	if got := gap.Missing.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("gap = %v, want %v", got, want)
	}
}

func TestSkillGapEmptyUserSkills(t *testing.T) {
	s := NewSkillGap(catalog.Seed())
	gap, err := s.Run(context.Background(), mustGoal(t, "Backend Developer"), core.SkillSet{})
	if err != nil {
		t.Fatalf("empty user skills must not fail: %v", err)
	}
	if gap.Missing.Len() != 4 {
		t.Errorf("gap size = %d, want full requirement of 4", gap.Missing.Len())
	}
}

func TestSkillGapAllSkillsCovered(t *testing.T) {
	s := NewSkillGap(catalog.Seed())
	gap, err := s.Run(context.Background(),
		mustGoal(t, "Backend Developer"),
		core.NewSkillSet("go", "SQL ", "DOCKER", "api design"),
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if gap.Missing.Len() != 0 {
		t.Errorf("expected empty gap, got %v", gap.Missing.Names())
	}
}

func TestSkillGapIdempotent(t *testing.T) {
	s := NewSkillGap(catalog.Seed())
	goal := mustGoal(t, "Data Scientist")
	skills := core.NewSkillSet("Python")
	first, err := s.Run(context.Background(), goal, skills)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := s.Run(context.Background(), goal, skills)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !reflect.DeepEqual(first.Missing.Names(), second.Missing.Names()) {
		t.Errorf("runs differ: %v vs %v", first.Missing.Names(), second.Missing.Names())
	}
}

func TestSkillGapUnknownGoal(t *testing.T) {
	s := NewSkillGap(catalog.Seed())
	_, err := s.Run(context.Background(), mustGoal(t, "Dragon Tamer"), core.SkillSet{})
	if !errors.HasCode(err, errors.CodeLookup) {
		t.Errorf("expected LOOKUP_FAILURE, got %v", err)
	}
	if errors.StageOf(err) != SkillGap {
		t.Errorf("stage = %q, want %q", errors.StageOf(err), SkillGap)
	}
}
