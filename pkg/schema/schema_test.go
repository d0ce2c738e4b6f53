package schema

import (
	"strings"
	"testing"

	"github.com/jllopis/pathfinder/pkg/core"
	"github.com/jllopis/pathfinder/pkg/errors"
)

func validInsight() core.MarketInsight {
	return core.MarketInsight{
		Goal:   "Data Scientist",
		Demand: core.DemandHigh,
		Trend:  core.TrendGrowing,
		Salary: core.SalaryRange{Min: 90000, Max: 120000},
	}
}

func TestMarketInsightGateAccepts(t *testing.T) {
	if err := ForMarketInsight().Validate(validInsight()); err != nil {
		t.Fatalf("valid insight rejected: %v", err)
	}
}

func TestMarketInsightGateRejectsInvertedSalary(t *testing.T) {
	insight := validInsight()
	insight.Salary = core.SalaryRange{Min: 120000, Max: 90000}
	err := ForMarketInsight().Validate(insight)
	if err == nil {
		t.Fatal("expected validation failure for min > max")
	}
	if !errors.HasCode(err, errors.CodeValidation) {
		t.Errorf("expected VALIDATION_FAILURE, got %v", err)
	}
	if !strings.Contains(err.Error(), "salary_range") {
		t.Errorf("error should name the field: %v", err)
	}
}

func TestMarketInsightGateRejectsOpenEnums(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*core.MarketInsight)
		field  string
	}{
		{"demand", func(mi *core.MarketInsight) { mi.Demand = "extreme" }, "demand"},
		{"trend", func(mi *core.MarketInsight) { mi.Trend = "volatile" }, "trend"},
		{"goal", func(mi *core.MarketInsight) { mi.Goal = "" }, "goal"},
		{"negative salary", func(mi *core.MarketInsight) { mi.Salary.Min = -1; mi.Salary.Max = -1 }, "salary_range"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			insight := validInsight()
			tc.mutate(&insight)
			err := ForMarketInsight().Validate(insight)
			if err == nil {
				t.Fatal("expected validation failure")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error should mention %s: %v", tc.field, err)
			}
		})
	}
}

func TestGateRejectsWrongType(t *testing.T) {
	if err := ForMarketInsight().Validate("not an insight"); err == nil {
		t.Fatal("expected type conformance failure")
	}
}

func TestGateAggregatesAllViolations(t *testing.T) {
	insight := core.MarketInsight{
		Goal:   "",
		Demand: "nope",
		Trend:  "nope",
		Salary: core.SalaryRange{Min: 10, Max: 1},
	}
	err := ForMarketInsight().Validate(insight)
	if err == nil {
		t.Fatal("expected failure")
	}
	for _, field := range []string{"goal", "demand", "trend", "salary_range"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("aggregate error missing %s: %v", field, err)
		}
	}
}

func TestSkillGapGate(t *testing.T) {
	gap := core.SkillGap{Goal: "Data Scientist", Missing: core.NewSkillSet("SQL")}
	if err := ForSkillGap().Validate(gap); err != nil {
		t.Fatalf("valid gap rejected: %v", err)
	}
	gap.Goal = ""
	if err := ForSkillGap().Validate(gap); err == nil {
		t.Fatal("expected failure for missing goal")
	}
}

func TestRoadmapGateOrderSequence(t *testing.T) {
	roadmap := core.Roadmap{
		Goal: "Data Scientist",
		Milestones: []core.Milestone{
			{Order: 1, Skill: "SQL", Resource: "SQL Bootcamp", DurationWeeks: 4},
			{Order: 3, Skill: "ML", Resource: "ML Course", DurationWeeks: 8},
		},
	}
	err := ForRoadmap().Validate(roadmap)
	if err == nil {
		t.Fatal("expected failure for order gap")
	}
	if !strings.Contains(err.Error(), "order") {
		t.Errorf("error should mention order: %v", err)
	}
}

func TestRoadmapGateAcceptsEmpty(t *testing.T) {
	roadmap := core.Roadmap{Goal: "Data Scientist"}
	if err := ForRoadmap().Validate(roadmap); err != nil {
		t.Fatalf("empty roadmap must be valid (goal already met): %v", err)
	}
}

func TestRoadmapGateRejectsNonPositiveDuration(t *testing.T) {
	roadmap := core.Roadmap{
		Goal: "Data Scientist",
		Milestones: []core.Milestone{
			{Order: 1, Skill: "SQL", Resource: "SQL Bootcamp", DurationWeeks: 0},
		},
	}
	if err := ForRoadmap().Validate(roadmap); err == nil {
		t.Fatal("expected failure for zero duration")
	}
}
