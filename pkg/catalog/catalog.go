// SPDX-License-Identifier: Apache-2.0
// Package catalog supplies the knowledge the pipeline stages consume:
// market data and required skills per career, and a learning resource per
// skill. Two implementations are provided, a YAML-backed static catalog
// and a SQLite store, both behind the same source interfaces so a live
// provider can be added without touching the stages.
package catalog

import (
	"context"
	"fmt"

	"github.com/jllopis/pathfinder/pkg/core"
	"github.com/jllopis/pathfinder/pkg/errors"
)

// Career is one catalog entry: market data plus the canonical required
// skill list for a career.
type Career struct {
	Name      string   `yaml:"name" json:"name"`
	Demand    string   `yaml:"demand" json:"demand"`
	Trend     string   `yaml:"trend" json:"trend"`
	SalaryMin int      `yaml:"salary_min" json:"salary_min"`
	SalaryMax int      `yaml:"salary_max" json:"salary_max"`
	Skills    []string `yaml:"skills" json:"skills"`
}

// Resource is the recommended learning resource for one skill.
// Prerequisites name skills that should be learned first; the roadmap
// stage uses them for ordering.
type Resource struct {
	Skill         string   `yaml:"skill" json:"skill"`
	Title         string   `yaml:"title" json:"title"`
	Platform      string   `yaml:"platform,omitempty" json:"platform,omitempty"`
	DurationWeeks int      `yaml:"duration_weeks" json:"duration_weeks"`
	Prerequisites []string `yaml:"prerequisites,omitempty" json:"prerequisites,omitempty"`
}

// Document is the serialized catalog shape (YAML file or sqlite import).
type Document struct {
	Careers   []Career   `yaml:"careers" json:"careers"`
	Resources []Resource `yaml:"resources" json:"resources"`
}

// MarketSource resolves market data for a career goal.
type MarketSource interface {
	MarketInsight(ctx context.Context, goal string) (core.MarketInsight, error)
}

// SkillSource resolves the canonical required skill set for a career goal.
type SkillSource interface {
	RequiredSkills(ctx context.Context, goal string) (core.SkillSet, error)
}

// ResourceSource resolves the recommended learning resource for a skill.
type ResourceSource interface {
	LearningResource(ctx context.Context, skill string) (Resource, error)
}

// Catalog combines all three sources.
type Catalog interface {
	MarketSource
	SkillSource
	ResourceSource
}

// Validate checks catalog entries at load time. Load-time problems are
// configuration errors, not request failures, so they are plain errors.
func (d *Document) Validate() error {
	for i, career := range d.Careers {
		if core.CanonicalSkill(career.Name) == "" {
			return fmt.Errorf("career %d: name is required", i)
		}
		if !core.DemandLevel(career.Demand).Valid() {
			return fmt.Errorf("career %q: demand %q is not one of low/medium/high", career.Name, career.Demand)
		}
		if !core.Trend(career.Trend).Valid() {
			return fmt.Errorf("career %q: trend %q is not one of declining/stable/growing", career.Name, career.Trend)
		}
		if career.SalaryMin < 0 || career.SalaryMax < career.SalaryMin {
			return fmt.Errorf("career %q: salary range %d..%d is invalid", career.Name, career.SalaryMin, career.SalaryMax)
		}
		if len(career.Skills) == 0 {
			return fmt.Errorf("career %q: at least one required skill is needed", career.Name)
		}
	}
	for i, resource := range d.Resources {
		if core.CanonicalSkill(resource.Skill) == "" {
			return fmt.Errorf("resource %d: skill is required", i)
		}
		if resource.Title == "" {
			return fmt.Errorf("resource for %q: title is required", resource.Skill)
		}
		if resource.DurationWeeks <= 0 {
			return fmt.Errorf("resource for %q: duration_weeks must be positive", resource.Skill)
		}
	}
	return nil
}

func careerNotFound(goal string) error {
	return errors.New(errors.CodeLookup, fmt.Sprintf("no catalog entry for career %q", goal), nil).
		WithContext("goal", goal)
}

func resourceNotFound(skill string) error {
	return errors.New(errors.CodeLookup, fmt.Sprintf("no learning resource for skill %q", skill), nil).
		WithContext("skill", skill)
}
