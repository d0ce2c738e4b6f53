// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"

	"github.com/jllopis/pathfinder/pkg/core"
)

// ForMarketInsight declares the gate for market insight outputs.
func ForMarketInsight() Schema {
	return Schema{
		Name: "market_insight",
		Rules: []Rule{
			{Field: "goal", Check: typed(func(mi core.MarketInsight) string {
				if mi.Goal == "" {
					return "is required"
				}
				return ""
			})},
			{Field: "demand", Check: typed(func(mi core.MarketInsight) string {
				if !mi.Demand.Valid() {
					return fmt.Sprintf("%q is not one of low/medium/high", string(mi.Demand))
				}
				return ""
			})},
			{Field: "trend", Check: typed(func(mi core.MarketInsight) string {
				if !mi.Trend.Valid() {
					return fmt.Sprintf("%q is not one of declining/stable/growing", string(mi.Trend))
				}
				return ""
			})},
			{Field: "salary_range", Check: typed(func(mi core.MarketInsight) string {
				if mi.Salary.Min < 0 || mi.Salary.Max < 0 {
					return "must be non-negative"
				}
				if mi.Salary.Min > mi.Salary.Max {
					return fmt.Sprintf("min %d exceeds max %d", mi.Salary.Min, mi.Salary.Max)
				}
				return ""
			})},
		},
	}
}

// ForSkillGap declares the gate for skill gap outputs.
func ForSkillGap() Schema {
	return Schema{
		Name: "skill_gap",
		Rules: []Rule{
			{Field: "goal", Check: typed(func(gap core.SkillGap) string {
				if gap.Goal == "" {
					return "is required"
				}
				return ""
			})},
			{Field: "missing_skills", Check: typed(func(gap core.SkillGap) string {
				for _, name := range gap.Missing.Names() {
					if core.CanonicalSkill(name) == "" {
						return "contains an empty skill name"
					}
				}
				return ""
			})},
		},
	}
}

// ForRoadmap declares the gate for roadmap outputs: orders must form the
// sequence 1..N with no gaps or repeats, and every milestone must carry a
// skill, a resource, and a positive duration.
func ForRoadmap() Schema {
	return Schema{
		Name: "roadmap",
		Rules: []Rule{
			{Field: "goal", Check: typed(func(r core.Roadmap) string {
				if r.Goal == "" {
					return "is required"
				}
				return ""
			})},
			{Field: "milestones.order", Check: typed(func(r core.Roadmap) string {
				for i, m := range r.Milestones {
					if m.Order != i+1 {
						return fmt.Sprintf("position %d has order %d, want %d", i, m.Order, i+1)
					}
				}
				return ""
			})},
			{Field: "milestones.skill", Check: typed(func(r core.Roadmap) string {
				for _, m := range r.Milestones {
					if core.CanonicalSkill(m.Skill) == "" {
						return fmt.Sprintf("milestone %d has no skill", m.Order)
					}
				}
				return ""
			})},
			{Field: "milestones.resource", Check: typed(func(r core.Roadmap) string {
				for _, m := range r.Milestones {
					if m.Resource == "" {
						return fmt.Sprintf("milestone %d has no resource", m.Order)
					}
				}
				return ""
			})},
			{Field: "milestones.duration_weeks", Check: typed(func(r core.Roadmap) string {
				for _, m := range r.Milestones {
					if m.DurationWeeks <= 0 {
						return fmt.Sprintf("milestone %d has duration %d, want > 0", m.Order, m.DurationWeeks)
					}
				}
				return ""
			})},
		},
	}
}
