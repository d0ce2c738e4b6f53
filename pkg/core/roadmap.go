// SPDX-License-Identifier: Apache-2.0

package core

// SkillGap holds the skills required for a goal that the user is missing.
type SkillGap struct {
	Goal    string   `json:"goal"`
	Missing SkillSet `json:"missing_skills"`
}

// Milestone is one ordered step of a learning roadmap, covering one
// missing skill. Order starts at 1 and increases without gaps.
type Milestone struct {
	Order         int    `json:"order"`
	Skill         string `json:"skill"`
	Resource      string `json:"resource"`
	Platform      string `json:"platform,omitempty"`
	DurationWeeks int    `json:"duration_weeks"`
}

// Roadmap is the ordered learning plan derived from a SkillGap,
// one milestone per missing skill.
type Roadmap struct {
	Goal       string      `json:"goal"`
	Milestones []Milestone `json:"milestones"`
}

// TotalWeeks sums the estimated duration across all milestones.
func (r Roadmap) TotalWeeks() int {
	total := 0
	for _, m := range r.Milestones {
		total += m.DurationWeeks
	}
	return total
}
