// SPDX-License-Identifier: Apache-2.0

package core

import (
	"time"

	"github.com/google/uuid"
)

// Result is the fully validated triple assembled by one pipeline run.
// It exists only for the scope of that run.
type Result struct {
	RequestID  string        `json:"request_id"`
	Goal       Goal          `json:"goal"`
	UserSkills SkillSet      `json:"user_skills"`
	Insight    MarketInsight `json:"market_insight"`
	Gap        SkillGap      `json:"skill_gap"`
	Roadmap    Roadmap       `json:"roadmap"`
	StartedAt  time.Time     `json:"started_at"`
	Elapsed    time.Duration `json:"elapsed_ns"`
}

// NewResult creates a result shell with a generated request ID.
func NewResult(goal Goal, userSkills SkillSet) *Result {
	return &Result{
		RequestID:  uuid.NewString(),
		Goal:       goal,
		UserSkills: userSkills,
		StartedAt:  time.Now().UTC(),
	}
}
