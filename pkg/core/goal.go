// SPDX-License-Identifier: Apache-2.0
// Package core holds the Pathfinder domain values. Every type here is an
// immutable value built once per request; nothing is shared or mutated
// across requests.
package core

import (
	"strings"

	"github.com/jllopis/pathfinder/pkg/errors"
)

// Goal is the occupation or role a user wants to pursue.
type Goal struct {
	Title string `json:"title"`
}

// ParseGoal normalizes free-form goal text. Internal whitespace is
// collapsed; an empty title after trimming is an input failure.
func ParseGoal(raw string) (Goal, error) {
	title := strings.Join(strings.Fields(raw), " ")
	if title == "" {
		return Goal{}, errors.New(errors.CodeInvalidInput, "career goal is required", nil)
	}
	return Goal{Title: title}, nil
}
