// SPDX-License-Identifier: Apache-2.0
// Package stage implements the three pipeline stages. Each stage resolves
// its data from a catalog source, passes the result through its schema
// gate, and tags any failure with its stage identifier.
package stage

import (
	"github.com/jllopis/pathfinder/pkg/errors"
)

// Stage identifiers, attached to failures and used as span/metric
// attributes.
const (
	Market   = "market_insight"
	SkillGap = "skill_gap"
	Roadmap  = "roadmap"
)

const tracerName = "pathfinder/stage"

// tag attributes err to a stage, preserving an existing tag so the
// first failing stage wins.
func tag(err error, stage string) error {
	if err == nil {
		return nil
	}
	pe := errors.AsError(err)
	if pe.Stage == "" {
		pe.Stage = stage
	}
	return pe
}
