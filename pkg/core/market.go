// SPDX-License-Identifier: Apache-2.0

package core

// DemandLevel is the closed demand enumeration for a career.
type DemandLevel string

const (
	DemandLow    DemandLevel = "low"
	DemandMedium DemandLevel = "medium"
	DemandHigh   DemandLevel = "high"
)

// Valid reports whether d is one of the declared demand levels.
func (d DemandLevel) Valid() bool {
	switch d {
	case DemandLow, DemandMedium, DemandHigh:
		return true
	}
	return false
}

// Trend is the closed market-direction enumeration for a career.
type Trend string

const (
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
	TrendGrowing   Trend = "growing"
)

// Valid reports whether t is one of the declared trends.
func (t Trend) Valid() bool {
	switch t {
	case TrendDeclining, TrendStable, TrendGrowing:
		return true
	}
	return false
}

// SalaryRange is an annual salary band in whole currency units.
// Invariant: 0 <= Min <= Max, enforced by the validation gate.
type SalaryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// MarketInsight describes demand, direction, and pay for one career goal.
type MarketInsight struct {
	Goal   string      `json:"goal"`
	Demand DemandLevel `json:"demand"`
	Trend  Trend       `json:"trend"`
	Salary SalaryRange `json:"salary_range"`
}
