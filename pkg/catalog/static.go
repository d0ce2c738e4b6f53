// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jllopis/pathfinder/pkg/core"
)

// Static is an in-memory catalog keyed by canonical career and skill
// names. It is built once and read-only afterwards, so it is safe for
// concurrent use.
type Static struct {
	careers   map[string]Career
	resources map[string]Resource
}

// NewStatic builds a static catalog from a validated document.
func NewStatic(doc Document) (*Static, error) {
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	s := &Static{
		careers:   make(map[string]Career, len(doc.Careers)),
		resources: make(map[string]Resource, len(doc.Resources)),
	}
	for _, career := range doc.Careers {
		s.careers[core.CanonicalSkill(career.Name)] = career
	}
	for _, resource := range doc.Resources {
		s.resources[core.CanonicalSkill(resource.Skill)] = resource
	}
	return s, nil
}

// LoadFile reads a YAML catalog document from path.
func LoadFile(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}
	return NewStatic(doc)
}

// MarketInsight implements MarketSource.
func (s *Static) MarketInsight(_ context.Context, goal string) (core.MarketInsight, error) {
	career, ok := s.careers[core.CanonicalSkill(goal)]
	if !ok {
		return core.MarketInsight{}, careerNotFound(goal)
	}
	return core.MarketInsight{
		Goal:   career.Name,
		Demand: core.DemandLevel(career.Demand),
		Trend:  core.Trend(career.Trend),
		Salary: core.SalaryRange{Min: career.SalaryMin, Max: career.SalaryMax},
	}, nil
}

// RequiredSkills implements SkillSource.
func (s *Static) RequiredSkills(_ context.Context, goal string) (core.SkillSet, error) {
	career, ok := s.careers[core.CanonicalSkill(goal)]
	if !ok {
		return core.SkillSet{}, careerNotFound(goal)
	}
	return core.NewSkillSet(career.Skills...), nil
}

// LearningResource implements ResourceSource.
func (s *Static) LearningResource(_ context.Context, skill string) (Resource, error) {
	resource, ok := s.resources[core.CanonicalSkill(skill)]
	if !ok {
		return Resource{}, resourceNotFound(skill)
	}
	return resource, nil
}

// Document re-serializes the catalog, mainly for importing into sqlite.
func (s *Static) Document() Document {
	doc := Document{
		Careers:   make([]Career, 0, len(s.careers)),
		Resources: make([]Resource, 0, len(s.resources)),
	}
	for _, career := range s.careers {
		doc.Careers = append(doc.Careers, career)
	}
	for _, resource := range s.resources {
		doc.Resources = append(doc.Resources, resource)
	}
	return doc
}
