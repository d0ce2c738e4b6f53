// SPDX-License-Identifier: Apache-2.0

package core

import (
	"encoding/json"
	"sort"
	"strings"
)

// SkillSet is a deduplicated set of skill names. Names that differ only in
// case or whitespace collapse into one entry; the display form first seen
// wins. The zero value is an empty set.
type SkillSet struct {
	display map[string]string // canonical -> display form
}

// NewSkillSet builds a set from the given names, dropping empties.
func NewSkillSet(names ...string) SkillSet {
	set := SkillSet{display: make(map[string]string, len(names))}
	for _, name := range names {
		set.add(name)
	}
	return set
}

// ParseSkills splits comma- or newline-separated text into a SkillSet.
// Empty input yields an empty set, which is valid: it means the user
// claims no skills yet.
func ParseSkills(raw string) SkillSet {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == ';'
	})
	return NewSkillSet(fields...)
}

// CanonicalSkill returns the canonical form used for set membership:
// lower-cased with collapsed whitespace.
func CanonicalSkill(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

func (s *SkillSet) add(name string) {
	canonical := CanonicalSkill(name)
	if canonical == "" {
		return
	}
	if s.display == nil {
		s.display = make(map[string]string)
	}
	if _, ok := s.display[canonical]; !ok {
		s.display[canonical] = strings.Join(strings.Fields(name), " ")
	}
}

// Has reports membership under canonical comparison.
func (s SkillSet) Has(name string) bool {
	_, ok := s.display[CanonicalSkill(name)]
	return ok
}

// Len returns the number of distinct skills.
func (s SkillSet) Len() int {
	return len(s.display)
}

// Names returns the display forms sorted by canonical name. The ordering
// is stable across runs so downstream output is reproducible.
func (s SkillSet) Names() []string {
	canonicals := make([]string, 0, len(s.display))
	for canonical := range s.display {
		canonicals = append(canonicals, canonical)
	}
	sort.Strings(canonicals)
	names := make([]string, len(canonicals))
	for i, canonical := range canonicals {
		names[i] = s.display[canonical]
	}
	return names
}

// Difference returns the skills in s that are not in other.
func (s SkillSet) Difference(other SkillSet) SkillSet {
	out := SkillSet{display: make(map[string]string)}
	for canonical, name := range s.display {
		if _, ok := other.display[canonical]; !ok {
			out.display[canonical] = name
		}
	}
	return out
}

// MarshalJSON renders the set as a sorted name array.
func (s SkillSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Names())
}

// UnmarshalJSON accepts a name array.
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	*s = NewSkillSet(names...)
	return nil
}
