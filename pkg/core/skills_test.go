package core

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSkillSetNormalization(t *testing.T) {
	set := NewSkillSet("Python", "python ", " PYTHON")
	if set.Len() != 1 {
		t.Fatalf("expected 1 skill after dedup, got %d", set.Len())
	}
	// First-seen display form wins.
	if got := set.Names(); got[0] != "Python" {
		t.Errorf("display form = %q, want Python", got[0])
	}
}

func TestSkillSetCollapsesInnerWhitespace(t *testing.T) {
	set := NewSkillSet("Machine  Learning", "machine learning")
	if set.Len() != 1 {
		t.Fatalf("expected 1 skill, got %d", set.Len())
	}
	if !set.Has("MACHINE LEARNING") {
		t.Error("expected case-insensitive membership")
	}
}

func TestParseSkills(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"commas", "SQL, Python,Statistics", []string{"Python", "SQL", "Statistics"}},
		{"newlines", "SQL\nPython\n\nStatistics", []string{"Python", "SQL", "Statistics"}},
		{"mixed with dups", "sql, SQL;\n sql ", []string{"sql"}},
		{"empty", "  ,\n ", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			set := ParseSkills(tc.raw)
			got := set.Names()
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Names() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSkillSetDifference(t *testing.T) {
	required := NewSkillSet("Python", "Statistics", "SQL", "Machine Learning")
	user := NewSkillSet("python", "STATISTICS")
	gap := required.Difference(user)
	want := []string{"Machine Learning", "SQL"}
	if got := gap.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("gap = %v, want %v", got, want)
	}
}

func TestSkillSetDifferenceIdempotent(t *testing.T) {
	required := NewSkillSet("Go", "SQL", "Docker")
	user := NewSkillSet("go")
	first := required.Difference(user).Names()
	second := required.Difference(user).Names()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("difference not stable: %v vs %v", first, second)
	}
}

func TestSkillSetJSONRoundTrip(t *testing.T) {
	set := NewSkillSet("Kubernetes", "Go")
	payload, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded SkillSet
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(decoded.Names(), set.Names()) {
		t.Errorf("round trip changed set: %v vs %v", decoded.Names(), set.Names())
	}
}
