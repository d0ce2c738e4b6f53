package core

import (
	"testing"

	"github.com/jllopis/pathfinder/pkg/errors"
)

func TestParseGoal(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"plain", "Data Scientist", "Data Scientist", false},
		{"trims and collapses", "  Site   Reliability  Engineer ", "Site Reliability Engineer", false},
		{"empty", "", "", true},
		{"whitespace only", "   \n\t", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			goal, err := ParseGoal(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.HasCode(err, errors.CodeInvalidInput) {
					t.Errorf("expected INVALID_INPUT, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseGoal: %v", err)
			}
			if goal.Title != tc.want {
				t.Errorf("title = %q, want %q", goal.Title, tc.want)
			}
		})
	}
}

func TestNewResultAssignsRequestID(t *testing.T) {
	goal, err := ParseGoal("Data Engineer")
	if err != nil {
		t.Fatalf("ParseGoal: %v", err)
	}
	first := NewResult(goal, NewSkillSet("SQL"))
	second := NewResult(goal, NewSkillSet("SQL"))
	if first.RequestID == "" || second.RequestID == "" {
		t.Fatal("request id must be set")
	}
	if first.RequestID == second.RequestID {
		t.Error("request ids must be unique per run")
	}
}
