package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jllopis/pathfinder/pkg/catalog"
)

func callRequest(args map[string]interface{}) mcp.CallToolRequest {
	var request mcp.CallToolRequest
	request.Params.Arguments = args
	return request
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) == 0 {
		t.Fatal("empty tool result")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", result.Content[0])
	}
	return text.Text
}

func TestMarketInsightTool(t *testing.T) {
	s := NewServer("pathfinder-test", "0.0.1", catalog.Seed())
	result, err := s.handleMarketInsight(context.Background(), callRequest(map[string]interface{}{
		"goal": "Data Scientist",
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if result.IsError {
		t.Fatalf("tool error: %s", resultText(t, result))
	}

	var insight map[string]any
	if err := json.Unmarshal([]byte(resultText(t, result)), &insight); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if insight["demand"] != "high" || insight["trend"] != "growing" {
		t.Errorf("unexpected insight: %v", insight)
	}
}

func TestSkillGapTool(t *testing.T) {
	s := NewServer("pathfinder-test", "0.0.1", catalog.Seed())
	result, err := s.handleSkillGap(context.Background(), callRequest(map[string]interface{}{
		"goal":   "Data Scientist",
		"skills": "Python, Statistics",
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if result.IsError {
		t.Fatalf("tool error: %s", resultText(t, result))
	}

	text := resultText(t, result)
	if !strings.Contains(text, "Machine Learning") || !strings.Contains(text, "SQL") {
		t.Errorf("gap missing expected skills: %s", text)
	}
}

func TestRoadmapTool(t *testing.T) {
	s := NewServer("pathfinder-test", "0.0.1", catalog.Seed())
	result, err := s.handleRoadmap(context.Background(), callRequest(map[string]interface{}{
		"goal":   "Data Scientist",
		"skills": "Python, Statistics",
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if result.IsError {
		t.Fatalf("tool error: %s", resultText(t, result))
	}

	var roadmap struct {
		Milestones []struct {
			Order int    `json:"order"`
			Skill string `json:"skill"`
		} `json:"milestones"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &roadmap); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if len(roadmap.Milestones) != 2 {
		t.Fatalf("milestones = %d, want 2", len(roadmap.Milestones))
	}
}

func TestToolErrorsAreInBand(t *testing.T) {
	s := NewServer("pathfinder-test", "0.0.1", catalog.Seed())

	tests := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{
			name: "missing goal",
			args: map[string]interface{}{},
			want: "INVALID_INPUT",
		},
		{
			name: "unknown goal",
			args: map[string]interface{}{"goal": "Dragon Tamer"},
			want: "LOOKUP_FAILURE",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := s.handleMarketInsight(context.Background(), callRequest(tc.args))
			if err != nil {
				t.Fatalf("handler must report failures in-band: %v", err)
			}
			if !result.IsError {
				t.Fatal("expected tool error result")
			}
			if text := resultText(t, result); !strings.Contains(text, tc.want) {
				t.Errorf("error %q does not carry code %s", text, tc.want)
			}
		})
	}
}
