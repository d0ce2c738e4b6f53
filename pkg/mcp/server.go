// SPDX-License-Identifier: Apache-2.0
// Package mcp exposes the Pathfinder stages as MCP tools over stdio so
// agent hosts can call market insight, skill gap, and roadmap directly.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jllopis/pathfinder/pkg/catalog"
	"github.com/jllopis/pathfinder/pkg/core"
	"github.com/jllopis/pathfinder/pkg/stage"
)

// Server wraps the mcp-go server with the Pathfinder toolset.
type Server struct {
	mcpServer *server.MCPServer
	market    *stage.MarketStage
	gap       *stage.SkillGapStage
	roadmap   *stage.RoadmapStage
}

// NewServer creates an MCP server backed by the given catalog.
func NewServer(name, version string, cat catalog.Catalog) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer(name, version),
		market:    stage.NewMarket(cat),
		gap:       stage.NewSkillGap(cat),
		roadmap:   stage.NewRoadmap(cat),
	}
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("career_market_insight",
			mcp.WithDescription("Demand, trend, and salary range for a career goal"),
			mcp.WithString("goal", mcp.Required(), mcp.Description("Career goal, e.g. Data Scientist")),
		),
		s.handleMarketInsight,
	)
	s.mcpServer.AddTool(
		mcp.NewTool("skill_gap",
			mcp.WithDescription("Skills still missing for a career goal given the user's current skills"),
			mcp.WithString("goal", mcp.Required(), mcp.Description("Career goal")),
			mcp.WithString("skills", mcp.Description("Comma-separated current skills; may be empty")),
		),
		s.handleSkillGap,
	)
	s.mcpServer.AddTool(
		mcp.NewTool("learning_roadmap",
			mcp.WithDescription("Ordered learning milestones that close the skill gap for a career goal"),
			mcp.WithString("goal", mcp.Required(), mcp.Description("Career goal")),
			mcp.WithString("skills", mcp.Description("Comma-separated current skills; may be empty")),
		),
		s.handleRoadmap,
	)
}

// ServeStdio starts the server on stdio.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) handleMarketInsight(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	goal, err := parseGoalArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	insight, err := s.market.Run(ctx, goal)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(insight)
}

func (s *Server) handleSkillGap(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	goal, err := parseGoalArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	gap, err := s.gap.Run(ctx, goal, core.ParseSkills(stringArg(request, "skills")))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(gap)
}

func (s *Server) handleRoadmap(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	goal, err := parseGoalArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	gap, err := s.gap.Run(ctx, goal, core.ParseSkills(stringArg(request, "skills")))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	roadmap, err := s.roadmap.Run(ctx, gap)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(roadmap)
}

func parseGoalArg(request mcp.CallToolRequest) (core.Goal, error) {
	return core.ParseGoal(stringArg(request, "goal"))
}

func stringArg(request mcp.CallToolRequest, key string) string {
	args, _ := request.Params.Arguments.(map[string]interface{})
	value, _ := args[key].(string)
	return value
}

func jsonResult(value any) (*mcp.CallToolResult, error) {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode tool result: %w", err)
	}
	return mcp.NewToolResultText(string(encoded)), nil
}
