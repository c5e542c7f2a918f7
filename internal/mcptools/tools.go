// Package mcptools exposes query parsing, job search, recommendations and
// trending jobs as MCP tools.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/recommend"
	"github.com/jonathan/job-matcher/internal/search"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// Tool names.
const (
	ToolParseQuery = "parse_query"
	ToolSearchJobs = "search_jobs"
	ToolRecommend  = "recommend_jobs"
	ToolTrending   = "trending_jobs"
)

// Tools holds the services behind the MCP tools.
type Tools struct {
	search *search.Service
	engine *recommend.Engine
	logger *zap.Logger
}

// New creates the tool handlers.
func New(svc *search.Service, engine *recommend.Engine, log *zap.Logger) *Tools {
	return &Tools{search: svc, engine: engine, logger: logger.OrNop(log)}
}

// NewServer builds an MCP server with every tool registered.
func (t *Tools) NewServer(name, version string) *server.MCPServer {
	s := server.NewMCPServer(name, version)
	t.Register(s)
	return s
}

// Register adds the tools to s.
func (t *Tools) Register(s *server.MCPServer) {
	parseTool := mcp.NewTool(ToolParseQuery,
		mcp.WithDescription("Parse a natural-language job search query into structured intent (job type, experience, industry, skills, location, salary)"),
	)
	parseTool.InputSchema = mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"query": map[string]interface{}{"type": "string", "description": "Free-text job search query"},
		},
		Required: []string{"query"},
	}
	s.AddTool(parseTool, t.handleParseQuery)

	searchTool := mcp.NewTool(ToolSearchJobs,
		mcp.WithDescription("Search active jobs. Natural-language queries are parsed and ranked by relevance; keywords are matched literally with optional filters"),
	)
	searchTool.InputSchema = mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"query":      map[string]interface{}{"type": "string", "description": "Search text, natural language or keyword"},
			"page":       map[string]interface{}{"type": "integer", "description": "1-based page (default: 1)"},
			"limit":      map[string]interface{}{"type": "integer", "description": "Page size (default: 12, max: 100)"},
			"location":   map[string]interface{}{"type": "string", "description": "Location substring, or \"remote\""},
			"job_type":   map[string]interface{}{"type": "string", "description": "Full-time, Part-time, Contract, Internship or Remote"},
			"experience": map[string]interface{}{"type": "string", "description": "Entry-level, Mid-level, Senior or Executive"},
			"industry":   map[string]interface{}{"type": "string", "description": "Industry name"},
			"skills":     map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}, "description": "Any of these skills"},
			"salary_min": map[string]interface{}{"type": "integer", "description": "Lower bound on advertised minimum salary"},
			"salary_max": map[string]interface{}{"type": "integer", "description": "Upper bound on advertised minimum salary"},
			"remote":     map[string]interface{}{"type": "boolean", "description": "Only remote jobs"},
		},
	}
	s.AddTool(searchTool, t.handleSearchJobs)

	recommendTool := mcp.NewTool(ToolRecommend,
		mcp.WithDescription("Recommend jobs for a user profile using a fallback chain of matching strategies"),
	)
	recommendTool.InputSchema = mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"profile":         map[string]interface{}{"type": "object", "description": "User profile: skills, location, inferredExperienceLevel, preferences, workHistory, appliedJobIds"},
			"limit":           map[string]interface{}{"type": "integer", "description": "Max recommendations (default: 20)"},
			"include_applied": map[string]interface{}{"type": "boolean", "description": "Keep jobs the user already applied to (default: false)"},
		},
		Required: []string{"profile"},
	}
	s.AddTool(recommendTool, t.handleRecommend)

	trendingTool := mcp.NewTool(ToolTrending,
		mcp.WithDescription("List trending jobs created within a timeframe"),
	)
	trendingTool.InputSchema = mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"limit":          map[string]interface{}{"type": "integer", "description": "Max jobs (default: 10)"},
			"timeframe_days": map[string]interface{}{"type": "integer", "description": "Window in days (default: 7)"},
			"algorithm":      map[string]interface{}{"type": "string", "description": "popularity, engagement or hybrid (default: hybrid)"},
		},
	}
	s.AddTool(trendingTool, t.handleTrending)
}

func (t *Tools) handleParseQuery(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args parseArgs
	if err := decodeArgs(request, &args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if strings.TrimSpace(args.Query) == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	return jsonResult(t.search.Parser().Parse(args.Query))
}

func (t *Tools) handleSearchJobs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args searchArgs
	if err := decodeArgs(request, &args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resp, err := t.search.Search(ctx, args.params())
	if err != nil {
		t.logger.Warn("mcp search failed", zap.String(logger.FieldQuery, logger.Truncate(args.Query, 80)), zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("Failed to search jobs: %v", err)), nil
	}
	return jsonResult(resp)
}

func (t *Tools) handleRecommend(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args recommendArgs
	if err := decodeArgs(request, &args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	profile, err := decodeProfile(args.Profile)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := recommend.DefaultOptions()
	if args.Limit > 0 {
		opts.Limit = min(args.Limit, search.MaxPageSize)
	}
	opts.ExcludeApplied = !args.IncludeApplied

	recs := t.engine.Recommend(ctx, profile, opts)
	return jsonResult(map[string]any{"count": len(recs), "data": recs})
}

func (t *Tools) handleTrending(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args trendingArgs
	if err := decodeArgs(request, &args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resp, err := t.search.Trending(ctx, search.TrendingOptions{
		Limit:         args.Limit,
		TimeframeDays: args.TimeframeDays,
		Algorithm:     args.Algorithm,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to load trending jobs: %v", err)), nil
	}
	return jsonResult(resp)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tool result: %w", err)
	}
	return mcp.NewToolResultText(string(out)), nil
}
