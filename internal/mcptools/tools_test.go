package mcptools

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/job-matcher/internal/corpus"
	"github.com/jonathan/job-matcher/internal/parsing"
	"github.com/jonathan/job-matcher/internal/recommend"
	"github.com/jonathan/job-matcher/internal/search"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	idReact = uuid.MustParse("00000000-0000-0000-0000-0000000000c1")
	idGo    = uuid.MustParse("00000000-0000-0000-0000-0000000000c2")
	idNurse = uuid.MustParse("00000000-0000-0000-0000-0000000000c3")
)

func newTestTools(t *testing.T) *Tools {
	t.Helper()
	jobs := []types.JobCandidate{
		{
			ID: idReact, Title: "React Developer", Company: "Hooli", Location: "Remote",
			Skills: []string{"React"}, Industry: "Software", Experience: types.ExperienceMid,
			JobType: types.JobTypeFullTime, Salary: types.Salary{Min: 110000}, IsRemote: true,
			Status: types.JobStatusActive, ViewCount: 40, ApplicationCount: 4,
			CreatedAt: testNow.AddDate(0, 0, -2),
		},
		{
			ID: idGo, Title: "Backend Engineer", Company: "Globex", Location: "Boston, MA",
			Skills: []string{"Go", "PostgreSQL"}, Industry: "Software", Experience: types.ExperienceSenior,
			JobType: types.JobTypeFullTime, Salary: types.Salary{Min: 140000},
			Status: types.JobStatusActive, ViewCount: 10,
			CreatedAt: testNow.AddDate(0, 0, -1),
		},
		{
			ID: idNurse, Title: "Nurse Practitioner", Company: "Mercy General", Location: "Boston, MA",
			Skills: []string{"Patient Care"}, Industry: "Healthcare", Experience: types.ExperienceSenior,
			JobType: types.JobTypePartTime, Salary: types.Salary{Min: 95000},
			Status: types.JobStatusActive, ViewCount: 5,
			CreatedAt: testNow.AddDate(0, 0, -20),
		},
	}
	c := corpus.NewMemory(jobs)
	clock := func() time.Time { return testNow }
	logger := zap.NewNop()
	svc := search.NewService(c, parsing.NewQueryParser(logger), logger).WithClock(clock)
	engine := recommend.NewEngine(c, logger).WithClock(clock)
	return New(svc, engine, logger)
}

func call(args any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func decodeResult(t *testing.T, res *mcp.CallToolResult, v any) {
	t.Helper()
	require.False(t, res.IsError, resultText(t, res))
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), v))
}

func TestNewServer_ListsTools(t *testing.T) {
	s := newTestTools(t).NewServer("job-matcher", "test")

	msg := s.HandleMessage(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	out, err := json.Marshal(msg)
	require.NoError(t, err)

	for _, name := range []string{ToolParseQuery, ToolSearchJobs, ToolRecommend, ToolTrending} {
		assert.Contains(t, string(out), `"`+name+`"`)
	}
}

func TestParseQuery(t *testing.T) {
	tools := newTestTools(t)

	res, err := tools.handleParseQuery(context.Background(), call(map[string]interface{}{"query": "senior react jobs"}))
	require.NoError(t, err)

	var parsed types.ParsedQuery
	decodeResult(t, res, &parsed)
	assert.Equal(t, "senior react jobs", parsed.OriginalQuery)
}

func TestParseQuery_Invalid(t *testing.T) {
	tools := newTestTools(t)

	tests := []struct {
		name string
		args any
	}{
		{"missing query", map[string]interface{}{}},
		{"blank query", map[string]interface{}{"query": "   "}},
		{"no arguments", nil},
		{"wrong shape", "senior react jobs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tools.handleParseQuery(context.Background(), call(tt.args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
		})
	}
}

func TestSearchJobs(t *testing.T) {
	tools := newTestTools(t)

	res, err := tools.handleSearchJobs(context.Background(), call(map[string]interface{}{
		"query": "engineer",
		"limit": float64(5),
	}))
	require.NoError(t, err)

	var resp types.SearchResponse
	decodeResult(t, res, &resp)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, idGo, resp.Data[0].ID)
	assert.Equal(t, 5, resp.Pagination.Limit)
}

func TestSearchJobs_Filters(t *testing.T) {
	tools := newTestTools(t)

	res, err := tools.handleSearchJobs(context.Background(), call(map[string]interface{}{
		"skills":     []interface{}{"Patient Care", "Go"},
		"salary_min": float64(100000),
	}))
	require.NoError(t, err)

	var resp types.SearchResponse
	decodeResult(t, res, &resp)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, idGo, resp.Data[0].ID)
}

func TestRecommend(t *testing.T) {
	tools := newTestTools(t)

	res, err := tools.handleRecommend(context.Background(), call(map[string]interface{}{
		"profile": map[string]interface{}{
			"skills":   []interface{}{"Go", "PostgreSQL"},
			"location": "Boston, MA",
			"workHistory": []interface{}{
				map[string]interface{}{"title": "Engineer", "startDate": "2018-01-01T00:00:00Z", "current": true},
			},
			"appliedJobIds": []interface{}{idReact.String()},
		},
		"limit": float64(3),
	}))
	require.NoError(t, err)

	var resp struct {
		Count int                          `json:"count"`
		Data  []types.ScoredRecommendation `json:"data"`
	}
	decodeResult(t, res, &resp)
	require.NotZero(t, resp.Count)
	assert.Equal(t, idGo, resp.Data[0].ID)
	for _, r := range resp.Data {
		assert.NotEqual(t, idReact, r.ID, "applied jobs are excluded by default")
	}
}

func TestRecommend_Invalid(t *testing.T) {
	tools := newTestTools(t)

	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{"missing profile", map[string]interface{}{"limit": float64(3)}},
		{"skills not an array", map[string]interface{}{"profile": map[string]interface{}{"skills": "Go"}}},
		{"bad applied id", map[string]interface{}{"profile": map[string]interface{}{"appliedJobIds": []interface{}{"nope"}}}},
		{"bad level", map[string]interface{}{"profile": map[string]interface{}{"inferredExperienceLevel": "Guru"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tools.handleRecommend(context.Background(), call(tt.args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
		})
	}
}

func TestTrending(t *testing.T) {
	tools := newTestTools(t)

	res, err := tools.handleTrending(context.Background(), call(map[string]interface{}{
		"algorithm":      "popularity",
		"timeframe_days": float64(30),
	}))
	require.NoError(t, err)

	var resp types.TrendingResponse
	decodeResult(t, res, &resp)
	assert.Equal(t, 3, resp.Count)
	assert.Equal(t, "30 days", resp.Timeframe)

	res, err = tools.handleTrending(context.Background(), call(map[string]interface{}{"algorithm": "magic"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestDecode_WeaklyTyped(t *testing.T) {
	var args searchArgs
	require.NoError(t, decode(map[string]interface{}{"page": "2", "limit": float64(7), "remote": "true"}, &args))
	assert.Equal(t, 2, args.Page)
	assert.Equal(t, 7, args.Limit)
	assert.True(t, args.Remote)
}

func TestDecodeProfile(t *testing.T) {
	profile, err := decodeProfile(map[string]interface{}{
		"skills": []interface{}{"Go"},
		"preferences": map[string]interface{}{
			"salaryRange": map[string]interface{}{"min": float64(90000)},
			"remoteWork":  true,
		},
		"workHistory": []interface{}{
			map[string]interface{}{"startDate": "2020-06-01T00:00:00Z", "endDate": "2023-06-01T00:00:00Z"},
		},
		"appliedJobIds": []interface{}{idNurse.String()},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Go"}, profile.Skills)
	require.NotNil(t, profile.Preferences.SalaryRange)
	assert.Equal(t, 90000, profile.Preferences.SalaryRange.Min)
	assert.True(t, profile.Preferences.RemoteWork)
	require.Len(t, profile.WorkHistory, 1)
	require.NotNil(t, profile.WorkHistory[0].EndDate)
	assert.Equal(t, 2023, profile.WorkHistory[0].EndDate.Year())
	assert.Equal(t, []uuid.UUID{idNurse}, profile.AppliedJobIDs)
}
